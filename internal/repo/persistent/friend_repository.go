package persistent

import (
	"friendboard/internal/model"

	"gorm.io/gorm"
)

// FriendRepository is the friend graph provider. The friendships table is
// written by the relationship service; this side only ever reads it.
type FriendRepository interface {
	FriendIDs(userID string) ([]string, error)
}

type friendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) FriendIDs(userID string) ([]string, error) {
	var ids []string
	err := r.db.Model(&model.FriendshipModel{}).
		Where("user_id = ?", userID).
		Pluck("friend_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

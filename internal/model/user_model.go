package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel holds the profile fields this service reads for the feed's
// author join. Account lifecycle and credentials are managed elsewhere.
type UserModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"username"`
	FirstName    string    `gorm:"type:varchar(100)" json:"first_name"`
	LastName     string    `gorm:"type:varchar(100)" json:"last_name"`
	AvatarURL    string    `gorm:"type:varchar(500)" json:"avatar_url"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255)" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}

// FriendshipModel is the friend-graph backing table. Rows come in symmetric
// pairs maintained by the relationship service; this service only reads them.
type FriendshipModel struct {
	UserID    string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	FriendID  string    `gorm:"type:uuid;primaryKey" json:"friend_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (FriendshipModel) TableName() string {
	return "friendships"
}

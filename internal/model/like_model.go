package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// No soft delete on either like table: a row either exists (liked) or it
// does not. The composite unique indexes are the correctness backstop for
// concurrent toggles.

type PostLikeModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_post_likes_user_post" json:"user_id"`
	PostID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_post_likes_user_post;index" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (PostLikeModel) TableName() string {
	return "post_likes"
}

func (l *PostLikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

type CommentLikeModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_comment_likes_user_comment" json:"user_id"`
	CommentID string    `gorm:"type:uuid;not null;uniqueIndex:idx_comment_likes_user_comment;index" json:"comment_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (CommentLikeModel) TableName() string {
	return "comment_likes"
}

func (l *CommentLikeModel) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

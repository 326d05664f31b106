package persistent

import (
	"context"

	"friendboard/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EngagementRepository stores like records for posts and comments. A record's
// existence is the liked state. Creates hit the composite unique index on
// (user, target), so a concurrent duplicate surfaces as gorm.ErrDuplicatedKey
// rather than a second row.
type EngagementRepository interface {
	CreatePostLike(ctx context.Context, userID, postID string) error
	DeletePostLike(ctx context.Context, userID, postID string) error
	PostLikeExists(ctx context.Context, userID, postID string) (bool, error)
	CountPostLikes(ctx context.Context, postID string) (int64, error)

	CreateCommentLike(ctx context.Context, userID, commentID string) error
	DeleteCommentLike(ctx context.Context, userID, commentID string) error
	CommentLikeExists(ctx context.Context, userID, commentID string) (bool, error)
	CountCommentLikes(ctx context.Context, commentID string) (int64, error)
}

type engagementRepository struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) CreatePostLike(ctx context.Context, userID, postID string) error {
	likeModel := &model.PostLikeModel{
		ID:     uuid.New().String(),
		UserID: userID,
		PostID: postID,
	}
	return r.db.WithContext(ctx).Create(likeModel).Error
}

func (r *engagementRepository) DeletePostLike(ctx context.Context, userID, postID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.PostLikeModel{}).Error
}

func (r *engagementRepository) PostLikeExists(ctx context.Context, userID, postID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PostLikeModel{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (r *engagementRepository) CountPostLikes(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.PostLikeModel{}).
		Where("post_id = ?", postID).
		Count(&count).Error
	return count, err
}

func (r *engagementRepository) CreateCommentLike(ctx context.Context, userID, commentID string) error {
	likeModel := &model.CommentLikeModel{
		ID:        uuid.New().String(),
		UserID:    userID,
		CommentID: commentID,
	}
	return r.db.WithContext(ctx).Create(likeModel).Error
}

func (r *engagementRepository) DeleteCommentLike(ctx context.Context, userID, commentID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Delete(&model.CommentLikeModel{}).Error
}

func (r *engagementRepository) CommentLikeExists(ctx context.Context, userID, commentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CommentLikeModel{}).
		Where("user_id = ? AND comment_id = ?", userID, commentID).
		Count(&count).Error
	return count > 0, err
}

func (r *engagementRepository) CountCommentLikes(ctx context.Context, commentID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CommentLikeModel{}).
		Where("comment_id = ?", commentID).
		Count(&count).Error
	return count, err
}

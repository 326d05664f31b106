package persistent

import (
	"context"
	"errors"
	"time"

	"friendboard/internal/entity"
	"friendboard/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(comment *entity.Comment) error
	GetByID(id string) (*entity.Comment, error)
	ListByPost(postID string) ([]*entity.Comment, error)
	CountByPost(ctx context.Context, postID string) (int64, error)
	Delete(id string) error
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.Create(commentModel).Error; err != nil {
		return err
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) GetByID(id string) (*entity.Comment, error) {
	var commentModel model.CommentModel
	if err := r.db.Where("id = ?", id).First(&commentModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToCommentEntity(&commentModel), nil
}

type commentAuthorRow struct {
	ID        string
	PostID    string
	AuthorID  string
	Content   string
	CreatedAt time.Time
	Username  string
	FirstName string
	LastName  string
	AvatarURL string
}

// ListByPost returns a post's comments oldest-first with the author profile
// joined on, mirroring the feed's author join.
func (r *commentRepository) ListByPost(postID string) ([]*entity.Comment, error) {
	var rows []commentAuthorRow
	err := r.db.Table("comments").
		Select("comments.id, comments.post_id, comments.author_id, comments.content, comments.created_at, users.username, users.first_name, users.last_name, users.avatar_url").
		Joins("JOIN users ON users.id = comments.author_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	comments := make([]*entity.Comment, len(rows))
	for i, row := range rows {
		comments[i] = &entity.Comment{
			ID:        row.ID,
			PostID:    row.PostID,
			AuthorID:  row.AuthorID,
			Content:   row.Content,
			CreatedAt: row.CreatedAt,
			Author: &entity.Author{
				ID:        row.AuthorID,
				Username:  row.Username,
				FirstName: row.FirstName,
				LastName:  row.LastName,
				AvatarURL: row.AvatarURL,
			},
		}
	}
	return comments, nil
}

func (r *commentRepository) CountByPost(ctx context.Context, postID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CommentModel{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

// Delete removes the comment and its like records in one transaction.
func (r *commentRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", id).Delete(&model.CommentLikeModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.CommentModel{}).Error
	})
}

package persistent

import (
	"errors"
	"time"

	"friendboard/internal/entity"
	"friendboard/internal/model"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	ListByAuthors(authorIDs []string, limit, offset int) ([]*entity.Post, error)
	Exists(id string) (bool, error)
	DeleteCascade(id string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Where("id = ?", id).First(&postModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrNotFound
		}
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

// postAuthorRow is one feed row: a post with its author's public profile
// joined on. Field names follow gorm's snake_case column mapping.
type postAuthorRow struct {
	ID        string
	AuthorID  string
	Content   string
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	FirstName string
	LastName  string
	AvatarURL string
}

func (r *postRepository) ListByAuthors(authorIDs []string, limit, offset int) ([]*entity.Post, error) {
	if len(authorIDs) == 0 {
		return []*entity.Post{}, nil
	}

	var rows []postAuthorRow
	err := r.db.Table("posts").
		Select("posts.id, posts.author_id, posts.content, posts.image_url, posts.created_at, posts.updated_at, users.username, users.first_name, users.last_name, users.avatar_url").
		Joins("JOIN users ON users.id = posts.author_id").
		Where("posts.author_id IN ?", authorIDs).
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(rows))
	for i, row := range rows {
		posts[i] = &entity.Post{
			ID:        row.ID,
			AuthorID:  row.AuthorID,
			Content:   row.Content,
			ImageURL:  row.ImageURL,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
			Author: &entity.Author{
				ID:        row.AuthorID,
				Username:  row.Username,
				FirstName: row.FirstName,
				LastName:  row.LastName,
				AvatarURL: row.AvatarURL,
			},
		}
	}
	return posts, nil
}

func (r *postRepository) Exists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&model.PostModel{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// DeleteCascade removes the post together with its comments and every like
// record hanging off either, in one transaction. Ownership is checked by the
// caller before this runs.
func (r *postRepository) DeleteCascade(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		commentIDs := tx.Model(&model.CommentModel{}).Select("id").Where("post_id = ?", id)
		if err := tx.Where("comment_id IN (?)", commentIDs).Delete(&model.CommentLikeModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.CommentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.PostLikeModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.PostModel{}).Error
	})
}

package usecase

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"friendboard/internal/entity"
	"friendboard/internal/repo/persistent"
	"friendboard/pkg/logger"
)

type PostUseCase interface {
	CreatePost(authorID, content, imageURL string) (*entity.Post, error)
	GetPost(viewerID, postID string) (*entity.Post, error)
	DeletePost(viewerID, postID string) error
}

type postUseCase struct {
	postRepo   persistent.PostRepository
	friendRepo persistent.FriendRepository
	logger     *logger.Logger
}

func NewPostUseCase(postRepo persistent.PostRepository, friendRepo persistent.FriendRepository, logger *logger.Logger) PostUseCase {
	return &postUseCase{
		postRepo:   postRepo,
		friendRepo: friendRepo,
		logger:     logger,
	}
}

func (uc *postUseCase) CreatePost(authorID, content, imageURL string) (*entity.Post, error) {
	// The HTTP layer validates too; re-check here so future callers can't
	// slip oversized content past the store.
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content must be specified", entity.ErrValidation)
	}
	// Limits are in characters, not bytes, so multibyte content is not
	// penalized.
	if utf8.RuneCountInString(content) > entity.MaxPostContentLength {
		return nil, fmt.Errorf("%w: content exceeds maximum length of %d characters", entity.ErrValidation, entity.MaxPostContentLength)
	}
	if utf8.RuneCountInString(imageURL) > entity.MaxImageRefLength {
		return nil, fmt.Errorf("%w: image reference exceeds maximum length", entity.ErrValidation)
	}

	post := &entity.Post{
		AuthorID: authorID,
		Content:  content,
		ImageURL: imageURL,
	}

	if err := uc.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// GetPost fetches a single post and gates it on the friend graph. A missing
// id is ErrNotFound; an existing post whose author is neither the viewer nor
// a friend is ErrUnauthorized, so "exists but hidden" stays distinguishable
// from emptiness.
func (uc *postUseCase) GetPost(viewerID, postID string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}

	if post.AuthorID != viewerID {
		friendIDs, err := uc.friendRepo.FriendIDs(viewerID)
		if err != nil {
			return nil, fmt.Errorf("failed to load friend graph: %w", err)
		}
		if !IsVisible(viewerID, post.AuthorID, NewFriendSet(friendIDs...)) {
			return nil, entity.ErrUnauthorized
		}
	}

	return post, nil
}

// DeletePost removes the viewer's own post along with its comments and like
// records. Non-owners get ErrUnauthorized and the post stays intact.
func (uc *postUseCase) DeletePost(viewerID, postID string) error {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to fetch post: %w", err)
	}

	if post.AuthorID != viewerID {
		return entity.ErrUnauthorized
	}

	if err := uc.postRepo.DeleteCascade(postID); err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	return nil
}

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

type CommentUseCase interface {
	ListComments(viewerID, postID string) ([]*entity.Comment, error)
	CreateComment(authorID, postID, content string) (*entity.Comment, error)
	DeleteComment(viewerID, commentID string) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	postRepo    persistent.PostRepository
	friendRepo  persistent.FriendRepository
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	postRepo persistent.PostRepository,
	friendRepo persistent.FriendRepository,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		friendRepo:  friendRepo,
		logger:      logger,
	}
}

// ListComments returns a post's comments oldest-first. A comment is only as
// visible as its parent post, so the same friend-graph gate applies before
// anything is read.
func (uc *commentUseCase) ListComments(viewerID, postID string) ([]*entity.Comment, error) {
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

	comments, err := uc.commentRepo.ListByPost(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}

	return comments, nil
}

func (uc *commentUseCase) CreateComment(authorID, postID, content string) (*entity.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content must be specified", entity.ErrValidation)
	}
	if utf8.RuneCountInString(content) > entity.MaxCommentContentLength {
		return nil, fmt.Errorf("%w: content exceeds maximum length of %d characters", entity.ErrValidation, entity.MaxCommentContentLength)
	}
	if postID == "" {
		return nil, fmt.Errorf("%w: postId must be specified", entity.ErrValidation)
	}

	exists, err := uc.postRepo.Exists(postID)
	if err != nil {
		return nil, fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return nil, entity.ErrNotFound
	}

	comment := &entity.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  content,
	}

	if err := uc.commentRepo.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

func (uc *commentUseCase) DeleteComment(viewerID, commentID string) error {
	comment, err := uc.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to fetch comment: %w", err)
	}

	if comment.AuthorID != viewerID {
		return entity.ErrUnauthorized
	}

	if err := uc.commentRepo.Delete(commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}

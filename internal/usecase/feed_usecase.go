package usecase

import (
	"fmt"

	"friendboard/internal/entity"
	"friendboard/internal/repo/persistent"
	"friendboard/pkg/logger"
)

// FeedPageSize is fixed; callers page through with ?page=N and infer the end
// of the feed from a short page.
const FeedPageSize = 10

type FeedUseCase interface {
	GetFeed(viewerID string, page int) ([]*entity.Post, error)
}

type feedUseCase struct {
	postRepo   persistent.PostRepository
	friendRepo persistent.FriendRepository
	logger     *logger.Logger
}

func NewFeedUseCase(postRepo persistent.PostRepository, friendRepo persistent.FriendRepository, logger *logger.Logger) FeedUseCase {
	return &feedUseCase{
		postRepo:   postRepo,
		friendRepo: friendRepo,
		logger:     logger,
	}
}

// GetFeed returns one page of the viewer's chronological feed: newest-first
// posts authored by the viewer or the viewer's friends, each carrying the
// author's public profile. Page is 1-indexed; anything below 1 is page 1.
func (uc *feedUseCase) GetFeed(viewerID string, page int) ([]*entity.Post, error) {
	if page < 1 {
		page = 1
	}

	friendIDs, err := uc.friendRepo.FriendIDs(viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load friend graph: %w", err)
	}

	// Self-posts belong in the feed, so the viewer joins their own friend set.
	friends := NewFriendSet(friendIDs...)
	friends.Add(viewerID)

	offset := (page - 1) * FeedPageSize
	posts, err := uc.postRepo.ListByAuthors(friends.IDs(), FeedPageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed page: %w", err)
	}

	return posts, nil
}

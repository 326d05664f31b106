package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"friendboard/internal/entity"
	"friendboard/internal/repo/persistent"
	"friendboard/pkg/logger"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type EngagementUseCase interface {
	TogglePostLike(ctx context.Context, userID, postID string) (entity.LikeState, error)
	ToggleCommentLike(ctx context.Context, userID, commentID string) (entity.LikeState, error)
	GetPostInfo(ctx context.Context, viewerID, postID string) (*entity.PostInfo, error)
	GetCommentInfo(ctx context.Context, viewerID, commentID string) (*entity.CommentInfo, error)
}

type engagementUseCase struct {
	engagementRepo persistent.EngagementRepository
	postRepo       persistent.PostRepository
	commentRepo    persistent.CommentRepository
	redisClient    *redis.Client
	logger         *logger.Logger
}

func NewEngagementUseCase(
	engagementRepo persistent.EngagementRepository,
	postRepo persistent.PostRepository,
	commentRepo persistent.CommentRepository,
	redisClient *redis.Client,
	logger *logger.Logger,
) EngagementUseCase {
	return &engagementUseCase{
		engagementRepo: engagementRepo,
		postRepo:       postRepo,
		commentRepo:    commentRepo,
		redisClient:    redisClient,
		logger:         logger,
	}
}

// TogglePostLike flips the viewer's like on a post. The find-then-act pair
// here is best effort; the unique index on (user_id, post_id) is what
// actually guarantees at most one record when identical requests race. A
// duplicate-key create means a concurrent toggle already liked, so the call
// folds into the opposite state instead of failing.
func (uc *engagementUseCase) TogglePostLike(ctx context.Context, userID, postID string) (entity.LikeState, error) {
	exists, err := uc.postRepo.Exists(postID)
	if err != nil {
		return "", fmt.Errorf("failed to check post: %w", err)
	}
	if !exists {
		return "", entity.ErrNotFound
	}

	liked, err := uc.engagementRepo.PostLikeExists(ctx, userID, postID)
	if err != nil {
		return "", fmt.Errorf("failed to check like status: %w", err)
	}

	if liked {
		if err := uc.engagementRepo.DeletePostLike(ctx, userID, postID); err != nil {
			return "", fmt.Errorf("failed to unlike post: %w", err)
		}
		uc.adjustLikeCache(ctx, postLikesKey(postID), -1)
		return entity.StateUnliked, nil
	}

	if err := uc.engagementRepo.CreatePostLike(ctx, userID, postID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if delErr := uc.engagementRepo.DeletePostLike(ctx, userID, postID); delErr != nil {
				return "", fmt.Errorf("failed to unlike post: %w", delErr)
			}
			uc.adjustLikeCache(ctx, postLikesKey(postID), -1)
			return entity.StateUnliked, nil
		}
		return "", fmt.Errorf("failed to like post: %w", err)
	}
	uc.adjustLikeCache(ctx, postLikesKey(postID), 1)
	return entity.StateLiked, nil
}

func (uc *engagementUseCase) ToggleCommentLike(ctx context.Context, userID, commentID string) (entity.LikeState, error) {
	if _, err := uc.commentRepo.GetByID(commentID); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return "", err
		}
		return "", fmt.Errorf("failed to check comment: %w", err)
	}

	liked, err := uc.engagementRepo.CommentLikeExists(ctx, userID, commentID)
	if err != nil {
		return "", fmt.Errorf("failed to check like status: %w", err)
	}

	if liked {
		if err := uc.engagementRepo.DeleteCommentLike(ctx, userID, commentID); err != nil {
			return "", fmt.Errorf("failed to unlike comment: %w", err)
		}
		uc.adjustLikeCache(ctx, commentLikesKey(commentID), -1)
		return entity.StateUnliked, nil
	}

	if err := uc.engagementRepo.CreateCommentLike(ctx, userID, commentID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if delErr := uc.engagementRepo.DeleteCommentLike(ctx, userID, commentID); delErr != nil {
				return "", fmt.Errorf("failed to unlike comment: %w", delErr)
			}
			uc.adjustLikeCache(ctx, commentLikesKey(commentID), -1)
			return entity.StateUnliked, nil
		}
		return "", fmt.Errorf("failed to like comment: %w", err)
	}
	uc.adjustLikeCache(ctx, commentLikesKey(commentID), 1)
	return entity.StateLiked, nil
}

// GetPostInfo computes the post's engagement summary with three independent
// queries run concurrently; the first failure cancels the others and no
// partial result is returned. The like count is served cache-first.
func (uc *engagementUseCase) GetPostInfo(ctx context.Context, viewerID, postID string) (*entity.PostInfo, error) {
	var info entity.PostInfo

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := uc.commentRepo.CountByPost(gctx, postID)
		if err != nil {
			return fmt.Errorf("comment count: %w", err)
		}
		info.CommentCount = count
		return nil
	})
	g.Go(func() error {
		count, err := uc.likeCount(gctx, postLikesKey(postID), func(ctx context.Context) (int64, error) {
			return uc.engagementRepo.CountPostLikes(ctx, postID)
		})
		if err != nil {
			return fmt.Errorf("like count: %w", err)
		}
		info.LikeCount = count
		return nil
	})
	g.Go(func() error {
		// Absence of a like record is a valid answer, not an error.
		liked, err := uc.engagementRepo.PostLikeExists(gctx, viewerID, postID)
		if err != nil {
			return fmt.Errorf("is liked: %w", err)
		}
		info.IsLiked = liked
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to aggregate post info: %w", err)
	}
	return &info, nil
}

// GetCommentInfo is the two-query variant for comments: like count and the
// viewer's liked flag, no nested comment count.
func (uc *engagementUseCase) GetCommentInfo(ctx context.Context, viewerID, commentID string) (*entity.CommentInfo, error) {
	var info entity.CommentInfo

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		count, err := uc.likeCount(gctx, commentLikesKey(commentID), func(ctx context.Context) (int64, error) {
			return uc.engagementRepo.CountCommentLikes(ctx, commentID)
		})
		if err != nil {
			return fmt.Errorf("like count: %w", err)
		}
		info.LikeCount = count
		return nil
	})
	g.Go(func() error {
		liked, err := uc.engagementRepo.CommentLikeExists(gctx, viewerID, commentID)
		if err != nil {
			return fmt.Errorf("is liked: %w", err)
		}
		info.IsLiked = liked
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to aggregate comment info: %w", err)
	}
	return &info, nil
}

// likeCount serves the counter cache-first and falls back to the store,
// repopulating the cache on a miss. A cache failure degrades to a store
// read; a store failure still fails the caller.
func (uc *engagementUseCase) likeCount(ctx context.Context, key string, fetch func(context.Context) (int64, error)) (int64, error) {
	if count, ok := uc.cachedCount(ctx, key); ok {
		return count, nil
	}

	count, err := fetch(ctx)
	if err != nil {
		return 0, err
	}
	uc.setCachedCount(ctx, key, count)
	return count, nil
}

func (uc *engagementUseCase) cachedCount(ctx context.Context, key string) (int64, bool) {
	if uc.redisClient == nil {
		return 0, false
	}
	raw, err := uc.redisClient.Get(ctx, key).Result()
	if err != nil {
		return 0, false
	}
	count, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || count < 0 {
		// A counter decremented from a cold start goes negative; refetch.
		return 0, false
	}
	return count, true
}

func (uc *engagementUseCase) setCachedCount(ctx context.Context, key string, count int64) {
	if uc.redisClient == nil {
		return
	}
	if err := uc.redisClient.Set(ctx, key, count, 0).Err(); err != nil {
		uc.logger.Warn("Failed to cache like count %s: %v", key, err)
	}
}

// adjustLikeCache keeps the cached counter in step with the store between
// full reads, so a toggle is visible on the next info request without a
// store round trip.
func (uc *engagementUseCase) adjustLikeCache(ctx context.Context, key string, delta int64) {
	if uc.redisClient == nil {
		return
	}
	if err := uc.redisClient.IncrBy(ctx, key, delta).Err(); err != nil {
		uc.logger.Warn("Failed to adjust like cache %s: %v", key, err)
	}
}

func postLikesKey(postID string) string {
	return "post:likes:" + postID
}

func commentLikesKey(commentID string) string {
	return "comment:likes:" + commentID
}

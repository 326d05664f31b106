package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"friendboard/internal/entity"
	"friendboard/internal/repo/persistent"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	_ persistent.PostRepository       = (*memPostRepo)(nil)
	_ persistent.FriendRepository     = (*memFriendRepo)(nil)
	_ persistent.CommentRepository    = (*memCommentRepo)(nil)
	_ persistent.EngagementRepository = (*memLikeRepo)(nil)
)

// In-memory stand-ins for the persistent repositories. The like store
// enforces the same one-row-per-(user,target) rule the database unique
// index does, so toggle races behave here the way they do against postgres.

type memPostRepo struct {
	mu    sync.Mutex
	posts map[string]*entity.Post

	failList bool
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[string]*entity.Post)}
}

func (r *memPostRepo) Create(post *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	r.posts[post.ID] = post
	return nil
}

func (r *memPostRepo) GetByID(id string) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return post, nil
}

func (r *memPostRepo) ListByAuthors(authorIDs []string, limit, offset int) ([]*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failList {
		return nil, fmt.Errorf("connection refused")
	}

	allowed := make(map[string]struct{}, len(authorIDs))
	for _, id := range authorIDs {
		allowed[id] = struct{}{}
	}

	var matched []*entity.Post
	for _, post := range r.posts {
		if _, ok := allowed[post.AuthorID]; ok {
			matched = append(matched, post)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	if offset >= len(matched) {
		return []*entity.Post{}, nil
	}
	matched = matched[offset:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *memPostRepo) Exists(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.posts[id]
	return ok, nil
}

func (r *memPostRepo) DeleteCascade(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.posts, id)
	return nil
}

type memFriendRepo struct {
	friends map[string][]string
	err     error
}

func (r *memFriendRepo) FriendIDs(userID string) ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.friends[userID], nil
}

type memCommentRepo struct {
	mu       sync.Mutex
	comments map[string]*entity.Comment

	countErr error
}

func newMemCommentRepo() *memCommentRepo {
	return &memCommentRepo{comments: make(map[string]*entity.Comment)}
}

func (r *memCommentRepo) Create(comment *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if comment.ID == "" {
		comment.ID = uuid.NewString()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	r.comments[comment.ID] = comment
	return nil
}

func (r *memCommentRepo) GetByID(id string) (*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment, ok := r.comments[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	return comment, nil
}

func (r *memCommentRepo) ListByPost(postID string) ([]*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Comment
	for _, comment := range r.comments {
		if comment.PostID == postID {
			matched = append(matched, comment)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})
	return matched, nil
}

func (r *memCommentRepo) CountByPost(ctx context.Context, postID string) (int64, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, comment := range r.comments {
		if comment.PostID == postID {
			count++
		}
	}
	return count, nil
}

func (r *memCommentRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.comments, id)
	return nil
}

type likeKey struct {
	userID   string
	targetID string
}

// memLikeRepo mimics the unique indexes on post_likes and comment_likes:
// a second insert for the same key fails with gorm.ErrDuplicatedKey.
type memLikeRepo struct {
	mu           sync.Mutex
	postLikes    map[likeKey]struct{}
	commentLikes map[likeKey]struct{}

	countErr error
}

func newMemLikeRepo() *memLikeRepo {
	return &memLikeRepo{
		postLikes:    make(map[likeKey]struct{}),
		commentLikes: make(map[likeKey]struct{}),
	}
}

func (r *memLikeRepo) CreatePostLike(ctx context.Context, userID, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := likeKey{userID, postID}
	if _, ok := r.postLikes[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.postLikes[key] = struct{}{}
	return nil
}

func (r *memLikeRepo) DeletePostLike(ctx context.Context, userID, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.postLikes, likeKey{userID, postID})
	return nil
}

func (r *memLikeRepo) PostLikeExists(ctx context.Context, userID, postID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.postLikes[likeKey{userID, postID}]
	return ok, nil
}

func (r *memLikeRepo) CountPostLikes(ctx context.Context, postID string) (int64, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for key := range r.postLikes {
		if key.targetID == postID {
			count++
		}
	}
	return count, nil
}

func (r *memLikeRepo) CreateCommentLike(ctx context.Context, userID, commentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := likeKey{userID, commentID}
	if _, ok := r.commentLikes[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.commentLikes[key] = struct{}{}
	return nil
}

func (r *memLikeRepo) DeleteCommentLike(ctx context.Context, userID, commentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.commentLikes, likeKey{userID, commentID})
	return nil
}

func (r *memLikeRepo) CommentLikeExists(ctx context.Context, userID, commentID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.commentLikes[likeKey{userID, commentID}]
	return ok, nil
}

func (r *memLikeRepo) CountCommentLikes(ctx context.Context, commentID string) (int64, error) {
	if r.countErr != nil {
		return 0, r.countErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for key := range r.commentLikes {
		if key.targetID == commentID {
			count++
		}
	}
	return count, nil
}

func (r *memLikeRepo) postLikeCount(postID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for key := range r.postLikes {
		if key.targetID == postID {
			count++
		}
	}
	return count
}

package usecase

import (
	"fmt"
	"testing"
	"time"

	"friendboard/internal/entity"
	"friendboard/pkg/logger"

	"github.com/stretchr/testify/assert"
)

// seedFeedPosts creates count posts for the author, oldest first, so the
// newest post always sorts to the top of the feed.
func seedFeedPosts(t *testing.T, repo *memPostRepo, authorID string, count int) {
	t.Helper()
	base := time.Now().Add(-time.Duration(count) * time.Minute)
	for i := 0; i < count; i++ {
		err := repo.Create(&entity.Post{
			ID:        fmt.Sprintf("%s-post-%d", authorID, i+1),
			AuthorID:  authorID,
			Content:   fmt.Sprintf("post %d", i+1),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		assert.NoError(t, err)
	}
}

func newFeedUseCaseForTest(postRepo *memPostRepo, friendRepo *memFriendRepo) FeedUseCase {
	return NewFeedUseCase(postRepo, friendRepo, logger.New())
}

func TestGetFeed_OnlyFriendsAndSelf(t *testing.T) {
	postRepo := newMemPostRepo()
	friendRepo := &memFriendRepo{friends: map[string][]string{
		"viewer": {"friend-1"},
	}}

	seedFeedPosts(t, postRepo, "viewer", 2)
	seedFeedPosts(t, postRepo, "friend-1", 3)
	seedFeedPosts(t, postRepo, "stranger", 4)

	uc := newFeedUseCaseForTest(postRepo, friendRepo)
	posts, err := uc.GetFeed("viewer", 1)

	assert.NoError(t, err)
	assert.Len(t, posts, 5)
	for _, post := range posts {
		assert.NotEqual(t, "stranger", post.AuthorID)
	}
}

func TestGetFeed_NewestFirst(t *testing.T) {
	postRepo := newMemPostRepo()
	friendRepo := &memFriendRepo{friends: map[string][]string{}}

	seedFeedPosts(t, postRepo, "viewer", 3)

	uc := newFeedUseCaseForTest(postRepo, friendRepo)
	posts, err := uc.GetFeed("viewer", 1)

	assert.NoError(t, err)
	assert.Len(t, posts, 3)
	for i := 1; i < len(posts); i++ {
		assert.False(t, posts[i].CreatedAt.After(posts[i-1].CreatedAt))
	}
}

func TestGetFeed_Pagination(t *testing.T) {
	postRepo := newMemPostRepo()
	friendRepo := &memFriendRepo{friends: map[string][]string{
		"viewer": {"friend-1"},
	}}

	seedFeedPosts(t, postRepo, "friend-1", 25)

	uc := newFeedUseCaseForTest(postRepo, friendRepo)

	page1, err := uc.GetFeed("viewer", 1)
	assert.NoError(t, err)
	assert.Len(t, page1, 10)

	page2, err := uc.GetFeed("viewer", 2)
	assert.NoError(t, err)
	assert.Len(t, page2, 10)

	page3, err := uc.GetFeed("viewer", 3)
	assert.NoError(t, err)
	assert.Len(t, page3, 5)

	page4, err := uc.GetFeed("viewer", 4)
	assert.NoError(t, err)
	assert.Empty(t, page4)

	// No overlap between consecutive pages.
	seen := make(map[string]struct{})
	for _, post := range append(append(page1, page2...), page3...) {
		_, dup := seen[post.ID]
		assert.False(t, dup, "post %s appeared on more than one page", post.ID)
		seen[post.ID] = struct{}{}
	}
}

func TestGetFeed_PageBelowOneIsPageOne(t *testing.T) {
	postRepo := newMemPostRepo()
	friendRepo := &memFriendRepo{friends: map[string][]string{}}

	seedFeedPosts(t, postRepo, "viewer", 12)

	uc := newFeedUseCaseForTest(postRepo, friendRepo)

	page1, err := uc.GetFeed("viewer", 1)
	assert.NoError(t, err)

	for _, page := range []int{0, -1, -100} {
		posts, err := uc.GetFeed("viewer", page)
		assert.NoError(t, err)
		assert.Equal(t, page1, posts)
	}
}

func TestGetFeed_EmptyForFriendlessViewerWithNoPosts(t *testing.T) {
	postRepo := newMemPostRepo()
	friendRepo := &memFriendRepo{friends: map[string][]string{}}

	seedFeedPosts(t, postRepo, "stranger", 5)

	uc := newFeedUseCaseForTest(postRepo, friendRepo)
	posts, err := uc.GetFeed("viewer", 1)

	assert.NoError(t, err)
	assert.Empty(t, posts)
}

func TestGetFeed_FriendGraphError(t *testing.T) {
	postRepo := newMemPostRepo()
	friendRepo := &memFriendRepo{err: fmt.Errorf("connection refused")}

	uc := newFeedUseCaseForTest(postRepo, friendRepo)
	posts, err := uc.GetFeed("viewer", 1)

	assert.Error(t, err)
	assert.Nil(t, posts)
}

func TestGetFeed_StoreError(t *testing.T) {
	postRepo := newMemPostRepo()
	postRepo.failList = true
	friendRepo := &memFriendRepo{friends: map[string][]string{}}

	uc := newFeedUseCaseForTest(postRepo, friendRepo)
	posts, err := uc.GetFeed("viewer", 1)

	assert.Error(t, err)
	assert.Nil(t, posts)
}

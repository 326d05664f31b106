package entity

import "time"

// LikeState is the outcome of a toggle. The existence of a like record is
// the liked state; there is no boolean flag on content.
type LikeState string

const (
	StateLiked   LikeState = "liked"
	StateUnliked LikeState = "unliked"
)

// PostLike is one user's like on one post. At most one exists per
// (user, post) pair; the storage layer enforces this with a unique index.
type PostLike struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PostID    string    `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentLike is one user's like on one comment, unique per (user, comment).
type CommentLike struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CommentID string    `json:"comment_id"`
	CreatedAt time.Time `json:"created_at"`
}

package entity

import "time"

const (
	// MaxPostContentLength bounds the body of a post.
	MaxPostContentLength = 60000
	// MaxImageRefLength bounds the stored image reference; the media itself
	// lives in object storage handled outside this service.
	MaxImageRefLength = 5000
)

// Post is immutable after creation except for deletion by its author.
type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	ImageURL  string    `json:"image_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Author carries the denormalized public profile of the post's author.
	// Populated by feed and single-item reads, never written back.
	Author *Author `json:"author,omitempty"`
}

// Author is the read-only slice of a user profile joined onto content items.
type Author struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	AvatarURL string `json:"avatar_url"`
}

// PostInfo is the engagement summary of a post for one viewer.
type PostInfo struct {
	CommentCount int64 `json:"comment_count"`
	LikeCount    int64 `json:"like_count"`
	IsLiked      bool  `json:"is_liked"`
}

package entity

import "time"

// MaxCommentContentLength bounds the body of a comment.
const MaxCommentContentLength = 1000

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`

	Author *Author `json:"author,omitempty"`
}

// CommentInfo is the engagement summary of a comment for one viewer.
type CommentInfo struct {
	LikeCount int64 `json:"like_count"`
	IsLiked   bool  `json:"is_liked"`
}

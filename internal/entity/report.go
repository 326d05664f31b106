package entity

import "time"

// ErrorReport is a client-submitted error record, stored for later triage.
type ErrorReport struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

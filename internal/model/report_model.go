package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ErrorReportModel struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func (ErrorReportModel) TableName() string {
	return "error_reports"
}

func (r *ErrorReportModel) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

package persistent

import (
	"friendboard/internal/entity"
	"friendboard/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:        m.ID,
		AuthorID:  m.AuthorID,
		Content:   m.Content,
		ImageURL:  m.ImageURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:        e.ID,
		AuthorID:  e.AuthorID,
		Content:   e.Content,
		ImageURL:  e.ImageURL,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		AuthorID:  m.AuthorID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        e.ID,
		PostID:    e.PostID,
		AuthorID:  e.AuthorID,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
	}
}

func ToErrorReportEntity(m *model.ErrorReportModel) *entity.ErrorReport {
	if m == nil {
		return nil
	}

	return &entity.ErrorReport{
		ID:        m.ID,
		UserID:    m.UserID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func ToErrorReportModel(e *entity.ErrorReport) *model.ErrorReportModel {
	if e == nil {
		return nil
	}

	return &model.ErrorReportModel{
		ID:        e.ID,
		UserID:    e.UserID,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
	}
}

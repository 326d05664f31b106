package persistent

import (
	"friendboard/internal/entity"

	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(report *entity.ErrorReport) error
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(report *entity.ErrorReport) error {
	reportModel := ToErrorReportModel(report)
	if err := r.db.Create(reportModel).Error; err != nil {
		return err
	}
	*report = *ToErrorReportEntity(reportModel)
	return nil
}

package usecase

import (
	"fmt"
	"strings"

	"friendboard/internal/entity"
	"friendboard/internal/repo/persistent"
	"friendboard/pkg/logger"
)

type ReportUseCase interface {
	CreateReport(userID, content string) (*entity.ErrorReport, error)
}

type reportUseCase struct {
	reportRepo persistent.ReportRepository
	logger     *logger.Logger
}

func NewReportUseCase(reportRepo persistent.ReportRepository, logger *logger.Logger) ReportUseCase {
	return &reportUseCase{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

func (uc *reportUseCase) CreateReport(userID, content string) (*entity.ErrorReport, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: content must be specified", entity.ErrValidation)
	}

	report := &entity.ErrorReport{
		UserID:  userID,
		Content: content,
	}

	if err := uc.reportRepo.Create(report); err != nil {
		return nil, fmt.Errorf("failed to store error report: %w", err)
	}

	uc.logger.Info("Client error report stored: user=%s", userID)
	return report, nil
}

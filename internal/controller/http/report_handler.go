package http

import (
	"net/http"

	"friendboard/internal/usecase"
	"friendboard/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportUseCase usecase.ReportUseCase
	logger        *logger.Logger
}

func NewReportHandler(reportUseCase usecase.ReportUseCase, logger *logger.Logger) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
		logger:        logger,
	}
}

type CreateReportRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreateReport godoc
// @Summary      Report a client error
// @Description  Store a client-submitted error report for later triage
// @Tags         reports
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateReportRequest true "Error details"
// @Success      201  {object}  entity.ErrorReport
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /errors [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	viewerID := c.GetString("user_id")

	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.reportUseCase.CreateReport(viewerID, req.Content)
	if err != nil {
		if statusFromError(err) == http.StatusInternalServerError {
			h.logger.Error("Failed to store error report: %v", err)
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"friendboard/internal/entity"
	"friendboard/internal/usecase"
	"friendboard/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockReportUseCase is a mock implementation of ReportUseCase
type MockReportUseCase struct {
	mock.Mock
}

func (m *MockReportUseCase) CreateReport(userID, content string) (*entity.ErrorReport, error) {
	args := m.Called(userID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ErrorReport), args.Error(1)
}

var _ usecase.ReportUseCase = (*MockReportUseCase)(nil)

func TestCreateReport_Created(t *testing.T) {
	mockReport := new(MockReportUseCase)
	handler := NewReportHandler(mockReport, logger.New())

	router := setupTestRouter()
	router.POST("/errors", asViewer("user-123", handler.CreateReport))

	created := &entity.ErrorReport{ID: "report-1", UserID: "user-123", Content: "stack trace"}
	mockReport.On("CreateReport", "user-123", "stack trace").Return(created, nil)

	body := `{"content":"stack trace"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/errors", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockReport.AssertExpectations(t)
}

func TestCreateReport_MissingContent(t *testing.T) {
	handler := NewReportHandler(new(MockReportUseCase), logger.New())

	router := setupTestRouter()
	router.POST("/errors", asViewer("user-123", handler.CreateReport))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/errors", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

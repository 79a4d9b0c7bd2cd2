package http

import (
	"net/http"

	"github.com/edudesk/attendance-engine-go/internal/domain/report"
	"github.com/edudesk/attendance-engine-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	GetSummary(w http.ResponseWriter, r *http.Request)
	GetEmployeeSummary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// GetSummary implements ReportHandler.
func (h *reportHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	employeeID, err := employeeIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	h.serveSummary(w, r, employeeID)
}

// GetEmployeeSummary implements ReportHandler. Admin variant keyed by path
// employee ID.
func (h *reportHandlerImpl) GetEmployeeSummary(w http.ResponseWriter, r *http.Request) {
	h.serveSummary(w, r, chi.URLParam(r, "employeeID"))
}

func (h *reportHandlerImpl) serveSummary(w http.ResponseWriter, r *http.Request, employeeID string) {
	query := r.URL.Query()
	req := report.SummaryRequest{
		EmployeeID: employeeID,
		Window:     query.Get("window"),
		StartDate:  query.Get("start_date"),
		EndDate:    query.Get("end_date"),
	}

	result, err := h.reportService.Summarize(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

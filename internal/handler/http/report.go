package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/paylite/payroll-backend-go/internal/domain/report"
	"github.com/paylite/payroll-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Quarterly(w http.ResponseWriter, r *http.Request)
	Annual(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func (h *reportHandlerImpl) Quarterly(w http.ResponseWriter, r *http.Request) {
	quarter, err := strconv.Atoi(chi.URLParam(r, "quarter"))
	if err != nil {
		response.BadRequest(w, "Quarter must be a number between 1 and 4", nil)
		return
	}

	result, err := h.reportService.Quarterly(r.Context(), quarter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *reportHandlerImpl) Annual(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Annual(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

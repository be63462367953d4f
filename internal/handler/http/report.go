package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/xuri/excelize/v2"

	"github.com/officetrack/attendance-backend-go/internal/domain/report"
	"github.com/officetrack/attendance-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	ExportDay(w http.ResponseWriter, r *http.Request)
	ExportMonth(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Summary implements ReportHandler.
func (h *ReportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summaryReq := report.SummaryRequest{
		Date:       r.URL.Query().Get("date"),
		Period:     r.URL.Query().Get("period"),
		Department: r.URL.Query().Get("department"),
	}

	summary, err := h.reportService.Summary(r.Context(), summaryReq)
	if err != nil {
		slog.Error("Summary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// ExportDay implements ReportHandler. Streams the workbook straight to the
// client as a download.
func (h *ReportHandlerImpl) ExportDay(w http.ResponseWriter, r *http.Request) {
	exportReq := report.ExportDayRequest{
		Date:       r.URL.Query().Get("date"),
		Period:     r.URL.Query().Get("period"),
		Department: r.URL.Query().Get("department"),
	}

	f, filename, err := h.reportService.ExportDay(r.Context(), exportReq)
	if err != nil {
		slog.Error("ExportDay service error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeWorkbook(w, f, filename)
}

// ExportMonth implements ReportHandler.
func (h *ReportHandlerImpl) ExportMonth(w http.ResponseWriter, r *http.Request) {
	exportReq := report.ExportMonthRequest{
		Month:      r.URL.Query().Get("month"),
		Department: r.URL.Query().Get("department"),
	}

	f, filename, err := h.reportService.ExportMonth(r.Context(), exportReq)
	if err != nil {
		slog.Error("ExportMonth service error", "error", err)
		response.HandleError(w, err)
		return
	}

	writeWorkbook(w, f, filename)
}

func writeWorkbook(w http.ResponseWriter, f *excelize.File, filename string) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := f.Write(w); err != nil {
		// Headers are already out, nothing useful left to send.
		slog.Error("failed to stream workbook", "filename", filename, "error", err)
	}
}

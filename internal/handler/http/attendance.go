package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/officetrack/attendance-backend-go/internal/domain/attendance"
	"github.com/officetrack/attendance-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	Roster(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	RequestEditAccess(w http.ResponseWriter, r *http.Request)
	EditableRows(w http.ResponseWriter, r *http.Request)
	CommitEdits(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Roster implements AttendanceHandler. Returns the employees of a department
// as blank capture rows for the requested period.
func (a *AttendanceHandlerImpl) Roster(w http.ResponseWriter, r *http.Request) {
	department := r.URL.Query().Get("department")
	period := attendance.Period(r.URL.Query().Get("period"))

	rows, err := a.attendanceService.LoadRoster(r.Context(), department, period)
	if err != nil {
		slog.Error("Roster service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Save implements AttendanceHandler.
func (a *AttendanceHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var saveReq attendance.SaveRequest

	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		slog.Error("Save decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saveResponse, err := a.attendanceService.Save(r.Context(), saveReq)
	if err != nil {
		slog.Error("Save service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance saved", saveResponse)
}

// RequestEditAccess implements AttendanceHandler. The caller re-enters their
// password and receives a short-lived edit token in exchange.
func (a *AttendanceHandlerImpl) RequestEditAccess(w http.ResponseWriter, r *http.Request) {
	var editReq struct {
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&editReq); err != nil {
		slog.Error("RequestEditAccess decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	accessResponse, err := a.attendanceService.RequestEditAccess(r.Context(), editReq.Password)
	if err != nil {
		slog.Error("RequestEditAccess service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, accessResponse)
}

// EditableRows implements AttendanceHandler.
func (a *AttendanceHandlerImpl) EditableRows(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	department := r.URL.Query().Get("department")
	period := attendance.Period(r.URL.Query().Get("period"))

	rows, err := a.attendanceService.LoadEditableRows(r.Context(), date, department, period)
	if err != nil {
		slog.Error("EditableRows service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// CommitEdits implements AttendanceHandler.
func (a *AttendanceHandlerImpl) CommitEdits(w http.ResponseWriter, r *http.Request) {
	var commitReq attendance.CommitEditsRequest

	if err := json.NewDecoder(r.Body).Decode(&commitReq); err != nil {
		slog.Error("CommitEdits decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	commitResponse, err := a.attendanceService.CommitEdits(r.Context(), commitReq)
	if err != nil {
		slog.Error("CommitEdits service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", commitResponse)
}

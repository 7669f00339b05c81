package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/attendance"
	"github.com/MHamza118/EMSFSPro-sub000/internal/handler/http/response"
)

type AttendanceHandler interface {
	Status(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckInLate(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	CheckOutLate(w http.ResponseWriter, r *http.Request)
	MyHistory(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// Status implements AttendanceHandler
func (h *attendanceHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.Status(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CheckIn implements AttendanceHandler
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	h.checkIn(w, r, false)
}

// CheckInLate implements AttendanceHandler
func (h *attendanceHandlerImpl) CheckInLate(w http.ResponseWriter, r *http.Request) {
	h.checkIn(w, r, true)
}

func (h *attendanceHandlerImpl) checkIn(w http.ResponseWriter, r *http.Request, late bool) {
	var req attendance.CheckInRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.Late = late

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", result)
}

// CheckOut implements AttendanceHandler
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	h.checkOut(w, r, false)
}

// CheckOutLate implements AttendanceHandler
func (h *attendanceHandlerImpl) CheckOutLate(w http.ResponseWriter, r *http.Request) {
	h.checkOut(w, r, true)
}

func (h *attendanceHandlerImpl) checkOut(w http.ResponseWriter, r *http.Request, late bool) {
	var req attendance.CheckOutRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.Late = late

	result, err := h.attendanceService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked out successfully", result)
}

// MyHistory implements AttendanceHandler
func (h *attendanceHandlerImpl) MyHistory(w http.ResponseWriter, r *http.Request) {
	filter := historyFilterFromQuery(r, false)
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.MyHistory(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int((result.TotalEvents + int64(result.Limit) - 1) / int64(result.Limit))
	response.SuccessWithMeta(w, result, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalEvents,
		TotalPages: totalPages,
	})
}

// History implements AttendanceHandler
func (h *attendanceHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	filter := historyFilterFromQuery(r, true)
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.History(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int((result.TotalEvents + int64(result.Limit) - 1) / int64(result.Limit))
	response.SuccessWithMeta(w, result, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalEvents,
		TotalPages: totalPages,
	})
}

// ExportCSV implements AttendanceHandler
func (h *attendanceHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	var filter attendance.ExportFilter
	if v := r.URL.Query().Get("user_id"); v != "" {
		filter.UserID = &v
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	data, err := h.attendanceService.ExportCSV(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance_%s.csv", time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func historyFilterFromQuery(r *http.Request, admin bool) attendance.HistoryFilter {
	var filter attendance.HistoryFilter

	if admin {
		if v := r.URL.Query().Get("user_id"); v != "" {
			filter.UserID = &v
		}
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		filter.StartDate = &v
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		filter.EndDate = &v
	}
	if v := r.URL.Query().Get("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil {
			filter.Page = page
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			filter.Limit = limit
		}
	}

	return filter
}

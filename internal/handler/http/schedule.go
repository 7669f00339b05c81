package http

import (
	"encoding/json"
	"net/http"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/schedule"
	"github.com/MHamza118/EMSFSPro-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ScheduleHandler interface {
	GetMySchedule(w http.ResponseWriter, r *http.Request)
	SaveMySchedule(w http.ResponseWriter, r *http.Request)
	GetEmployeeSchedule(w http.ResponseWriter, r *http.Request)
	SaveEmployeeSchedule(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.ScheduleService
}

func NewScheduleHandler(scheduleService schedule.ScheduleService) ScheduleHandler {
	return &scheduleHandlerImpl{scheduleService: scheduleService}
}

// GetMySchedule implements ScheduleHandler
func (h *scheduleHandlerImpl) GetMySchedule(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduleService.GetMySchedule(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SaveMySchedule implements ScheduleHandler
func (h *scheduleHandlerImpl) SaveMySchedule(w http.ResponseWriter, r *http.Request) {
	var req schedule.SaveScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.scheduleService.SaveMySchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule saved successfully", result)
}

// GetEmployeeSchedule implements ScheduleHandler
func (h *scheduleHandlerImpl) GetEmployeeSchedule(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	result, err := h.scheduleService.GetEmployeeSchedule(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SaveEmployeeSchedule implements ScheduleHandler
func (h *scheduleHandlerImpl) SaveEmployeeSchedule(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	if userID == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	var req schedule.SaveScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.UserID = userID

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.scheduleService.SaveEmployeeSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Schedule saved successfully", result)
}

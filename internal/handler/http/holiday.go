package http

import (
	"encoding/json"
	"net/http"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/holiday"
	"github.com/MHamza118/EMSFSPro-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type holidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &holidayHandlerImpl{holidayService: holidayService}
}

// Create implements HolidayHandler
func (h *holidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.holidayService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday request submitted", result)
}

// ListMine implements HolidayHandler
func (h *holidayHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	result, err := h.holidayService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListAll implements HolidayHandler
func (h *holidayHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	var status *holiday.Status
	if v := r.URL.Query().Get("status"); v != "" {
		s := holiday.Status(v)
		if s != holiday.StatusPending && s != holiday.StatusApproved && s != holiday.StatusRejected {
			response.BadRequest(w, "Invalid status filter", nil)
			return
		}
		status = &s
	}

	result, err := h.holidayService.ListAll(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Decide implements HolidayHandler
func (h *holidayHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var req holiday.DecideRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.holidayService.Decide(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday request decided", result)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/compensation"
	"github.com/MHamza118/EMSFSPro-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CompensationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type compensationHandlerImpl struct {
	compensationService compensation.CompensationService
}

func NewCompensationHandler(compensationService compensation.CompensationService) CompensationHandler {
	return &compensationHandlerImpl{compensationService: compensationService}
}

// Create implements CompensationHandler
func (h *compensationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req compensation.CreateRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.compensationService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Compensation request submitted", result)
}

// ListMine implements CompensationHandler
func (h *compensationHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	result, err := h.compensationService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListAll implements CompensationHandler
func (h *compensationHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	var status *compensation.Status
	if v := r.URL.Query().Get("status"); v != "" {
		s := compensation.Status(v)
		if s != compensation.StatusPending && s != compensation.StatusApproved && s != compensation.StatusRejected {
			response.BadRequest(w, "Invalid status filter", nil)
			return
		}
		status = &s
	}

	result, err := h.compensationService.ListAll(r.Context(), status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Decide implements CompensationHandler
func (h *compensationHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Request ID is required", nil)
		return
	}

	var req compensation.DecideRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.compensationService.Decide(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Compensation request decided", result)
}

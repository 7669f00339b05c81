package http

import (
	"encoding/json"
	"net/http"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/progress"
	"github.com/MHamza118/EMSFSPro-sub000/internal/handler/http/response"
)

type ProgressHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
}

type progressHandlerImpl struct {
	progressService progress.ProgressService
}

func NewProgressHandler(progressService progress.ProgressService) ProgressHandler {
	return &progressHandlerImpl{progressService: progressService}
}

// Create implements ProgressHandler
func (h *progressHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req progress.CreateReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.progressService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Progress report submitted", result)
}

// ListMine implements ProgressHandler
func (h *progressHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	result, err := h.progressService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListAll implements ProgressHandler
func (h *progressHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	var filter progress.ListFilter
	if v := r.URL.Query().Get("user_id"); v != "" {
		filter.UserID = &v
	}
	if v := r.URL.Query().Get("date_from"); v != "" {
		filter.DateFrom = &v
	}
	if v := r.URL.Query().Get("date_to"); v != "" {
		filter.DateTo = &v
	}

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.progressService.ListAll(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

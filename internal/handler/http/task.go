package http

import (
	"encoding/json"
	"net/http"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/task"
	"github.com/MHamza118/EMSFSPro-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TaskHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type taskHandlerImpl struct {
	taskService task.TaskService
}

func NewTaskHandler(taskService task.TaskService) TaskHandler {
	return &taskHandlerImpl{taskService: taskService}
}

// Create implements TaskHandler
func (h *taskHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req task.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.taskService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Task created successfully", result)
}

// Get implements TaskHandler
func (h *taskHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Task ID is required", nil)
		return
	}

	result, err := h.taskService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListMine implements TaskHandler
func (h *taskHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	result, err := h.taskService.ListMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListAll implements TaskHandler
func (h *taskHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	var status *task.Status
	if v := r.URL.Query().Get("status"); v != "" {
		s := task.Status(v)
		switch s {
		case task.StatusPending, task.StatusInProgress, task.StatusCompleted, task.StatusOverdue:
			status = &s
		default:
			response.BadRequest(w, "Invalid status filter", nil)
			return
		}
	}

	var assignedTo *string
	if v := r.URL.Query().Get("assigned_to"); v != "" {
		assignedTo = &v
	}

	result, err := h.taskService.ListAll(r.Context(), status, assignedTo)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements TaskHandler
func (h *taskHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Task ID is required", nil)
		return
	}

	var req task.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.taskService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task updated successfully", result)
}

// UpdateStatus implements TaskHandler
func (h *taskHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Task ID is required", nil)
		return
	}

	var req task.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.taskService.UpdateStatus(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task status updated", result)
}

// Delete implements TaskHandler
func (h *taskHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Task ID is required", nil)
		return
	}

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Task deleted successfully", nil)
}

package http

import (
	"net/http"

	"github.com/MHamza118/EMSFSPro-sub000/internal/domain/dashboard"
	"github.com/MHamza118/EMSFSPro-sub000/internal/handler/http/response"
)

type DashboardHandler interface {
	Admin(w http.ResponseWriter, r *http.Request)
	Self(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// Admin implements DashboardHandler
func (h *dashboardHandlerImpl) Admin(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.Admin(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Self implements DashboardHandler
func (h *dashboardHandlerImpl) Self(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.Self(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

package handler

import (
	"net/http"

	"clinic-management/internal/delivery/http/middleware"
	"clinic-management/internal/usecase"
	"clinic-management/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

func (h *DashboardHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	summary, err := h.dashboardUsecase.GetSummary(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get dashboard summary")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard summary retrieved successfully", summary)
}

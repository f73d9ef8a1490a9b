package http

import (
	"net/http"

	"github.com/sitelink-app/sitelink-backend-go/internal/domain/dashboard"
	"github.com/sitelink-app/sitelink-backend-go/internal/handler/http/middleware"
	"github.com/sitelink-app/sitelink-backend-go/internal/handler/http/response"
)

// DashboardHandler exposes the portal overview aggregates
type DashboardHandler interface {
	BusinessOverview(w http.ResponseWriter, r *http.Request)
	ContractorOverview(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// BusinessOverview returns the business portal dashboard aggregates
func (h *dashboardHandlerImpl) BusinessOverview(w http.ResponseWriter, r *http.Request) {
	businessID := middleware.ProfileID(r)
	if businessID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	overview, err := h.dashboardService.BusinessOverview(r.Context(), businessID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}

// ContractorOverview returns the contractor portal dashboard aggregates
func (h *dashboardHandlerImpl) ContractorOverview(w http.ResponseWriter, r *http.Request) {
	profileID := middleware.ProfileID(r)
	if profileID == "" {
		response.Unauthorized(w, "Unauthorized")
		return
	}

	overview, err := h.dashboardService.ContractorOverview(r.Context(), profileID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, overview)
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"panorama/internal/service"
	"panorama/internal/transport/rest/middleware"
)

// AnalyticsHandler handles dashboard and summary endpoints
type AnalyticsHandler struct {
	dashboardSvc *service.DashboardService
	summarySvc   *service.SummaryService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(dashboardSvc *service.DashboardService, summarySvc *service.SummaryService) *AnalyticsHandler {
	return &AnalyticsHandler{
		dashboardSvc: dashboardSvc,
		summarySvc:   summarySvc,
	}
}

// GetDashboard handles GET /v1/panoramas/{panoramaId}/analytics/dashboard
func (h *AnalyticsHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	if middleware.GetOrganizerID(r.Context()) == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	panoramaID := mux.Vars(r)["panoramaId"]
	dashboard, err := h.dashboardSvc.GetDashboard(r.Context(), panoramaID)
	if err != nil {
		if errors.Is(err, service.ErrPanoramaNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dashboard)
}

// GenerateSummary handles POST /v1/panoramas/{panoramaId}/analytics/summary
func (h *AnalyticsHandler) GenerateSummary(w http.ResponseWriter, r *http.Request) {
	if middleware.GetOrganizerID(r.Context()) == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	panoramaID := mux.Vars(r)["panoramaId"]
	summary, err := h.summarySvc.GenerateSummary(r.Context(), panoramaID)
	if err != nil {
		if errors.Is(err, service.ErrPanoramaNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// GetTextAnalysis handles GET /v1/panoramas/{panoramaId}/analytics/text/{questionId}
func (h *AnalyticsHandler) GetTextAnalysis(w http.ResponseWriter, r *http.Request) {
	if middleware.GetOrganizerID(r.Context()) == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	vars := mux.Vars(r)
	analysis, err := h.dashboardSvc.GetTextAnalysis(r.Context(), vars["panoramaId"], vars["questionId"])
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPanoramaNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrQuestionNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

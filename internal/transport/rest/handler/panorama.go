package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"panorama/internal/model"
	"panorama/internal/service"
	"panorama/internal/transport/rest/middleware"
)

// PanoramaHandler handles panorama CRUD endpoints
type PanoramaHandler struct {
	panoramaSvc *service.PanoramaService
}

// NewPanoramaHandler creates a new panorama handler
func NewPanoramaHandler(panoramaSvc *service.PanoramaService) *PanoramaHandler {
	return &PanoramaHandler{panoramaSvc: panoramaSvc}
}

// CreatePanoramaRequest is the request body for creating a panorama
type CreatePanoramaRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	EventName   string           `json:"eventName"`
	EventDate   *time.Time       `json:"eventDate"`
	Questions   []model.Question `json:"questions"`
}

// Create handles POST /v1/panoramas
func (h *PanoramaHandler) Create(w http.ResponseWriter, r *http.Request) {
	organizerID := middleware.GetOrganizerID(r.Context())
	if organizerID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreatePanoramaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	p := &model.Panorama{
		OrganizerID: organizerID,
		Name:        req.Name,
		Description: req.Description,
		EventName:   req.EventName,
		EventDate:   req.EventDate,
		Questions:   req.Questions,
	}

	id, err := h.panoramaSvc.Create(r.Context(), p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	p.ID = id

	writeJSON(w, http.StatusCreated, p)
}

// List handles GET /v1/panoramas
func (h *PanoramaHandler) List(w http.ResponseWriter, r *http.Request) {
	organizerID := middleware.GetOrganizerID(r.Context())
	if organizerID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	panoramas, err := h.panoramaSvc.GetByOrganizerID(r.Context(), organizerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if panoramas == nil {
		panoramas = []*model.Panorama{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"panoramas": panoramas})
}

// Get handles GET /v1/panoramas/{panoramaId}
func (h *PanoramaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["panoramaId"]

	p, err := h.panoramaSvc.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if p == nil {
		writeError(w, http.StatusNotFound, "panorama not found")
		return
	}

	writeJSON(w, http.StatusOK, p)
}

// Update handles PUT /v1/panoramas/{panoramaId}
func (h *PanoramaHandler) Update(w http.ResponseWriter, r *http.Request) {
	organizerID := middleware.GetOrganizerID(r.Context())
	if organizerID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var p model.Panorama
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p.ID = mux.Vars(r)["panoramaId"]

	if err := h.panoramaSvc.Update(r.Context(), &p); err != nil {
		if errors.Is(err, service.ErrPanoramaNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, &p)
}

// Delete handles DELETE /v1/panoramas/{panoramaId}
func (h *PanoramaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	organizerID := middleware.GetOrganizerID(r.Context())
	if organizerID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id := mux.Vars(r)["panoramaId"]
	if err := h.panoramaSvc.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrPanoramaNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

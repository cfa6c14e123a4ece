package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"panorama/internal/model"
	"panorama/internal/service"
	"panorama/internal/transport/rest/middleware"
)

// ResponseHandler handles response collection endpoints
type ResponseHandler struct {
	responseSvc *service.ResponseService
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(responseSvc *service.ResponseService) *ResponseHandler {
	return &ResponseHandler{responseSvc: responseSvc}
}

// Submit handles POST /v1/panoramas/{panoramaId}/responses (public)
func (h *ResponseHandler) Submit(w http.ResponseWriter, r *http.Request) {
	panoramaID := mux.Vars(r)["panoramaId"]

	var submission model.Submission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	submissionID, err := h.responseSvc.Submit(r.Context(), panoramaID, &submission)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPanoramaNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrEmptySubmission):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"submissionId": submissionID})
}

// List handles GET /v1/panoramas/{panoramaId}/responses
func (h *ResponseHandler) List(w http.ResponseWriter, r *http.Request) {
	organizerID := middleware.GetOrganizerID(r.Context())
	if organizerID == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	panoramaID := mux.Vars(r)["panoramaId"]
	responses, err := h.responseSvc.GetByPanoramaID(r.Context(), panoramaID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if responses == nil {
		responses = []model.Response{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"responses": responses})
}

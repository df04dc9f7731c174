package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vinodbargaje/happy-paws-connect/internal/data/repository"
	"github.com/vinodbargaje/happy-paws-connect/internal/dto/request"
	"github.com/vinodbargaje/happy-paws-connect/internal/usecase"
	"github.com/vinodbargaje/happy-paws-connect/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CaregiverHandler struct {
	service usecase.CaregiverService
	log     *zap.Logger
}

func NewCaregiverHandler(service usecase.CaregiverService, log *zap.Logger) *CaregiverHandler {
	return &CaregiverHandler{
		service: service,
		log:     log.With(zap.String("handler", "caregiver")),
	}
}

// ListCaregivers handles GET /api/caregivers (public)
func (h *CaregiverHandler) ListCaregivers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := repository.CaregiverFilter{
		Service: query.Get("service"),
	}
	if v := query.Get("verified"); v != "" {
		verified := v == "true"
		filter.Verified = &verified
	}

	caregivers, err := h.service.ListCaregivers(r.Context(), filter)
	if err != nil {
		h.handleServiceError(w, err, "list caregivers")
		return
	}

	utils.ResponseSuccess(w, "success", caregivers)
}

// GetCaregiver handles GET /api/caregivers/{id} (public)
func (h *CaregiverHandler) GetCaregiver(w http.ResponseWriter, r *http.Request) {
	caregiverID := chi.URLParam(r, "id")
	if caregiverID == "" {
		utils.ResponseBadRequest(w, "Caregiver ID is required", nil)
		return
	}

	caregiver, err := h.service.GetCaregiver(r.Context(), caregiverID)
	if err != nil {
		h.handleServiceError(w, err, "get caregiver")
		return
	}

	utils.ResponseSuccess(w, "success", caregiver)
}

// UpdateProfile handles PUT /api/caregivers/me (protected, caregiver)
func (h *CaregiverHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateCaregiverProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	profile, err := h.service.UpdateOwnProfile(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update caregiver profile")
		return
	}

	utils.ResponseSuccess(w, "Profile updated", profile)
}

func (h *CaregiverHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "unauthorized"):
		h.log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

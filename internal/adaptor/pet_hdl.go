package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vinodbargaje/happy-paws-connect/internal/dto/request"
	"github.com/vinodbargaje/happy-paws-connect/internal/usecase"
	"github.com/vinodbargaje/happy-paws-connect/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PetHandler struct {
	service usecase.PetService
	log     *zap.Logger
}

func NewPetHandler(service usecase.PetService, log *zap.Logger) *PetHandler {
	return &PetHandler{
		service: service,
		log:     log.With(zap.String("handler", "pet")),
	}
}

// GetPets handles GET /api/pets (protected, owner)
func (h *PetHandler) GetPets(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	pets, err := h.service.GetPets(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get pets")
		return
	}

	utils.ResponseSuccess(w, "success", pets)
}

// GetPetByID handles GET /api/pets/{id} (protected, owner)
func (h *PetHandler) GetPetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	petID := chi.URLParam(r, "id")
	if petID == "" {
		utils.ResponseBadRequest(w, "Pet ID is required", nil)
		return
	}

	pet, err := h.service.GetPetByID(r.Context(), userID, petID)
	if err != nil {
		h.handleServiceError(w, err, "get pet")
		return
	}

	utils.ResponseSuccess(w, "success", pet)
}

// CreatePet handles POST /api/pets (protected, owner)
func (h *PetHandler) CreatePet(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	pet, err := h.service.CreatePet(r.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(w, err, "create pet")
		return
	}

	utils.ResponseCreated(w, "Pet added", pet)
}

// UpdatePet handles PUT /api/pets/{id} (protected, owner)
func (h *PetHandler) UpdatePet(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	petID := chi.URLParam(r, "id")
	if petID == "" {
		utils.ResponseBadRequest(w, "Pet ID is required", nil)
		return
	}

	var req request.UpdatePetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	pet, err := h.service.UpdatePet(r.Context(), userID, petID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update pet")
		return
	}

	utils.ResponseSuccess(w, "Pet updated", pet)
}

// DeletePet handles DELETE /api/pets/{id} (protected, owner)
func (h *PetHandler) DeletePet(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	petID := chi.URLParam(r, "id")
	if petID == "" {
		utils.ResponseBadRequest(w, "Pet ID is required", nil)
		return
	}

	if err := h.service.DeletePet(r.Context(), userID, petID); err != nil {
		h.handleServiceError(w, err, "delete pet")
		return
	}

	utils.ResponseSuccess(w, "Pet removed", nil)
}

func (h *PetHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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

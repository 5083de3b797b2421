package approve_owner

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SVP-BookingService/internal/api/handlers"
	"github.com/m04kA/SVP-BookingService/internal/service/owners"
)

const (
	msgInvalidOwnerID  = "некорректный ID владельца"
	msgOwnerNotFound   = "владелец не найден"
	msgAlreadyApproved = "заявка уже одобрена"
)

type Handler struct {
	service OwnerService
	logger  Logger
}

func NewHandler(service OwnerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/owners/{ownerId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ownerID, err := strconv.ParseInt(vars["ownerId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /admin/owners/{ownerId}/approve - Invalid owner ID: %v", vars["ownerId"])
		handlers.RespondBadRequest(w, msgInvalidOwnerID)
		return
	}

	result, err := h.service.Approve(r.Context(), ownerID)
	if err != nil {
		switch {
		case errors.Is(err, owners.ErrOwnerNotFound):
			h.logger.Warn("POST /admin/owners/%d/approve - Owner not found", ownerID)
			handlers.RespondNotFound(w, msgOwnerNotFound)

		case errors.Is(err, owners.ErrAlreadyApproved):
			h.logger.Warn("POST /admin/owners/%d/approve - Already approved", ownerID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyApproved)

		default:
			h.logger.Error("POST /admin/owners/%d/approve - Failed to approve: %v", ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/owners/%d/approve - Approved", ownerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package register_owner

import (
	"errors"
	"net/http"

	"github.com/m04kA/SVP-BookingService/internal/api/handlers"
	"github.com/m04kA/SVP-BookingService/internal/service/owners"
	"github.com/m04kA/SVP-BookingService/internal/service/owners/models"
)

const (
	msgInvalidBody  = "некорректное тело запроса"
	msgInvalidOwner = "некорректные данные заявки"
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

// Handle POST /api/v1/owners
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var body models.RegisterOwnerRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /owners - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Register(r.Context(), &body)
	if err != nil {
		switch {
		case errors.Is(err, owners.ErrInvalidInput):
			h.logger.Warn("POST /owners - Invalid application: %v", err)
			handlers.RespondBadRequest(w, msgInvalidOwner)

		default:
			h.logger.Error("POST /owners - Failed to register owner: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /owners - Registered owner %d (status=%s)", result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

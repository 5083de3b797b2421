package get_owners

import (
	"errors"
	"net/http"

	"github.com/m04kA/SVP-BookingService/internal/api/handlers"
	"github.com/m04kA/SVP-BookingService/internal/service/owners"
)

const msgInvalidStatus = "некорректный статус заявки"

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

// Handle GET /api/v1/admin/owners?status=pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = &s
	}

	result, err := h.service.List(r.Context(), status)
	if err != nil {
		switch {
		case errors.Is(err, owners.ErrInvalidInput):
			h.logger.Warn("GET /admin/owners - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/owners - Failed to list owners: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/owners - Returned %d owners", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_discounts

import (
	"net/http"

	"github.com/m04kA/SVP-BookingService/internal/api/handlers"
)

type Handler struct {
	service DiscountService
	logger  Logger
}

func NewHandler(service DiscountService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/discounts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/discounts - Failed to list discounts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/discounts - Returned %d discounts", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}

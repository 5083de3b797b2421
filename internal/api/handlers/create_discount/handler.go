package create_discount

import (
	"errors"
	"net/http"

	"github.com/m04kA/SVP-BookingService/internal/api/handlers"
	"github.com/m04kA/SVP-BookingService/internal/service/discounts"
	"github.com/m04kA/SVP-BookingService/internal/service/discounts/models"
)

const (
	msgInvalidBody     = "некорректное тело запроса"
	msgInvalidDiscount = "некорректные данные промокода"
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

// Handle POST /api/v1/admin/discounts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var body models.CreateDiscountRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /admin/discounts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.Create(r.Context(), &body)
	if err != nil {
		switch {
		case errors.Is(err, discounts.ErrInvalidInput):
			h.logger.Warn("POST /admin/discounts - Invalid discount: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDiscount)

		default:
			h.logger.Error("POST /admin/discounts - Failed to create discount: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/discounts - Created discount %d (%s, %d%%)", result.ID, result.Code, result.Percent)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

package delete_discount

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SVP-BookingService/internal/api/handlers"
	"github.com/m04kA/SVP-BookingService/internal/service/discounts"
)

const (
	msgInvalidDiscountID = "некорректный ID промокода"
	msgDiscountNotFound  = "промокод не найден"
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

// Handle DELETE /api/v1/admin/discounts/{discountId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	discountID, err := strconv.ParseInt(vars["discountId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/discounts/{discountId} - Invalid discount ID: %v", vars["discountId"])
		handlers.RespondBadRequest(w, msgInvalidDiscountID)
		return
	}

	if err := h.service.Delete(r.Context(), discountID); err != nil {
		switch {
		case errors.Is(err, discounts.ErrDiscountNotFound):
			h.logger.Warn("DELETE /admin/discounts/%d - Discount not found", discountID)
			handlers.RespondNotFound(w, msgDiscountNotFound)

		default:
			h.logger.Error("DELETE /admin/discounts/%d - Failed to delete: %v", discountID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/discounts/%d - Success", discountID)
	w.WriteHeader(http.StatusNoContent)
}

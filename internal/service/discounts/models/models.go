package models

import (
	"time"

	"github.com/m04kA/SVP-BookingService/internal/domain"
)

// Request модели

// CreateDiscountRequest запрос на создание промокода
type CreateDiscountRequest struct {
	Code    string `json:"code"`
	Percent int    `json:"percent"` // [1, 100]
}

// Response модели

// DiscountResponse ответ с данными промокода
type DiscountResponse struct {
	ID        int64     `json:"id"`
	Code      string    `json:"code"`
	Percent   int       `json:"percent"`
	CreatedAt time.Time `json:"createdAt"`
}

// DiscountListResponse ответ со списком промокодов
type DiscountListResponse struct {
	Discounts []DiscountResponse `json:"discounts"`
	Total     int                `json:"total"`
}

// FromDomainDiscount конвертирует domain модель в response
func FromDomainDiscount(d *domain.DiscountCode) *DiscountResponse {
	return &DiscountResponse{
		ID:        d.ID,
		Code:      d.Code,
		Percent:   d.Percent,
		CreatedAt: d.CreatedAt,
	}
}

// FromDomainDiscountList конвертирует список domain моделей в response
func FromDomainDiscountList(discounts []*domain.DiscountCode) *DiscountListResponse {
	result := make([]DiscountResponse, 0, len(discounts))
	for _, d := range discounts {
		result = append(result, *FromDomainDiscount(d))
	}

	return &DiscountListResponse{
		Discounts: result,
		Total:     len(result),
	}
}

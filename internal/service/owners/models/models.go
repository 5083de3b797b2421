package models

import (
	"time"

	"github.com/m04kA/SVP-BookingService/internal/domain"
)

// Request модели

// RegisterOwnerRequest заявка на регистрацию владельца площадки
type RegisterOwnerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Response модели

// OwnerResponse ответ с данными владельца
type OwnerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnerListResponse ответ со списком владельцев
type OwnerListResponse struct {
	Owners []OwnerResponse `json:"owners"`
	Total  int             `json:"total"`
}

// FromDomainOwner конвертирует domain модель в response
func FromDomainOwner(o *domain.Owner) *OwnerResponse {
	return &OwnerResponse{
		ID:        o.ID,
		Name:      o.Name,
		Email:     o.Email,
		Phone:     o.Phone,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

// FromDomainOwnerList конвертирует список domain моделей в response
func FromDomainOwnerList(owners []*domain.Owner) *OwnerListResponse {
	result := make([]OwnerResponse, 0, len(owners))
	for _, o := range owners {
		result = append(result, *FromDomainOwner(o))
	}

	return &OwnerListResponse{
		Owners: result,
		Total:  len(result),
	}
}

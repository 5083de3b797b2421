package models

import (
	"time"

	"github.com/m04kA/SVP-BookingService/internal/domain"
)

// Request модели

// CreateReviewRequest запрос на создание отзыва
type CreateReviewRequest struct {
	VenueID    int64  `json:"venueId"`
	PlayerName string `json:"playerName"`
	Rating     int    `json:"rating"` // [1, 5]
	Comment    string `json:"comment"`
}

// Response модели

// ReviewResponse ответ с данными отзыва
type ReviewResponse struct {
	ID         int64     `json:"id"`
	VenueID    int64     `json:"venueId"`
	PlayerName string    `json:"playerName"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReviewListResponse ответ со списком отзывов и средним рейтингом
type ReviewListResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating float64          `json:"averageRating"`
	Total         int              `json:"total"`
}

// FromDomainReview конвертирует domain модель в response
func FromDomainReview(r *domain.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:         r.ID,
		VenueID:    r.VenueID,
		PlayerName: r.PlayerName,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

// FromDomainReviewList конвертирует список domain моделей в response
func FromDomainReviewList(reviews []*domain.Review) *ReviewListResponse {
	result := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, *FromDomainReview(r))
	}

	return &ReviewListResponse{
		Reviews:       result,
		AverageRating: domain.AverageRating(reviews),
		Total:         len(result),
	}
}

package create_review

import "github.com/m04kA/SVP-BookingService/internal/service/reviews/models"

// CreateReviewRequest HTTP модель запроса на создание отзыва.
// VenueID берется из пути
type CreateReviewRequest struct {
	PlayerName string `json:"playerName"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// ToServiceRequest конвертирует HTTP модель в запрос сервиса
func (r *CreateReviewRequest) ToServiceRequest(venueID int64) *models.CreateReviewRequest {
	return &models.CreateReviewRequest{
		VenueID:    venueID,
		PlayerName: r.PlayerName,
		Rating:     r.Rating,
		Comment:    r.Comment,
	}
}

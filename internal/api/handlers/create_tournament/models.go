package create_tournament

import (
	"fmt"
	"time"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	"github.com/m04kA/SVP-BookingService/internal/service/tournaments/models"
)

// CreateTournamentRequest HTTP модель запроса на создание турнира.
// Дата принимается строкой в формате YYYY-MM-DD
type CreateTournamentRequest struct {
	VenueID int64   `json:"venueId"`
	Name    string  `json:"name"`
	Date    string  `json:"date"`
	Fee     float64 `json:"fee"`
	Details string  `json:"details,omitempty"`
}

// ToServiceRequest конвертирует HTTP модель в запрос сервиса
func (r *CreateTournamentRequest) ToServiceRequest() (*models.CreateTournamentRequest, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", r.Date, err)
	}

	return &models.CreateTournamentRequest{
		VenueID: r.VenueID,
		Name:    r.Name,
		Date:    date,
		Fee:     r.Fee,
		Details: r.Details,
	}, nil
}

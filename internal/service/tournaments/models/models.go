package models

import (
	"time"

	"github.com/m04kA/SVP-BookingService/internal/domain"
)

// Request модели

// CreateTournamentRequest запрос на создание турнира
type CreateTournamentRequest struct {
	VenueID int64     `json:"venueId"`
	Name    string    `json:"name"`
	Date    time.Time `json:"date"`
	Fee     float64   `json:"fee"`
	Details string    `json:"details,omitempty"`
}

// RegisterPlayerRequest запрос на регистрацию игрока в турнире
type RegisterPlayerRequest struct {
	PlayerName string `json:"playerName"`
}

// Response модели

// TournamentResponse ответ с данными турнира
type TournamentResponse struct {
	ID      int64  `json:"id"`
	VenueID int64  `json:"venueId"`
	Sport   string `json:"sport"`
	Name    string `json:"name"`
	Date    string `json:"date"` // "2026-03-15"
	Fee     float64 `json:"fee"`
	Details string `json:"details,omitempty"`

	// Снимок площадки на момент создания турнира
	VenueName     string `json:"venueName"`
	VenueCity     string `json:"venueCity"`
	VenueLocation string `json:"venueLocation"`

	RegisteredPlayers []string `json:"registeredPlayers"`
	PlayersCount      int      `json:"playersCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TournamentListResponse ответ со списком турниров
type TournamentListResponse struct {
	Tournaments []TournamentResponse `json:"tournaments"`
	Total       int                  `json:"total"`
}

// FromDomainTournament конвертирует domain модель в response
func FromDomainTournament(t *domain.Tournament) *TournamentResponse {
	return &TournamentResponse{
		ID:                t.ID,
		VenueID:           t.VenueID,
		Sport:             string(t.Sport),
		Name:              t.Name,
		Date:              t.Date.Format(domain.DateFormat),
		Fee:               t.Fee,
		Details:           t.Details,
		VenueName:         t.Venue.Name,
		VenueCity:         t.Venue.City,
		VenueLocation:     t.Venue.Location,
		RegisteredPlayers: t.RegisteredPlayers,
		PlayersCount:      len(t.RegisteredPlayers),
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

// FromDomainTournamentList конвертирует список domain моделей в response
func FromDomainTournamentList(tournaments []*domain.Tournament) *TournamentListResponse {
	result := make([]TournamentResponse, 0, len(tournaments))
	for _, t := range tournaments {
		result = append(result, *FromDomainTournament(t))
	}

	return &TournamentListResponse{
		Tournaments: result,
		Total:       len(result),
	}
}

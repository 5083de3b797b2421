package tournaments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	tournamentRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/tournament"
	venueRepo "github.com/m04kA/SVP-BookingService/internal/infra/storage/venue"
	"github.com/m04kA/SVP-BookingService/internal/service/tournaments/models"
)

// Service сервис для работы с турнирами
type Service struct {
	tournamentRepo TournamentRepository
	venueRepo      VenueRepository
	txManager      TransactionManager
	logger         Logger
}

// NewService создает новый экземпляр сервиса турниров
func NewService(
	tournamentRepo TournamentRepository,
	venueRepo VenueRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		tournamentRepo: tournamentRepo,
		venueRepo:      venueRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// Create создает турнир со снимком площадки.
// Вид спорта наследуется от площадки
func (s *Service) Create(ctx context.Context, req *models.CreateTournamentRequest) (*models.TournamentResponse, error) {
	s.logger.Info("Create: creating tournament %q at venue=%d", req.Name, req.VenueID)

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	venue, err := s.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("Create: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("Create: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: Create - venue check: %v", ErrInternal, err)
	}

	tournament := &domain.Tournament{
		VenueID:           req.VenueID,
		Venue:             venue.Snapshot(),
		Sport:             venue.Sport,
		Name:              req.Name,
		Date:              req.Date,
		Fee:               req.Fee,
		Details:           req.Details,
		RegisteredPlayers: []string{},
	}

	created, err := s.tournamentRepo.Create(ctx, tournament)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: tournament id=%d created", created.ID)
	return models.FromDomainTournament(created), nil
}

// GetByID получает турнир по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.TournamentResponse, error) {
	s.logger.Info("GetByID: fetching tournament id=%d", id)

	tournament, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tournamentRepo.ErrTournamentNotFound) {
			s.logger.Warn("GetByID: tournament id=%d not found", id)
			return nil, ErrTournamentNotFound
		}
		s.logger.Error("GetByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTournament(tournament), nil
}

// List возвращает турниры, опционально фильтруя по виду спорта
func (s *Service) List(ctx context.Context, sport *string) (*models.TournamentListResponse, error) {
	s.logger.Info("List: fetching tournaments, sport=%v", sport)

	var domainSport *domain.Sport
	if sport != nil && *sport != "" {
		sp := domain.Sport(*sport)
		if !sp.IsValid() {
			s.logger.Warn("List: unknown sport %q", *sport)
			return nil, fmt.Errorf("%w: unknown sport %q", ErrInvalidInput, *sport)
		}
		domainSport = &sp
	}

	tournaments, err := s.tournamentRepo.List(ctx, domainSport)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d tournaments", len(tournaments))
	return models.FromDomainTournamentList(tournaments), nil
}

// RegisterPlayer регистрирует игрока в турнире.
// Список игроков читается и обновляется в сериализуемой транзакции,
// чтобы одновременные регистрации не теряли друг друга
func (s *Service) RegisterPlayer(ctx context.Context, id int64, req *models.RegisterPlayerRequest) (*models.TournamentResponse, error) {
	s.logger.Info("RegisterPlayer: tournament=%d, player=%q", id, req.PlayerName)

	name := strings.TrimSpace(req.PlayerName)
	if name == "" {
		s.logger.Warn("RegisterPlayer: empty player name")
		return nil, fmt.Errorf("%w: playerName is required", ErrInvalidInput)
	}
	if len([]rune(name)) > domain.MaxPlayerNameLength {
		return nil, fmt.Errorf("%w: playerName exceeds %d characters", ErrInvalidInput, domain.MaxPlayerNameLength)
	}

	var result *domain.Tournament

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		tournament, err := s.tournamentRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, tournamentRepo.ErrTournamentNotFound) {
				return ErrTournamentNotFound
			}
			return fmt.Errorf("%w: RegisterPlayer - repository error: %v", ErrInternal, err)
		}

		for _, p := range tournament.RegisteredPlayers {
			if p == name {
				return ErrAlreadyRegistered
			}
		}

		players := append(tournament.RegisteredPlayers, name)
		if err := s.tournamentRepo.UpdatePlayers(txCtx, id, players); err != nil {
			return fmt.Errorf("%w: RegisterPlayer - update players: %v", ErrInternal, err)
		}

		tournament.RegisteredPlayers = players
		result = tournament
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrTournamentNotFound):
			s.logger.Warn("RegisterPlayer: tournament id=%d not found", id)
		case errors.Is(err, ErrAlreadyRegistered):
			s.logger.Warn("RegisterPlayer: player %q already registered in tournament=%d", name, id)
		default:
			s.logger.Error("RegisterPlayer: failed for tournament=%d: %v", id, err)
		}
		return nil, err
	}

	s.logger.Info("RegisterPlayer: player %q registered in tournament=%d", name, id)
	return models.FromDomainTournament(result), nil
}

// validateCreateRequest валидирует запрос на создание турнира
func validateCreateRequest(req *models.CreateTournamentRequest) error {
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueId must be positive", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Fee < 0 {
		return fmt.Errorf("%w: fee must be non-negative", ErrInvalidInput)
	}

	return nil
}

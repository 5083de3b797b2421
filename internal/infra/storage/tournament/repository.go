package tournament

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SVP-BookingService/internal/domain"
	"github.com/m04kA/SVP-BookingService/pkg/dbmetrics"
	"github.com/m04kA/SVP-BookingService/pkg/psqlbuilder"
)

var tournamentColumns = []string{
	"id",
	"venue_id",
	"venue_snapshot",
	"sport",
	"name",
	"date",
	"fee",
	"details",
	"registered_players",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с турнирами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория турниров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает турнир со снимком площадки, как у бронирований
func (r *Repository) Create(ctx context.Context, t *domain.Tournament) (*domain.Tournament, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	snapshot, err := json.Marshal(t.Venue)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal venue snapshot: %v", ErrBuildQuery, err)
	}

	players, err := json.Marshal(t.RegisteredPlayers)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal players: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Insert("tournaments").
		Columns("venue_id", "venue_snapshot", "sport", "name", "date", "fee", "details", "registered_players").
		Values(t.VenueID, snapshot, t.Sport, t.Name, t.Date, t.Fee, t.Details, players).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return t, nil
}

// GetByID получает турнир по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Tournament, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tournamentColumns...).
		From("tournaments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	t, err := scanTournament(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrTournamentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan tournament: %v", ErrScanRow, err)
	}

	return t, nil
}

// List возвращает турниры, ближайшие по дате сначала
func (r *Repository) List(ctx context.Context, sport *domain.Sport) ([]*domain.Tournament, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(tournamentColumns...).
		From("tournaments").
		OrderBy("date ASC, id ASC")

	if sport != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"sport": *sport})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	tournaments := make([]*domain.Tournament, 0)
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan tournament: %v", ErrScanRow, err)
		}
		tournaments = append(tournaments, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrExecQuery, err)
	}

	return tournaments, nil
}

// UpdatePlayers сохраняет список зарегистрированных игроков
func (r *Repository) UpdatePlayers(ctx context.Context, id int64, players []string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	data, err := json.Marshal(players)
	if err != nil {
		return fmt.Errorf("%w: UpdatePlayers - marshal players: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update("tournaments").
		Set("registered_players", data).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePlayers - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdatePlayers - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdatePlayers - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrTournamentNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTournament(row rowScanner) (*domain.Tournament, error) {
	var (
		t                 domain.Tournament
		snapshot, players []byte
	)

	err := row.Scan(
		&t.ID,
		&t.VenueID,
		&snapshot,
		&t.Sport,
		&t.Name,
		&t.Date,
		&t.Fee,
		&t.Details,
		&players,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(snapshot, &t.Venue); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(players, &t.RegisteredPlayers); err != nil {
		return nil, err
	}

	return &t, nil
}

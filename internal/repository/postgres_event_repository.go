package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/saharsh121/Venue-Finder/internal/domain"
)

// eventColumns defines the columns to select for events
const eventColumns = `id, event_name, booking_type, COALESCE(building, '') as building,
	floor, COALESCE(room_id, '') as room_id, start_time, end_time, status,
	created_at, updated_at`

// PostgresEventRepository implements EventRepository using PostgreSQL
type PostgresEventRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEventRepository creates a new PostgresEventRepository
func NewPostgresEventRepository(pool *pgxpool.Pool) *PostgresEventRepository {
	return &PostgresEventRepository{pool: pool}
}

func scanEvent(row pgx.Row) (*domain.Event, error) {
	event := &domain.Event{}
	err := row.Scan(
		&event.ID,
		&event.Name,
		&event.Scope,
		&event.Building,
		&event.Floor,
		&event.RoomID,
		&event.StartTime,
		&event.EndTime,
		&event.Phase,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (r *PostgresEventRepository) queryEvents(ctx context.Context, query string, args ...any) ([]*domain.Event, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// Create persists a new event
func (r *PostgresEventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (id, event_name, booking_type, building, floor, room_id,
			start_time, end_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.Name,
		event.Scope,
		nullIfEmpty(event.Building),
		event.Floor,
		nullIfEmpty(event.RoomID),
		event.StartTime,
		event.EndTime,
		event.Phase,
		event.CreatedAt,
		event.UpdatedAt,
	)
	return err
}

// List retrieves events ordered by start time, optionally filtered by
// booking type
func (r *PostgresEventRepository) List(ctx context.Context, bookingType string) ([]*domain.Event, error) {
	if bookingType != "" {
		query := `SELECT ` + eventColumns + ` FROM events WHERE booking_type = $1 ORDER BY start_time ASC`
		return r.queryEvents(ctx, query, bookingType)
	}
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY start_time ASC`
	return r.queryEvents(ctx, query)
}

// ListActive retrieves events whose stored phase is active
func (r *PostgresEventRepository) ListActive(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE status = 'active'`
	return r.queryEvents(ctx, query)
}

// ListOverlapping retrieves events intersecting the half-open window
// [start, end)
func (r *PostgresEventRepository) ListOverlapping(ctx context.Context, start, end time.Time) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE start_time < $2 AND end_time > $1`
	return r.queryEvents(ctx, query, start, end)
}

// ActivateDue transitions due upcoming events to active in one statement
// so every row sees the same now
func (r *PostgresEventRepository) ActivateDue(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE events SET status = 'active', updated_at = $1
		WHERE start_time <= $1 AND end_time >= $1 AND status = 'upcoming'
	`
	tag, err := r.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// CompleteElapsed transitions elapsed events to completed. Only upcoming
// and active rows qualify, so a completed event cannot be resurrected.
func (r *PostgresEventRepository) CompleteElapsed(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE events SET status = 'completed', updated_at = $1
		WHERE end_time < $1 AND status IN ('upcoming', 'active')
	`
	tag, err := r.pool.Exec(ctx, query, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/saharsh121/Venue-Finder/internal/domain"
)

// slotColumns defines the columns to select for venue slots
const slotColumns = `id, building, floor, room_id, day, COALESCE(time_slot, '') as time_slot,
	status, updated_at`

// PostgresVenueSlotRepository implements VenueSlotRepository using PostgreSQL
type PostgresVenueSlotRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresVenueSlotRepository creates a new PostgresVenueSlotRepository
func NewPostgresVenueSlotRepository(pool *pgxpool.Pool) *PostgresVenueSlotRepository {
	return &PostgresVenueSlotRepository{pool: pool}
}

func scanSlot(row pgx.Row) (*domain.VenueSlot, error) {
	slot := &domain.VenueSlot{}
	err := row.Scan(
		&slot.ID,
		&slot.Building,
		&slot.Floor,
		&slot.RoomID,
		&slot.Day,
		&slot.TimeSlot,
		&slot.Status,
		&slot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return slot, nil
}

func (r *PostgresVenueSlotRepository) querySlots(ctx context.Context, query string, args ...any) ([]*domain.VenueSlot, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var slots []*domain.VenueSlot
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}

// List retrieves every venue slot
func (r *PostgresVenueSlotRepository) List(ctx context.Context) ([]*domain.VenueSlot, error) {
	query := `SELECT ` + slotColumns + ` FROM venue_slots`
	return r.querySlots(ctx, query)
}

// FindVacant retrieves vacant slots for the given day, narrowed by the
// optional filters. Result order is storage-determined.
func (r *PostgresVenueSlotRepository) FindVacant(ctx context.Context, day int, building string, floor *int, timeSlot string) ([]*domain.VenueSlot, error) {
	query := `SELECT ` + slotColumns + ` FROM venue_slots WHERE status = 'vacant' AND day = $1`
	args := []any{day}

	if building != "" {
		args = append(args, building)
		query += fmt.Sprintf(" AND building = $%d", len(args))
	}
	if floor != nil {
		args = append(args, *floor)
		query += fmt.Sprintf(" AND floor = $%d", len(args))
	}
	if timeSlot != "" {
		args = append(args, timeSlot)
		query += fmt.Sprintf(" AND time_slot = $%d", len(args))
	}

	return r.querySlots(ctx, query, args...)
}

// UpdateStatus writes a slot's derived status
func (r *PostgresVenueSlotRepository) UpdateStatus(ctx context.Context, id int64, status domain.SlotStatus) error {
	query := `UPDATE venue_slots SET status = $2, updated_at = $3 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id, status, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("venue slot %d not found", id)
	}
	return nil
}

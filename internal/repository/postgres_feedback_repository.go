package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/saharsh121/Venue-Finder/internal/domain"
)

// PostgresFeedbackRepository implements FeedbackRepository using PostgreSQL
type PostgresFeedbackRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresFeedbackRepository creates a new PostgresFeedbackRepository
func NewPostgresFeedbackRepository(pool *pgxpool.Pool) *PostgresFeedbackRepository {
	return &PostgresFeedbackRepository{pool: pool}
}

// Create persists a feedback entry
func (r *PostgresFeedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	query := `
		INSERT INTO feedback (id, name, email, message, submitted_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.pool.Exec(ctx, query,
		feedback.ID,
		feedback.Name,
		feedback.Email,
		feedback.Message,
		feedback.SubmittedAt,
	)
	return err
}

// List retrieves feedback entries, newest first
func (r *PostgresFeedbackRepository) List(ctx context.Context) ([]*domain.Feedback, error) {
	query := `SELECT id, name, email, message, submitted_at FROM feedback ORDER BY submitted_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.Feedback
	for rows.Next() {
		entry := &domain.Feedback{}
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.Email, &entry.Message, &entry.SubmittedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

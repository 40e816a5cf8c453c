package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ActivityEntry is one line of the operator activity log: who changed which
// flight and a JSON snapshot of the submitted payload.
type ActivityEntry struct {
	ID         string
	OperatorID string
	FlightID   string
	Action     string // flight_created, flight_updated, flight_deleted
	Payload    []byte
	CreatedAt  time.Time
}

type ActivityRepository interface {
	Record(ctx context.Context, entry *ActivityEntry) error
	ListByOperator(ctx context.Context, operatorID string, limit int) ([]ActivityEntry, error)
}

type PGActivityRepository struct {
	db *pgxpool.Pool
}

func NewActivityRepository(db *pgxpool.Pool) ActivityRepository {
	return &PGActivityRepository{db: db}
}

func (r *PGActivityRepository) Record(ctx context.Context, entry *ActivityEntry) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO activity_log (id, operator_id, flight_id, action, payload, created_at) VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.ID, entry.OperatorID, entry.FlightID, entry.Action, entry.Payload, entry.CreatedAt)
	return err
}

func (r *PGActivityRepository) ListByOperator(ctx context.Context, operatorID string, limit int) ([]ActivityEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, operator_id, flight_id, action, payload, created_at FROM activity_log WHERE operator_id=$1 ORDER BY created_at DESC LIMIT $2`,
		operatorID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]ActivityEntry, 0)
	for rows.Next() {
		var e ActivityEntry
		if err := rows.Scan(&e.ID, &e.OperatorID, &e.FlightID, &e.Action, &e.Payload, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

var _ ActivityRepository = (*PGActivityRepository)(nil)

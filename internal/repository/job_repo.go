package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(database *sql.DB) *JobRepository {
	return &JobRepository{DB: database}
}

// GetReservationIDsOlderThan returns ids of reservations created before the cutoff.
func (r *JobRepository) GetReservationIDsOlderThan(cutoff time.Time) ([]string, error) {
	rows, err := r.DB.Query(`SELECT id FROM reservations WHERE created_at < $1`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("error querying expired reservations: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning reservation ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return ids, nil
}

func (r *JobRepository) DeleteReservations(ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result, err := r.DB.Exec(`DELETE FROM reservations WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("error deleting reservations: %w", err)
	}
	return result.RowsAffected()
}

func (r *JobRepository) DeleteMessagesOlderThan(cutoff time.Time) (int64, error) {
	result, err := r.DB.Exec(`DELETE FROM messages WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("error deleting messages: %w", err)
	}
	return result.RowsAffected()
}

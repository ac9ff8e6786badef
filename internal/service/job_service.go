package service

import (
	"fmt"
	"log"
	"time"
)

// RetentionStore is the persistence surface for the data-retention job.
type RetentionStore interface {
	GetReservationIDsOlderThan(cutoff time.Time) ([]string, error)
	DeleteReservations(ids []string) (int64, error)
	DeleteMessagesOlderThan(cutoff time.Time) (int64, error)
}

type JobService struct {
	Repo RetentionStore
}

func NewJobService(repo RetentionStore) *JobService {
	return &JobService{Repo: repo}
}

// PurgeExpired deletes reservations and contact messages older than the
// retention window. Errors are returned for the caller to log; nothing is
// retried.
func (s *JobService) PurgeExpired(retentionDays int) error {
	if retentionDays <= 0 {
		return fmt.Errorf("retention days must be positive, got %d", retentionDays)
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	log.Printf("Retention job: purging records created before %s", cutoff.Format(time.RFC3339))

	ids, err := s.Repo.GetReservationIDsOlderThan(cutoff)
	if err != nil {
		return fmt.Errorf("retention job: failed to list expired reservations: %w", err)
	}
	if len(ids) > 0 {
		deleted, err := s.Repo.DeleteReservations(ids)
		if err != nil {
			return fmt.Errorf("retention job: failed to delete reservations: %w", err)
		}
		log.Printf("Retention job: deleted %d reservations", deleted)
	}

	deleted, err := s.Repo.DeleteMessagesOlderThan(cutoff)
	if err != nil {
		return fmt.Errorf("retention job: failed to delete messages: %w", err)
	}
	if deleted > 0 {
		log.Printf("Retention job: deleted %d messages", deleted)
	}
	return nil
}

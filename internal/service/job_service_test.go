package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRetentionStore struct {
	oldReservationIDs []string
	deletedIDs        []string
	deletedMessages   int64
}

func (f *fakeRetentionStore) GetReservationIDsOlderThan(cutoff time.Time) ([]string, error) {
	return f.oldReservationIDs, nil
}

func (f *fakeRetentionStore) DeleteReservations(ids []string) (int64, error) {
	f.deletedIDs = ids
	return int64(len(ids)), nil
}

func (f *fakeRetentionStore) DeleteMessagesOlderThan(cutoff time.Time) (int64, error) {
	return f.deletedMessages, nil
}

func TestPurgeExpiredDeletesOldRecords(t *testing.T) {
	store := &fakeRetentionStore{oldReservationIDs: []string{"r1", "r2"}, deletedMessages: 3}
	svc := NewJobService(store)

	require.NoError(t, svc.PurgeExpired(365))
	assert.Equal(t, []string{"r1", "r2"}, store.deletedIDs)
}

func TestPurgeExpiredNothingToDelete(t *testing.T) {
	store := &fakeRetentionStore{}
	svc := NewJobService(store)

	require.NoError(t, svc.PurgeExpired(30))
	assert.Empty(t, store.deletedIDs)
}

func TestPurgeExpiredRejectsNonPositiveWindow(t *testing.T) {
	svc := NewJobService(&fakeRetentionStore{})
	assert.Error(t, svc.PurgeExpired(0))
	assert.Error(t, svc.PurgeExpired(-1))
}

package repositories

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/capstone-portal/apperrors"
	"github.com/capstone-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingRequest(requesterID, projectID string) models.ContinuationRequest {
	return models.ContinuationRequest{
		ProjectID:     projectID,
		ProjectTitle:  "Campus Waste Sorting Assistant",
		RequesterID:   requesterID,
		RequesterName: "Kelompok IoT A",
		Message:       "We would like to continue this project",
		Status:        models.RequestStatusWaiting,
	}
}

func TestCreatePendingAssignsID(t *testing.T) {
	repo := NewMemoryRequestRepository()

	created, err := repo.CreatePending(pendingRequest("g1", "p1"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestCreatePendingRejectsDuplicate(t *testing.T) {
	repo := NewMemoryRequestRepository()

	_, err := repo.CreatePending(pendingRequest("g1", "p1"))
	require.NoError(t, err)

	_, err = repo.CreatePending(pendingRequest("g1", "p1"))
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))

	// Other pairs are unaffected
	_, err = repo.CreatePending(pendingRequest("g1", "p2"))
	assert.NoError(t, err)
	_, err = repo.CreatePending(pendingRequest("g2", "p1"))
	assert.NoError(t, err)
}

func TestUpdateMutateFailureLeavesRecordUnchanged(t *testing.T) {
	repo := NewMemoryRequestRepository()

	created, err := repo.CreatePending(pendingRequest("g1", "p1"))
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = repo.Update(created.ID, func(request *models.ContinuationRequest) error {
		request.Message = "half-applied"
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Message, got.Message)
}

func TestRemoveReturnsFinalState(t *testing.T) {
	repo := NewMemoryRequestRepository()

	created, err := repo.CreatePending(pendingRequest("g1", "p1"))
	require.NoError(t, err)

	removed, err := repo.Remove(created.ID, func(request *models.ContinuationRequest) error {
		request.Status = models.RequestStatusRejected
		now := time.Now()
		request.RespondedAt = &now
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusRejected, removed.Status)
	require.NotNil(t, removed.RespondedAt)

	_, err = repo.FindByID(created.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestRemoveFinalizeFailureKeepsRecord(t *testing.T) {
	repo := NewMemoryRequestRepository()

	created, err := repo.CreatePending(pendingRequest("g1", "p1"))
	require.NoError(t, err)

	_, err = repo.Remove(created.ID, func(request *models.ContinuationRequest) error {
		return apperrors.New(apperrors.KindForbidden, "not yours")
	})
	require.Error(t, err)

	_, err = repo.FindByID(created.ID)
	assert.NoError(t, err)
}

func TestFindByProjectIDNewestFirst(t *testing.T) {
	repo := NewMemoryRequestRepository()

	older := pendingRequest("g1", "p1")
	older.CreatedAt = time.Now().Add(-time.Hour)
	_, err := repo.CreatePending(older)
	require.NoError(t, err)

	newer := pendingRequest("g2", "p1")
	newer.CreatedAt = time.Now()
	_, err = repo.CreatePending(newer)
	require.NoError(t, err)

	requests, err := repo.FindByProjectID("p1")
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "g2", requests[0].RequesterID)
	assert.Equal(t, "g1", requests[1].RequesterID)
}

func TestCreatePendingConcurrent(t *testing.T) {
	repo := NewMemoryRequestRepository()

	const attempts = 32
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.CreatePending(pendingRequest("g1", "p1"))
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded)
}

package repositories

import (
	"github.com/capstone-portal/models"
)

// RequestRepository abstracts the continuation request store so the lifecycle
// rules in services work against any persistence backend. Implementations must
// serialize CreatePending per (requester, project) pair and Update/Remove per
// request id; a caller losing a race gets the error from its own check.
//
// Contract:
//   - FindByID returns an apperrors.KindNotFound error for unknown ids.
//   - CreatePending atomically checks that no Waiting request exists for the
//     (requester, project) pair and inserts; otherwise apperrors.KindConflict.
//   - Update loads the request under a per-row lock, applies mutate, and
//     persists the result. An error from mutate aborts without writing.
//   - Remove loads the request under a per-row lock, applies finalize, persists
//     that final state, and deletes the record. The final state is returned so
//     callers can still report it (a rejection is materialized before removal).
type RequestRepository interface {
	FindByID(id string) (models.ContinuationRequest, error)
	FindByRequesterID(requesterID string) ([]models.ContinuationRequest, error)
	FindByProjectID(projectID string) ([]models.ContinuationRequest, error)
	CreatePending(request models.ContinuationRequest) (models.ContinuationRequest, error)
	Update(id string, mutate func(*models.ContinuationRequest) error) (models.ContinuationRequest, error)
	Remove(id string, finalize func(*models.ContinuationRequest) error) (models.ContinuationRequest, error)
}

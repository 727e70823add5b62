package repositories

import (
	"sort"
	"sync"
	"time"

	"github.com/capstone-portal/apperrors"
	"github.com/capstone-portal/models"
	"github.com/google/uuid"
)

// MemoryRequestRepository is an in-memory request store. It serves local
// development without postgres and the lifecycle tests. A single mutex
// serializes every operation, which trivially satisfies the repository
// contract's atomicity requirements.
type MemoryRequestRepository struct {
	mu       sync.Mutex
	requests map[string]models.ContinuationRequest
}

// NewMemoryRequestRepository creates an empty in-memory request repository
func NewMemoryRequestRepository() *MemoryRequestRepository {
	return &MemoryRequestRepository{
		requests: make(map[string]models.ContinuationRequest),
	}
}

// FindByID retrieves a continuation request by its ID
func (r *MemoryRequestRepository) FindByID(id string) (models.ContinuationRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	request, ok := r.requests[id]
	if !ok {
		return models.ContinuationRequest{}, apperrors.New(apperrors.KindNotFound, "request not found")
	}
	return request, nil
}

// FindByRequesterID retrieves all requests sent by a requester, newest first
func (r *MemoryRequestRepository) FindByRequesterID(requesterID string) ([]models.ContinuationRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	requests := make([]models.ContinuationRequest, 0)
	for _, request := range r.requests {
		if request.RequesterID == requesterID {
			requests = append(requests, request)
		}
	}
	sortNewestFirst(requests)
	return requests, nil
}

// FindByProjectID retrieves all incoming requests for a project, newest first
func (r *MemoryRequestRepository) FindByProjectID(projectID string) ([]models.ContinuationRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	requests := make([]models.ContinuationRequest, 0)
	for _, request := range r.requests {
		if request.ProjectID == projectID {
			requests = append(requests, request)
		}
	}
	sortNewestFirst(requests)
	return requests, nil
}

// CreatePending inserts a new Waiting request, enforcing at most one Waiting
// request per (requester, project) pair
func (r *MemoryRequestRepository) CreatePending(request models.ContinuationRequest) (models.ContinuationRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.requests {
		if existing.RequesterID == request.RequesterID &&
			existing.ProjectID == request.ProjectID &&
			existing.Status == models.RequestStatusWaiting {
			return models.ContinuationRequest{}, apperrors.New(apperrors.KindConflict, "a request already exists for this project")
		}
	}

	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	now := time.Now()
	if request.CreatedAt.IsZero() {
		request.CreatedAt = now
	}
	request.UpdatedAt = now

	r.requests[request.ID] = request
	return request, nil
}

// Update applies mutate to the stored request and persists the result
func (r *MemoryRequestRepository) Update(id string, mutate func(*models.ContinuationRequest) error) (models.ContinuationRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	request, ok := r.requests[id]
	if !ok {
		return models.ContinuationRequest{}, apperrors.New(apperrors.KindNotFound, "request not found")
	}
	if err := mutate(&request); err != nil {
		return models.ContinuationRequest{}, err
	}
	request.UpdatedAt = time.Now()
	r.requests[id] = request
	return request, nil
}

// Remove applies finalize to the stored request and deletes it, returning the
// record as it stood at deletion time
func (r *MemoryRequestRepository) Remove(id string, finalize func(*models.ContinuationRequest) error) (models.ContinuationRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	request, ok := r.requests[id]
	if !ok {
		return models.ContinuationRequest{}, apperrors.New(apperrors.KindNotFound, "request not found")
	}
	if err := finalize(&request); err != nil {
		return models.ContinuationRequest{}, err
	}
	delete(r.requests, id)
	return request, nil
}

func sortNewestFirst(requests []models.ContinuationRequest) {
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
}

package services

import (
	"errors"
	"strings"
	"time"

	"github.com/capstone-portal/apperrors"
	"github.com/capstone-portal/models"
	"github.com/capstone-portal/repositories"
	"gorm.io/gorm"
)

// ProjectDirectory supplies project existence, ownership and status lookups.
// The request lifecycle only reads from it; project CRUD lives in ProjectService.
type ProjectDirectory interface {
	GetProject(projectID string) (models.Project, error)
}

type gormProjectDirectory struct {
	repo *repositories.ProjectRepository
}

func (d gormProjectDirectory) GetProject(projectID string) (models.Project, error) {
	project, err := d.repo.FindByID(projectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Project{}, apperrors.New(apperrors.KindNotFound, "project not found")
	}
	return project, err
}

// RequestService governs the continuation request lifecycle: submission with
// the single-active-request constraint, message edits and cancellation by the
// requester, and approve/reject decisions by the project owner.
type RequestService struct {
	requests repositories.RequestRepository
	projects ProjectDirectory
}

// NewRequestService creates a request service backed by the database
func NewRequestService() *RequestService {
	return &RequestService{
		requests: repositories.NewGormRequestRepository(),
		projects: gormProjectDirectory{repo: repositories.NewProjectRepository()},
	}
}

// NewRequestServiceWith creates a request service with explicit dependencies
func NewRequestServiceWith(requests repositories.RequestRepository, projects ProjectDirectory) *RequestService {
	return &RequestService{requests: requests, projects: projects}
}

// SubmitRequest creates a new Waiting request for the given project.
// The project must exist and be open for continuation, the message must be
// non-empty, and the requester must not already have a Waiting request for
// the same project.
func (s *RequestService) SubmitRequest(requesterID, requesterName, projectID, message string) (models.ContinuationRequest, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return models.ContinuationRequest{}, apperrors.New(apperrors.KindValidation, "message cannot be empty")
	}

	project, err := s.projects.GetProject(projectID)
	if err != nil {
		return models.ContinuationRequest{}, err
	}
	if !project.Status.IsOpenForContinuation() {
		return models.ContinuationRequest{}, apperrors.New(apperrors.KindInvalidState, "project is not open for continuation")
	}

	request := models.ContinuationRequest{
		ProjectID:     projectID,
		ProjectTitle:  project.Title,
		RequesterID:   requesterID,
		RequesterName: requesterName,
		Message:       message,
		Status:        models.RequestStatusWaiting,
		CreatedAt:     time.Now(),
	}

	return s.requests.CreatePending(request)
}

// EditMessage updates the request message. Only the requester may edit, and
// only while the request is still Waiting.
func (s *RequestService) EditMessage(requestID, actorID, newMessage string) (models.ContinuationRequest, error) {
	newMessage = strings.TrimSpace(newMessage)
	if newMessage == "" {
		return models.ContinuationRequest{}, apperrors.New(apperrors.KindValidation, "message cannot be empty")
	}

	return s.requests.Update(requestID, func(request *models.ContinuationRequest) error {
		if request.RequesterID != actorID {
			return apperrors.New(apperrors.KindForbidden, "only the requester can edit this request")
		}
		if request.Status != models.RequestStatusWaiting {
			return apperrors.New(apperrors.KindInvalidState, "request has already been decided")
		}
		request.Message = newMessage
		return nil
	})
}

// CancelRequest withdraws a Waiting request. The record is removed outright.
func (s *RequestService) CancelRequest(requestID, actorID string) error {
	_, err := s.requests.Remove(requestID, func(request *models.ContinuationRequest) error {
		if request.RequesterID != actorID {
			return apperrors.New(apperrors.KindForbidden, "only the requester can cancel this request")
		}
		if request.Status != models.RequestStatusWaiting {
			return apperrors.New(apperrors.KindInvalidState, "request has already been decided")
		}
		return nil
	})
	return err
}

// Approve grants a Waiting request. The project's proposal link is disclosed
// on the approved record. Approval of one request does not touch other pending
// requests for the same project.
func (s *RequestService) Approve(requestID, actorID string) (models.ContinuationRequest, error) {
	request, err := s.requests.FindByID(requestID)
	if err != nil {
		return models.ContinuationRequest{}, err
	}

	project, err := s.projects.GetProject(request.ProjectID)
	if err != nil {
		return models.ContinuationRequest{}, err
	}
	if project.OwnerID != actorID {
		return models.ContinuationRequest{}, apperrors.New(apperrors.KindForbidden, "only the project owner can decide this request")
	}

	return s.requests.Update(requestID, func(request *models.ContinuationRequest) error {
		if request.Status != models.RequestStatusWaiting {
			return apperrors.New(apperrors.KindInvalidState, "request has already been decided")
		}
		now := time.Now()
		proposalLink := project.ProposalLink
		request.Status = models.RequestStatusApproved
		request.ProposalLink = &proposalLink
		request.RespondedAt = &now
		return nil
	})
}

// Reject declines a Waiting request. The record is materialized as Rejected
// for the response, then removed from the active set; subsequent reads see
// not-found and the pair may submit again.
func (s *RequestService) Reject(requestID, actorID, reason string) (models.ContinuationRequest, error) {
	request, err := s.requests.FindByID(requestID)
	if err != nil {
		return models.ContinuationRequest{}, err
	}

	project, err := s.projects.GetProject(request.ProjectID)
	if err != nil {
		return models.ContinuationRequest{}, err
	}
	if project.OwnerID != actorID {
		return models.ContinuationRequest{}, apperrors.New(apperrors.KindForbidden, "only the project owner can decide this request")
	}

	return s.requests.Remove(requestID, func(request *models.ContinuationRequest) error {
		if request.Status != models.RequestStatusWaiting {
			return apperrors.New(apperrors.KindInvalidState, "request has already been decided")
		}
		now := time.Now()
		request.Status = models.RequestStatusRejected
		request.RespondedAt = &now
		if reason = strings.TrimSpace(reason); reason != "" {
			request.RejectionReason = &reason
		}
		return nil
	})
}

// GetRequest retrieves a request for the requester or the project owner.
// Anyone else gets not-found rather than a confirmation that the id exists.
func (s *RequestService) GetRequest(requestID, actorID string) (models.ContinuationRequest, error) {
	request, err := s.requests.FindByID(requestID)
	if err != nil {
		return models.ContinuationRequest{}, err
	}
	if request.RequesterID == actorID {
		return request, nil
	}

	project, err := s.projects.GetProject(request.ProjectID)
	if err == nil && project.OwnerID == actorID {
		return request, nil
	}
	return models.ContinuationRequest{}, apperrors.New(apperrors.KindNotFound, "request not found")
}

// ListSentRequests retrieves all requests submitted by the caller
func (s *RequestService) ListSentRequests(requesterID string) ([]models.ContinuationRequest, error) {
	return s.requests.FindByRequesterID(requesterID)
}

// ListIncomingRequests retrieves all requests against one of the caller's projects
func (s *RequestService) ListIncomingRequests(projectID, actorID string) ([]models.ContinuationRequest, error) {
	project, err := s.projects.GetProject(projectID)
	if err != nil {
		return nil, err
	}
	if project.OwnerID != actorID {
		return nil, apperrors.New(apperrors.KindForbidden, "only the project owner can view incoming requests")
	}
	return s.requests.FindByProjectID(projectID)
}

// CanEditOrCancel reports whether the actor may still edit or cancel the request
func (s *RequestService) CanEditOrCancel(request models.ContinuationRequest, actorID string) bool {
	return request.RequesterID == actorID && request.Status == models.RequestStatusWaiting
}

// CanDecide reports whether the actor may approve or reject the request
func (s *RequestService) CanDecide(request models.ContinuationRequest, project models.Project, actorID string) bool {
	return project.OwnerID == actorID && request.Status == models.RequestStatusWaiting
}

package dto

import (
	"time"

	"github.com/capstone-portal/models"
)

// SubmitRequestPayload represents the body of a continuation request submission
type SubmitRequestPayload struct {
	Message string `json:"message" binding:"required"`
}

// EditRequestPayload represents a message edit on a pending request
type EditRequestPayload struct {
	Message string `json:"message" binding:"required"`
}

// RejectRequestPayload represents an optional rejection reason
type RejectRequestPayload struct {
	Reason string `json:"reason"`
}

// RequestResponse represents a continuation request as returned by the API,
// with the permission predicates the pages use to gate edit/cancel/decide
// controls for the current caller.
type RequestResponse struct {
	ID              string               `json:"id"`
	ProjectID       string               `json:"projectId"`
	ProjectTitle    string               `json:"projectTitle"`
	RequesterID     string               `json:"requesterId"`
	RequesterName   string               `json:"requesterName"`
	Message         string               `json:"message"`
	Status          models.RequestStatus `json:"status"`
	ProposalLink    *string              `json:"proposalLink,omitempty"`
	RejectionReason *string              `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	RespondedAt     *time.Time           `json:"respondedAt,omitempty"`
	CanEditOrCancel bool                 `json:"canEditOrCancel"`
}

// NewRequestResponse maps a request model to its API shape for the given caller
func NewRequestResponse(request models.ContinuationRequest, canEditOrCancel bool) RequestResponse {
	return RequestResponse{
		ID:              request.ID,
		ProjectID:       request.ProjectID,
		ProjectTitle:    request.ProjectTitle,
		RequesterID:     request.RequesterID,
		RequesterName:   request.RequesterName,
		Message:         request.Message,
		Status:          request.Status,
		ProposalLink:    request.ProposalLink,
		RejectionReason: request.RejectionReason,
		CreatedAt:       request.CreatedAt,
		RespondedAt:     request.RespondedAt,
		CanEditOrCancel: canEditOrCancel,
	}
}

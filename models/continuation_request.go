package models

import (
	"time"

	"gorm.io/gorm"
)

// RequestStatus represents the lifecycle state of a continuation request
type RequestStatus string

const (
	RequestStatusWaiting  RequestStatus = "Waiting"
	RequestStatusApproved RequestStatus = "Approved"
	RequestStatusRejected RequestStatus = "Rejected"
)

// IsTerminal reports whether no further transitions are allowed from this state
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case RequestStatusWaiting:
		return false
	case RequestStatusApproved, RequestStatusRejected:
		return true
	}
	return true
}

// ContinuationRequest represents one group's petition to continue another
// group's capstone project.
//
// At most one Waiting request may exist per (requester, project) pair; the
// constraint is backed by a partial unique index on the table. ProposalLink is
// set exactly when the request is approved. Rejected and cancelled requests are
// removed from the active set.
type ContinuationRequest struct {
	ID              string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProjectID       string         `json:"projectId" gorm:"type:uuid;not null;index"`
	ProjectTitle    string         `json:"projectTitle" gorm:"not null"` // title snapshot at submit time, not authoritative
	RequesterID     string         `json:"requesterId" gorm:"type:uuid;not null;index"`
	RequesterName   string         `json:"requesterName" gorm:"not null"`
	Message         string         `json:"message" gorm:"not null"`
	Status          RequestStatus  `json:"status" gorm:"type:varchar(20);not null;default:'Waiting'"`
	ProposalLink    *string        `json:"proposalLink,omitempty" gorm:"default:null"`
	RejectionReason *string        `json:"rejectionReason,omitempty" gorm:"default:null"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	RespondedAt     *time.Time     `json:"respondedAt,omitempty" gorm:"default:null"`
	DeletedAt       gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName sets the table name for ContinuationRequest model
func (ContinuationRequest) TableName() string {
	return "continuation_requests"
}

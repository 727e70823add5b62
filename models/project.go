package models

import (
	"time"

	"gorm.io/gorm"
)

// ProjectStatus represents the publication state of a capstone project.
// Open means the project is completed and accepts continuation requests.
type ProjectStatus string

const (
	ProjectStatusDraft      ProjectStatus = "Draft"
	ProjectStatusInProgress ProjectStatus = "InProgress"
	ProjectStatusCompleted  ProjectStatus = "Completed"
	ProjectStatusOpen       ProjectStatus = "Open"
)

// IsOpenForContinuation reports whether the project accepts continuation requests
func (s ProjectStatus) IsOpenForContinuation() bool {
	return s == ProjectStatusOpen
}

// IsPublished reports whether the project is visible in the public catalog
func (s ProjectStatus) IsPublished() bool {
	switch s {
	case ProjectStatusCompleted, ProjectStatusOpen:
		return true
	case ProjectStatusDraft, ProjectStatusInProgress:
		return false
	}
	return false
}

// Project represents a completed capstone project showcased in the catalog
type Project struct {
	ID                    string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Title                 string         `json:"title" gorm:"not null"`
	Category              string         `json:"category" gorm:"index"`
	Summary               string         `json:"summary" gorm:"default:null"`
	Description           string         `json:"description" gorm:"default:null"`
	Evaluation            string         `json:"evaluation" gorm:"default:null"`
	DevelopmentSuggestion string         `json:"developmentSuggestion" gorm:"default:null"`
	Thumbnail             string         `json:"thumbnail" gorm:"default:null"`
	Images                []string       `json:"images" gorm:"serializer:json"`
	Status                ProjectStatus  `json:"status" gorm:"type:varchar(20);default:'Draft';index"`
	Rating                float64        `json:"rating" gorm:"default:0"`
	RatingCount           int            `json:"ratingCount" gorm:"default:0"`
	ProposalLink          string         `json:"-" gorm:"default:null"` // disclosed only through approved requests
	OwnerID               string         `json:"ownerId" gorm:"type:uuid;not null;index"`
	CreatedAt             time.Time      `json:"createdAt"`
	UpdatedAt             time.Time      `json:"updatedAt"`
	DeletedAt             gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Owner    User      `json:"owner,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

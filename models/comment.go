package models

import (
	"time"

	"gorm.io/gorm"
)

// Comment represents feedback left on a catalog project. A comment may carry
// a 1-5 rating which feeds the project's running average.
type Comment struct {
	ID         string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProjectID  string         `json:"projectId" gorm:"type:uuid;not null;index"`
	AuthorID   string         `json:"authorId" gorm:"type:uuid;not null"`
	AuthorName string         `json:"authorName" gorm:"not null"`
	Body       string         `json:"body" gorm:"not null"`
	Rating     *int           `json:"rating,omitempty" gorm:"default:null"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

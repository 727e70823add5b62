package models

import (
	"time"

	"gorm.io/gorm"
)

// Member represents a student in a capstone group profile
type Member struct {
	ID            string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	UserID        string         `json:"userId" gorm:"type:uuid;not null;index"`
	Name          string         `json:"name" gorm:"not null"`
	StudentNumber string         `json:"studentNumber" gorm:"default:null"`
	Major         string         `json:"major" gorm:"default:null"`
	PortfolioURL  string         `json:"portfolioUrl" gorm:"default:null"`
	LinkedinURL   string         `json:"linkedinUrl" gorm:"default:null"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

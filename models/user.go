package models

import (
	"time"

	"gorm.io/gorm"
)

// Role represents user role types
type Role string

const (
	RoleGroup Role = "group"
	RoleAdmin Role = "admin"
)

// User represents a capstone group account in the portal
type User struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email       string         `json:"email" gorm:"uniqueIndex;not null"`
	Password    string         `json:"-" gorm:"not null"` // Password is not exposed in JSON
	GroupName   string         `json:"groupName" gorm:"not null"`
	Department  string         `json:"department" gorm:"default:null"`
	Year        string         `json:"year" gorm:"default:null"`
	Description string         `json:"description" gorm:"default:null"`
	PhotoURL    string         `json:"photoUrl" gorm:"default:null"`
	Role        Role           `json:"role" gorm:"type:varchar(10);default:'group'"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Members  []Member  `json:"members,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

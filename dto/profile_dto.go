package dto

import (
	"github.com/capstone-portal/models"
)

// ProfileResponse represents a public group profile page
type ProfileResponse struct {
	Group    models.User      `json:"group"`
	Members  []models.Member  `json:"members"`
	Projects []models.Project `json:"projects"`
}

// UpdateProfileRequest represents the payload for editing the own group profile
type UpdateProfileRequest struct {
	GroupName   string `json:"groupName" binding:"required"`
	Department  string `json:"department"`
	Year        string `json:"year"`
	Description string `json:"description"`
	PhotoURL    string `json:"photoUrl"`
}

// MemberPayload represents the payload for adding or editing a group member
type MemberPayload struct {
	Name          string `json:"name" binding:"required"`
	StudentNumber string `json:"studentNumber"`
	Major         string `json:"major"`
	PortfolioURL  string `json:"portfolioUrl"`
	LinkedinURL   string `json:"linkedinUrl"`
}

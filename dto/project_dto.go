package dto

import (
	"github.com/capstone-portal/models"
)

// ProjectFilter represents filter criteria for the catalog
type ProjectFilter struct {
	Search    string
	Category  string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}

// ProjectListResponse represents a paginated catalog page
type ProjectListResponse struct {
	Projects   []models.Project `json:"projects"`
	TotalCount int64            `json:"totalCount"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
	TotalPages int              `json:"totalPages"`
}

// CreateProjectRequest represents the request payload for publishing a project
type CreateProjectRequest struct {
	Title                 string   `json:"title" binding:"required"`
	Category              string   `json:"category"`
	Summary               string   `json:"summary"`
	Description           string   `json:"description"`
	Evaluation            string   `json:"evaluation"`
	DevelopmentSuggestion string   `json:"developmentSuggestion"`
	Thumbnail             string   `json:"thumbnail"`
	Images                []string `json:"images"`
	Status                string   `json:"status"`
	ProposalLink          string   `json:"proposalLink"`
}

// UpdateProjectRequest represents the request payload for updating a project
type UpdateProjectRequest struct {
	Title                 string   `json:"title" binding:"required"`
	Category              string   `json:"category"`
	Summary               string   `json:"summary"`
	Description           string   `json:"description"`
	Evaluation            string   `json:"evaluation"`
	DevelopmentSuggestion string   `json:"developmentSuggestion"`
	Thumbnail             string   `json:"thumbnail"`
	Images                []string `json:"images"`
	Status                string   `json:"status"`
	ProposalLink          string   `json:"proposalLink"`
}

package services

import (
	"errors"

	"github.com/capstone-portal/apperrors"
	"github.com/capstone-portal/dto"
	"github.com/capstone-portal/models"
	"github.com/capstone-portal/repositories"
	"gorm.io/gorm"
)

// ProjectService handles business logic for capstone projects
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(),
	}
}

// ListCatalog retrieves published projects with pagination, filtering and sorting
func (s *ProjectService) ListCatalog(filter dto.ProjectFilter) (dto.ProjectListResponse, error) {
	var response dto.ProjectListResponse

	// Set defaults if not provided
	if filter.Page <= 0 {
		filter.Page = 1
	}

	if filter.PageSize <= 0 {
		filter.PageSize = 10
	}

	if filter.SortBy == "" {
		filter.SortBy = "created_at"
	}

	if filter.SortOrder == "" {
		filter.SortOrder = "desc"
	}

	// Validate sort order
	if filter.SortOrder != "asc" && filter.SortOrder != "desc" {
		filter.SortOrder = "desc"
	}

	// Valid sort columns (whitelist approach for security)
	validSortColumns := map[string]bool{
		"created_at": true,
		"updated_at": true,
		"title":      true,
		"rating":     true,
	}

	if !validSortColumns[filter.SortBy] {
		filter.SortBy = "created_at"
	}

	projects, totalCount, err := s.projectRepo.FindWithPagination(
		filter.Page,
		filter.PageSize,
		filter.SortBy,
		filter.SortOrder,
		filter.Category,
		filter.Search,
		true,
	)

	if err != nil {
		return response, err
	}

	// Calculate total pages
	totalPages := int(totalCount) / filter.PageSize
	if int(totalCount)%filter.PageSize > 0 {
		totalPages++
	}

	response = dto.ProjectListResponse{
		Projects:   projects,
		TotalCount: totalCount,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	}

	return response, nil
}

// GetProjectDetail retrieves a project by ID with its owning group.
// Drafts and in-progress projects are only visible to their owner.
func (s *ProjectService) GetProjectDetail(projectID string, viewerID string) (models.Project, error) {
	project, err := s.projectRepo.WithOwner(projectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Project{}, apperrors.New(apperrors.KindNotFound, "project not found")
	}
	if err != nil {
		return models.Project{}, err
	}

	if !project.Status.IsPublished() && project.OwnerID != viewerID {
		return models.Project{}, apperrors.New(apperrors.KindNotFound, "project not found")
	}

	return project, nil
}

// ListMyProjects retrieves all projects owned by the caller
func (s *ProjectService) ListMyProjects(ownerID string) ([]models.Project, error) {
	return s.projectRepo.FindByOwnerID(ownerID)
}

// ParseProjectStatus validates a status string against the closed enumeration.
// An empty value means Draft.
func ParseProjectStatus(value string) (models.ProjectStatus, error) {
	switch status := models.ProjectStatus(value); status {
	case "":
		return models.ProjectStatusDraft, nil
	case models.ProjectStatusDraft,
		models.ProjectStatusInProgress,
		models.ProjectStatusCompleted,
		models.ProjectStatusOpen:
		return status, nil
	}
	return "", apperrors.Newf(apperrors.KindValidation, "unknown project status %q", value)
}

// CreateProject creates a new project for the owning group
func (s *ProjectService) CreateProject(project models.Project) (models.Project, error) {
	status, err := ParseProjectStatus(string(project.Status))
	if err != nil {
		return models.Project{}, err
	}
	project.Status = status
	return s.projectRepo.Create(project)
}

// UpdateProject updates an existing project. Only the owner may update.
func (s *ProjectService) UpdateProject(project models.Project, actorID string) (models.Project, error) {
	status, err := ParseProjectStatus(string(project.Status))
	if err != nil {
		return models.Project{}, err
	}
	project.Status = status

	existing, err := s.projectRepo.FindByID(project.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Project{}, apperrors.New(apperrors.KindNotFound, "project not found")
	}
	if err != nil {
		return models.Project{}, err
	}

	if existing.OwnerID != actorID {
		return models.Project{}, apperrors.New(apperrors.KindForbidden, "you don't have permission to update this project")
	}

	// Preserve ownership and rating aggregates
	project.OwnerID = existing.OwnerID
	project.Rating = existing.Rating
	project.RatingCount = existing.RatingCount
	project.CreatedAt = existing.CreatedAt

	if err := s.projectRepo.Update(project); err != nil {
		return models.Project{}, err
	}

	return project, nil
}

// DeleteProject deletes a project together with its comments and pending requests
func (s *ProjectService) DeleteProject(projectID string, actorID string) error {
	existing, err := s.projectRepo.FindByID(projectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.New(apperrors.KindNotFound, "project not found")
	}
	if err != nil {
		return err
	}

	if existing.OwnerID != actorID {
		return apperrors.New(apperrors.KindForbidden, "you don't have permission to delete this project")
	}

	return s.projectRepo.Delete(projectID)
}

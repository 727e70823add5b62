package repositories

import (
	"github.com/capstone-portal/database"
	"github.com/capstone-portal/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, "id = ?", id)
	return project, result.Error
}

// FindByOwnerID retrieves all projects belonging to a group
func (r *ProjectRepository) FindByOwnerID(ownerID string) ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.Where("owner_id = ?", ownerID).Order("created_at desc").Find(&projects)
	return projects, result.Error
}

// Create inserts a new project into the database
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := database.DB.Create(&project)
	return project, result.Error
}

// Update modifies an existing project
func (r *ProjectRepository) Update(project models.Project) error {
	result := database.DB.Save(&project)
	return result.Error
}

// Delete removes a project and its dependent records (soft delete)
func (r *ProjectRepository) Delete(id string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		// Pending requests against a removed project can never be decided
		if err := tx.Where("project_id = ? AND status = ?", id, models.RequestStatusWaiting).
			Delete(&models.ContinuationRequest{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Project{}, "id = ?", id)
		return result.Error
	})
}

// Exists checks if a project exists (including soft-deleted ones)
func (r *ProjectRepository) Exists(id string) (bool, error) {
	var count int64
	err := database.DB.Unscoped().Model(&models.Project{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// GetOwnerID returns the group ID that owns the project
func (r *ProjectRepository) GetOwnerID(id string) (string, error) {
	type projectOwner struct {
		OwnerID string
	}

	var owner projectOwner
	err := database.DB.Model(&models.Project{}).Select("owner_id").Where("id = ?", id).First(&owner).Error
	return owner.OwnerID, err
}

// DB returns the database instance
func (r *ProjectRepository) DB() *gorm.DB {
	return database.DB
}

// WithOwner loads a project with its owning group
func (r *ProjectRepository) WithOwner(id string) (models.Project, error) {
	var project models.Project
	result := database.DB.Preload("Owner").First(&project, "id = ?", id)
	return project, result.Error
}

// FindWithPagination retrieves catalog projects with pagination, filtering and sorting
func (r *ProjectRepository) FindWithPagination(
	page, pageSize int,
	sortBy, sortOrder string,
	category string,
	search string,
	publishedOnly bool) ([]models.Project, int64, error) {

	var projects []models.Project
	var totalCount int64

	db := database.DB.Model(&models.Project{})

	if publishedOnly {
		db = db.Where("status IN ?", []models.ProjectStatus{
			models.ProjectStatusCompleted,
			models.ProjectStatusOpen,
		})
	}

	if category != "" {
		db = db.Where("category = ?", category)
	}

	// Search functionality
	if search != "" {
		searchPattern := "%" + search + "%"
		db = db.Where("(title ILIKE ? OR summary ILIKE ?)", searchPattern, searchPattern)
	}

	// Count total records (with the same filter)
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	// Calculate offset for pagination
	offset := (page - 1) * pageSize

	orderString := sortBy + " " + sortOrder
	if err := db.Order(orderString).Limit(pageSize).Offset(offset).Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, totalCount, nil
}

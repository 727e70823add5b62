package repositories

import (
	"github.com/capstone-portal/database"
	"github.com/capstone-portal/models"
)

// CommentRepository handles database operations for project comments
type CommentRepository struct{}

// NewCommentRepository creates a new comment repository instance
func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

// FindByProjectID retrieves all comments on a project, newest first
func (r *CommentRepository) FindByProjectID(projectID string) ([]models.Comment, error) {
	var comments []models.Comment
	result := database.DB.Where("project_id = ?", projectID).Order("created_at desc").Find(&comments)
	return comments, result.Error
}

// Create inserts a new comment into the database
func (r *CommentRepository) Create(comment models.Comment) (models.Comment, error) {
	result := database.DB.Create(&comment)
	return comment, result.Error
}

// CountByProjectID counts comments on a project
func (r *CommentRepository) CountByProjectID(projectID string) (int64, error) {
	var count int64
	result := database.DB.Model(&models.Comment{}).Where("project_id = ?", projectID).Count(&count)
	return count, result.Error
}

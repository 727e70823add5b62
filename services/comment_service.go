package services

import (
	"errors"
	"strings"

	"github.com/capstone-portal/apperrors"
	"github.com/capstone-portal/models"
	"github.com/capstone-portal/repositories"
	"gorm.io/gorm"
)

// CommentService handles feedback and ratings on catalog projects
type CommentService struct {
	commentRepo *repositories.CommentRepository
	projectRepo *repositories.ProjectRepository
}

// NewCommentService creates a new comment service instance
func NewCommentService() *CommentService {
	return &CommentService{
		commentRepo: repositories.NewCommentRepository(),
		projectRepo: repositories.NewProjectRepository(),
	}
}

// ListComments retrieves all comments on a project
func (s *CommentService) ListComments(projectID string) ([]models.Comment, error) {
	_, err := s.projectRepo.FindByID(projectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.New(apperrors.KindNotFound, "project not found")
	}
	if err != nil {
		return nil, err
	}
	return s.commentRepo.FindByProjectID(projectID)
}

// AddComment creates a comment on a published project. A rating, when present,
// must be between 1 and 5 and updates the project's running average.
func (s *CommentService) AddComment(projectID, authorID, authorName, body string, rating *int) (models.Comment, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return models.Comment{}, apperrors.New(apperrors.KindValidation, "comment cannot be empty")
	}
	if rating != nil && (*rating < 1 || *rating > 5) {
		return models.Comment{}, apperrors.New(apperrors.KindValidation, "rating must be between 1 and 5")
	}

	comment := models.Comment{
		ProjectID:  projectID,
		AuthorID:   authorID,
		AuthorName: authorName,
		Body:       body,
		Rating:     rating,
	}

	err := s.projectRepo.DB().Transaction(func(tx *gorm.DB) error {
		var project models.Project
		err := tx.First(&project, "id = ?", projectID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.KindNotFound, "project not found")
		}
		if err != nil {
			return err
		}
		if !project.Status.IsPublished() {
			return apperrors.New(apperrors.KindInvalidState, "project is not published")
		}

		if err := tx.Create(&comment).Error; err != nil {
			return err
		}

		if rating != nil {
			project.Rating, project.RatingCount = NextRating(project.Rating, project.RatingCount, *rating)
			if err := tx.Save(&project).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.Comment{}, err
	}

	return comment, nil
}

// NextRating folds one more rating into a running average
func NextRating(average float64, count int, rating int) (float64, int) {
	total := average*float64(count) + float64(rating)
	count++
	return total / float64(count), count
}

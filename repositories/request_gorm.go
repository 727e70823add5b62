package repositories

import (
	"errors"

	"github.com/capstone-portal/apperrors"
	"github.com/capstone-portal/database"
	"github.com/capstone-portal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRequestRepository handles database operations for continuation requests
type GormRequestRepository struct{}

// NewGormRequestRepository creates a new gorm-backed request repository instance
func NewGormRequestRepository() *GormRequestRepository {
	return &GormRequestRepository{}
}

// FindByID retrieves a continuation request by its ID
func (r *GormRequestRepository) FindByID(id string) (models.ContinuationRequest, error) {
	var request models.ContinuationRequest
	result := database.DB.First(&request, "id = ?", id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return models.ContinuationRequest{}, apperrors.New(apperrors.KindNotFound, "request not found")
	}
	return request, result.Error
}

// FindByRequesterID retrieves all requests sent by a requester, newest first
func (r *GormRequestRepository) FindByRequesterID(requesterID string) ([]models.ContinuationRequest, error) {
	var requests []models.ContinuationRequest
	result := database.DB.Where("requester_id = ?", requesterID).Order("created_at desc").Find(&requests)
	return requests, result.Error
}

// FindByProjectID retrieves all incoming requests for a project, newest first
func (r *GormRequestRepository) FindByProjectID(projectID string) ([]models.ContinuationRequest, error) {
	var requests []models.ContinuationRequest
	result := database.DB.Where("project_id = ?", projectID).Order("created_at desc").Find(&requests)
	return requests, result.Error
}

// CreatePending inserts a new Waiting request, enforcing at most one Waiting
// request per (requester, project) pair. The pre-check inside the transaction
// gives a friendly conflict message; the partial unique index catches the
// window where two submissions race past the check.
func (r *GormRequestRepository) CreatePending(request models.ContinuationRequest) (models.ContinuationRequest, error) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.ContinuationRequest{}).
			Where("requester_id = ? AND project_id = ? AND status = ?",
				request.RequesterID, request.ProjectID, models.RequestStatusWaiting).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return apperrors.New(apperrors.KindConflict, "a request already exists for this project")
		}
		return tx.Create(&request).Error
	})
	if isUniqueViolation(err) {
		return models.ContinuationRequest{}, apperrors.New(apperrors.KindConflict, "a request already exists for this project")
	}
	if err != nil {
		return models.ContinuationRequest{}, err
	}
	return request, nil
}

// Update applies mutate to the request under a row lock and persists the result
func (r *GormRequestRepository) Update(id string, mutate func(*models.ContinuationRequest) error) (models.ContinuationRequest, error) {
	var updated models.ContinuationRequest
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var request models.ContinuationRequest
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&request, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.KindNotFound, "request not found")
		}
		if err != nil {
			return err
		}
		if err := mutate(&request); err != nil {
			return err
		}
		if err := tx.Save(&request).Error; err != nil {
			return err
		}
		updated = request
		return nil
	})
	return updated, err
}

// Remove applies finalize to the request under a row lock, persists the final
// state, and deletes it, returning the record as it stood at deletion time
func (r *GormRequestRepository) Remove(id string, finalize func(*models.ContinuationRequest) error) (models.ContinuationRequest, error) {
	var removed models.ContinuationRequest
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var request models.ContinuationRequest
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&request, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.KindNotFound, "request not found")
		}
		if err != nil {
			return err
		}
		if err := finalize(&request); err != nil {
			return err
		}
		if err := tx.Save(&request).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.ContinuationRequest{}, "id = ?", id).Error; err != nil {
			return err
		}
		removed = request
		return nil
	})
	return removed, err
}

// isUniqueViolation reports whether err is a postgres unique constraint error
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

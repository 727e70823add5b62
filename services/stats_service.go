package services

import (
	"github.com/capstone-portal/database"
	"github.com/capstone-portal/dto"
	"github.com/capstone-portal/models"
)

// StatsService aggregates portal-wide counters for the admin dashboard
type StatsService struct{}

// NewStatsService creates a new stats service instance
func NewStatsService() *StatsService {
	return &StatsService{}
}

// GetPortalStats returns group, project and request totals
func (s *StatsService) GetPortalStats() (dto.PortalStatsResponse, error) {
	var stats dto.PortalStatsResponse

	if err := database.DB.Model(&models.User{}).Count(&stats.Groups).Error; err != nil {
		return stats, err
	}
	if err := database.DB.Model(&models.Project{}).Count(&stats.Projects.Total).Error; err != nil {
		return stats, err
	}
	if err := database.DB.Model(&models.Project{}).
		Where("status = ?", models.ProjectStatusOpen).
		Count(&stats.Projects.OpenForContinuation).Error; err != nil {
		return stats, err
	}
	if err := database.DB.Model(&models.ContinuationRequest{}).
		Where("status = ?", models.RequestStatusWaiting).
		Count(&stats.Requests.Waiting).Error; err != nil {
		return stats, err
	}
	if err := database.DB.Model(&models.ContinuationRequest{}).
		Where("status = ?", models.RequestStatusApproved).
		Count(&stats.Requests.Approved).Error; err != nil {
		return stats, err
	}
	if err := database.DB.Model(&models.Comment{}).Count(&stats.Comments).Error; err != nil {
		return stats, err
	}

	return stats, nil
}

package services

import (
	"errors"

	"github.com/capstone-portal/apperrors"
	"github.com/capstone-portal/database"
	"github.com/capstone-portal/dto"
	"github.com/capstone-portal/models"
	"github.com/capstone-portal/repositories"
	"gorm.io/gorm"
)

// ProfileService handles group profile and member management
type ProfileService struct {
	memberRepo  *repositories.MemberRepository
	projectRepo *repositories.ProjectRepository
}

// NewProfileService creates a new profile service instance
func NewProfileService() *ProfileService {
	return &ProfileService{
		memberRepo:  repositories.NewMemberRepository(),
		projectRepo: repositories.NewProjectRepository(),
	}
}

// GetProfile retrieves a group profile with its members and published projects
func (s *ProfileService) GetProfile(userID string) (dto.ProfileResponse, error) {
	var user models.User
	err := database.DB.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return dto.ProfileResponse{}, apperrors.New(apperrors.KindNotFound, "profile not found")
	}
	if err != nil {
		return dto.ProfileResponse{}, err
	}
	user.Password = ""

	members, err := s.memberRepo.FindByUserID(userID)
	if err != nil {
		return dto.ProfileResponse{}, err
	}

	projects, err := s.projectRepo.FindByOwnerID(userID)
	if err != nil {
		return dto.ProfileResponse{}, err
	}

	published := make([]models.Project, 0)
	for _, project := range projects {
		if project.Status.IsPublished() {
			published = append(published, project)
		}
	}

	return dto.ProfileResponse{
		Group:    user,
		Members:  members,
		Projects: published,
	}, nil
}

// UpdateProfile updates the caller's own group profile
func (s *ProfileService) UpdateProfile(userID string, changes dto.UpdateProfileRequest) (*models.User, error) {
	var user models.User
	err := database.DB.First(&user, "id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.New(apperrors.KindNotFound, "profile not found")
	}
	if err != nil {
		return nil, err
	}

	user.GroupName = changes.GroupName
	user.Department = changes.Department
	user.Year = changes.Year
	user.Description = changes.Description
	user.PhotoURL = changes.PhotoURL

	if err := database.DB.Save(&user).Error; err != nil {
		return nil, err
	}

	user.Password = ""
	return &user, nil
}

// AddMember adds a student to the caller's group profile
func (s *ProfileService) AddMember(userID string, member models.Member) (models.Member, error) {
	member.UserID = userID
	return s.memberRepo.Create(member)
}

// UpdateMember updates a member on the caller's group profile
func (s *ProfileService) UpdateMember(memberID, actorID string, changes models.Member) (models.Member, error) {
	existing, err := s.memberRepo.FindByID(memberID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Member{}, apperrors.New(apperrors.KindNotFound, "member not found")
	}
	if err != nil {
		return models.Member{}, err
	}

	if existing.UserID != actorID {
		return models.Member{}, apperrors.New(apperrors.KindForbidden, "you don't have permission to update this member")
	}

	existing.Name = changes.Name
	existing.StudentNumber = changes.StudentNumber
	existing.Major = changes.Major
	existing.PortfolioURL = changes.PortfolioURL
	existing.LinkedinURL = changes.LinkedinURL

	if err := s.memberRepo.Update(existing); err != nil {
		return models.Member{}, err
	}

	return existing, nil
}

// DeleteMember removes a member from the caller's group profile
func (s *ProfileService) DeleteMember(memberID, actorID string) error {
	existing, err := s.memberRepo.FindByID(memberID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.New(apperrors.KindNotFound, "member not found")
	}
	if err != nil {
		return err
	}

	if existing.UserID != actorID {
		return apperrors.New(apperrors.KindForbidden, "you don't have permission to remove this member")
	}

	return s.memberRepo.Delete(memberID)
}

package repositories

import (
	"github.com/capstone-portal/database"
	"github.com/capstone-portal/models"
)

// MemberRepository handles database operations for group members
type MemberRepository struct{}

// NewMemberRepository creates a new member repository instance
func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

// FindByID retrieves a member by its ID
func (r *MemberRepository) FindByID(id string) (models.Member, error) {
	var member models.Member
	result := database.DB.First(&member, "id = ?", id)
	return member, result.Error
}

// FindByUserID retrieves all members of a group
func (r *MemberRepository) FindByUserID(userID string) ([]models.Member, error) {
	var members []models.Member
	result := database.DB.Where("user_id = ?", userID).Order("created_at asc").Find(&members)
	return members, result.Error
}

// Create inserts a new member into the database
func (r *MemberRepository) Create(member models.Member) (models.Member, error) {
	result := database.DB.Create(&member)
	return member, result.Error
}

// Update modifies an existing member
func (r *MemberRepository) Update(member models.Member) error {
	result := database.DB.Save(&member)
	return result.Error
}

// Delete removes a member from the database (soft delete)
func (r *MemberRepository) Delete(id string) error {
	result := database.DB.Delete(&models.Member{}, "id = ?", id)
	return result.Error
}

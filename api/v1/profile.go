package v1

import (
	"net/http"

	"github.com/capstone-portal/dto"
	"github.com/capstone-portal/models"
	"github.com/capstone-portal/services"
	"github.com/gin-gonic/gin"
)

var profileService = services.NewProfileService()

// GetProfile returns a public group profile with members and published projects
func GetProfile(c *gin.Context) {
	profile, err := profileService.GetProfile(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   profile,
	})
}

// UpdateProfile updates the calling group's own profile
func UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	var payload dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	user, err := profileService.UpdateProfile(userID.(string), payload)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   user,
	})
}

// AddMember adds a student to the calling group's profile
func AddMember(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	var payload dto.MemberPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	member, err := profileService.AddMember(userID.(string), models.Member{
		Name:          payload.Name,
		StudentNumber: payload.StudentNumber,
		Major:         payload.Major,
		PortfolioURL:  payload.PortfolioURL,
		LinkedinURL:   payload.LinkedinURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   member,
	})
}

// UpdateMember updates a student on the calling group's profile
func UpdateMember(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	var payload dto.MemberPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	member, err := profileService.UpdateMember(c.Param("id"), userID.(string), models.Member{
		Name:          payload.Name,
		StudentNumber: payload.StudentNumber,
		Major:         payload.Major,
		PortfolioURL:  payload.PortfolioURL,
		LinkedinURL:   payload.LinkedinURL,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   member,
	})
}

// DeleteMember removes a student from the calling group's profile
func DeleteMember(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	if err := profileService.DeleteMember(c.Param("id"), userID.(string)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Member removed successfully",
	})
}

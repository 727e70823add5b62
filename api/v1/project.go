package v1

import (
	"net/http"
	"strconv"

	"github.com/capstone-portal/dto"
	"github.com/capstone-portal/models"
	"github.com/capstone-portal/services"
	"github.com/gin-gonic/gin"
)

var projectService = services.NewProjectService()

// ListCatalog returns the public project catalog with pagination and filtering
func ListCatalog(c *gin.Context) {
	// Parse query parameters
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 {
		pageSize = 10
	}

	// Build filter
	filter := dto.ProjectFilter{
		Search:    c.Query("search"),
		Category:  c.Query("category"),
		SortBy:    c.DefaultQuery("sortBy", "created_at"),
		SortOrder: c.DefaultQuery("sortOrder", "desc"),
		Page:      page,
		PageSize:  pageSize,
	}

	// Call service
	response, err := projectService.ListCatalog(filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve projects: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetProject returns the detail view of a catalog project
func GetProject(c *gin.Context) {
	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Project ID is required"})
		return
	}

	// Unauthenticated viewers can still read published projects
	viewerID := ""
	if userID, exists := c.Get("userId"); exists {
		viewerID = userID.(string)
	}

	project, err := projectService.GetProjectDetail(projectID, viewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   project,
	})
}

// ListMyProjects returns all projects owned by the calling group
func ListMyProjects(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	projects, err := projectService.ListMyProjects(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve projects: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   projects,
	})
}

// CreateProject publishes a new project for the calling group
func CreateProject(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	var projectDTO dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&projectDTO); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	project := models.Project{
		Title:                 projectDTO.Title,
		Category:              projectDTO.Category,
		Summary:               projectDTO.Summary,
		Description:           projectDTO.Description,
		Evaluation:            projectDTO.Evaluation,
		DevelopmentSuggestion: projectDTO.DevelopmentSuggestion,
		Thumbnail:             projectDTO.Thumbnail,
		Images:                projectDTO.Images,
		Status:                models.ProjectStatus(projectDTO.Status),
		ProposalLink:          projectDTO.ProposalLink,
		OwnerID:               userID.(string),
	}

	newProject, err := projectService.CreateProject(project)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create project: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   newProject,
	})
}

// UpdateProject updates a project owned by the calling group
func UpdateProject(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Project ID is required"})
		return
	}

	var projectDTO dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&projectDTO); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	projectChanges := models.Project{
		ID:                    projectID,
		Title:                 projectDTO.Title,
		Category:              projectDTO.Category,
		Summary:               projectDTO.Summary,
		Description:           projectDTO.Description,
		Evaluation:            projectDTO.Evaluation,
		DevelopmentSuggestion: projectDTO.DevelopmentSuggestion,
		Thumbnail:             projectDTO.Thumbnail,
		Images:                projectDTO.Images,
		Status:                models.ProjectStatus(projectDTO.Status),
		ProposalLink:          projectDTO.ProposalLink,
	}

	updatedProject, err := projectService.UpdateProject(projectChanges, userID.(string))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   updatedProject,
	})
}

// DeleteProject deletes a project owned by the calling group
func DeleteProject(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	projectID := c.Param("id")
	if projectID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Project ID is required"})
		return
	}

	if err := projectService.DeleteProject(projectID, userID.(string)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Project deleted successfully",
	})
}

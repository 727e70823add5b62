package v1

import (
	"net/http"

	"github.com/capstone-portal/dto"
	"github.com/capstone-portal/services"
	"github.com/gin-gonic/gin"
)

var commentService = services.NewCommentService()

// ListComments returns all comments on a catalog project
func ListComments(c *gin.Context) {
	comments, err := commentService.ListComments(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   comments,
	})
}

// CreateComment adds a comment (optionally with a rating) to a catalog project
func CreateComment(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return
	}

	var payload dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	authorName := ""
	if user, err := services.GetUser(userID.(string)); err == nil {
		authorName = user.GroupName
	}

	comment, err := commentService.AddComment(c.Param("id"), userID.(string), authorName, payload.Body, payload.Rating)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   comment,
	})
}

package v1

import (
	"github.com/capstone-portal/apperrors"
	"github.com/gin-gonic/gin"
)

// respondError translates a service error into the API's error envelope,
// using the error kind to pick the status code
func respondError(c *gin.Context, err error) {
	c.JSON(apperrors.HTTPStatus(err), gin.H{
		"status":  "error",
		"message": err.Error(),
	})
}

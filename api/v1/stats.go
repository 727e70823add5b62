package v1

import (
	"net/http"

	"github.com/capstone-portal/services"
	"github.com/gin-gonic/gin"
)

// GetPortalStats returns portal-wide totals for the admin dashboard
func GetPortalStats(c *gin.Context) {
	statsService := services.NewStatsService()

	stats, err := statsService.GetPortalStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve portal statistics: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   stats,
	})
}

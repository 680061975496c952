package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fieldserve/technician-admin-api/config"
	"github.com/fieldserve/technician-admin-api/models"
	"github.com/fieldserve/technician-admin-api/services"
)

// LaunchAutomationRequest represents the request body for launching an
// automation session
type LaunchAutomationRequest struct {
	ID string `form:"id" json:"id" binding:"required"`
}

// LaunchAutomation handles POST /mservice/ - launches a browser
// automation session scoped to a technician id and reports the outcome
func LaunchAutomation(c *gin.Context) {
	var req LaunchAutomationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "A technician id is required",
			},
		})
		return
	}

	id, err := strconv.ParseUint(req.ID, 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "TECHNICIAN_NOT_FOUND",
				"message": "Technician not found",
			},
		})
		return
	}

	db := config.GetDB()
	var technician models.Technician
	if err := db.First(&technician, uint(id)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "TECHNICIAN_NOT_FOUND",
				"message": "Technician not found",
			},
		})
		return
	}

	// Launch under the canonical id so "01" and "1" share one session
	// lock and one user data directory
	canonicalID := strconv.FormatUint(id, 10)
	result, err := services.GetAutomationService().LaunchSession(c.Request.Context(), canonicalID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSessionActive):
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "SESSION_ACTIVE",
					"message": "An automation session is already running for this technician",
				},
			})
		case errors.Is(err, services.ErrSessionLimit):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "SESSION_LIMIT_REACHED",
					"message": "Too many automation sessions are running, try again later",
				},
			})
		case errors.Is(err, context.DeadlineExceeded):
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "AUTOMATION_TIMEOUT",
					"message": "The automation session timed out",
				},
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "AUTOMATION_ERROR",
					"message": "Failed to launch the automation session",
				},
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

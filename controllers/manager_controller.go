package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ai-slice/ai-slice-api/config"
	"github.com/ai-slice/ai-slice-api/models"
)

// ApproveRegistrationRequest represents the request body for approving an
// account
type ApproveRegistrationRequest struct {
	UserID uint `json:"userId"`
}

// GetPendingRegistrations handles GET /api/manager/registrations - lists
// accounts still waiting for approval
func GetPendingRegistrations(c *gin.Context) {
	db := config.GetDB()
	pending := []models.User{}
	if err := db.Where("approved = ?", false).Order("id asc").Find(&pending).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to load registrations",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"registrations": pending,
	})
}

// ApproveRegistration handles POST /api/manager/approve - flips the approval
// flag on an account
func ApproveRegistration(c *gin.Context) {
	var req ApproveRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	db := config.GetDB()
	var user models.User
	if err := db.First(&user, req.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "User not found",
		})
		return
	}

	user.Approved = true
	if err := db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to approve user",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

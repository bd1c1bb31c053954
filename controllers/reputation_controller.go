package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ai-slice/ai-slice-api/config"
	"github.com/ai-slice/ai-slice-api/models"
)

// SubmitRatingRequest represents the request body for submitting a rating
type SubmitRatingRequest struct {
	UserID  uint    `json:"userId"`
	Type    string  `json:"type"` // rating category, e.g. "food" or "delivery"
	Rating  float64 `json:"rating"`
	OrderID *uint   `json:"orderId"`
}

// GetUserReputation handles GET /api/reputation/user/:id. Accounts without
// entries get an empty list; the lookup never fails.
func GetUserReputation(c *gin.Context) {
	db := config.GetDB()
	entries := []models.ReputationEntry{}
	if err := db.Where("user_id = ?", c.Param("id")).Order("id asc").Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to load reputation",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"reputation": entries,
	})
}

// SubmitRating handles POST /api/reputation/rating - appends a rating entry.
// Neither the rating value nor the order reference is validated.
func SubmitRating(c *gin.Context) {
	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	rating := req.Rating
	entry := models.ReputationEntry{
		UserID:  req.UserID,
		Type:    req.Type,
		Rating:  &rating,
		OrderID: req.OrderID,
	}

	db := config.GetDB()
	if err := db.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to record rating",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

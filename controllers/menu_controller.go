package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ai-slice/ai-slice-api/config"
	"github.com/ai-slice/ai-slice-api/models"
)

// AddDishRequest represents the request body for adding a dish
type AddDishRequest struct {
	Name        string  `json:"name" binding:"required"`
	Chef        string  `json:"chef"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Available   *bool   `json:"available"`
	Rating      float64 `json:"rating"`
}

// UpdateDishRequest represents the request body for updating a dish.
// All fields are optional; only the ones present are applied.
type UpdateDishRequest struct {
	Name        *string  `json:"name"`
	Chef        *string  `json:"chef"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Available   *bool    `json:"available"`
	Rating      *float64 `json:"rating"`
}

// GetMenu handles GET /api/menu - lists all dishes in insertion order
func GetMenu(c *gin.Context) {
	db := config.GetDB()
	dishes := []models.Dish{}
	if err := db.Order("id asc").Find(&dishes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to load menu",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"dishes":  dishes,
	})
}

// AddDish handles POST /api/menu - adds a dish to the catalog
func AddDish(c *gin.Context) {
	var req AddDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	// Dishes are available unless the request says otherwise.
	available := true
	if req.Available != nil {
		available = *req.Available
	}

	dish := models.Dish{
		Name:        req.Name,
		Chef:        req.Chef,
		Price:       req.Price,
		Description: req.Description,
		Available:   available,
		Rating:      req.Rating,
	}

	db := config.GetDB()
	if err := db.Create(&dish).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create dish",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"dish":    dish,
	})
}

// UpdateDish handles PUT /api/menu/:id - partial update of a dish.
// Fields missing from the request body keep their stored values.
func UpdateDish(c *gin.Context) {
	db := config.GetDB()
	var dish models.Dish
	if err := db.First(&dish, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Dish not found",
		})
		return
	}

	var req UpdateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	if req.Name != nil {
		dish.Name = *req.Name
	}
	if req.Chef != nil {
		dish.Chef = *req.Chef
	}
	if req.Price != nil {
		dish.Price = *req.Price
	}
	if req.Description != nil {
		dish.Description = *req.Description
	}
	if req.Available != nil {
		dish.Available = *req.Available
	}
	if req.Rating != nil {
		dish.Rating = *req.Rating
	}

	if err := db.Save(&dish).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update dish",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"dish":    dish,
	})
}

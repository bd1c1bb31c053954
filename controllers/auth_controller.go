package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ai-slice/ai-slice-api/config"
	"github.com/ai-slice/ai-slice-api/models"
)

// SignupRequest represents the request body for registering an account
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType" binding:"required"`
	Phone    string `json:"phone"`
}

// SigninRequest represents the request body for signing in
type SigninRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup handles POST /api/auth/signup - registers a new account.
// New accounts start with an empty wallet, no VIP status, and wait for
// manager approval. Passwords are stored as submitted; hashing is out of
// scope for this platform.
func Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		UserType: req.UserType,
		Phone:    req.Phone,
	}

	db := config.GetDB()
	if err := db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create user",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user":    user,
	})
}

// Signin handles POST /api/auth/signin - exact credential match.
// Emails are not unique, so the earliest matching registration wins.
func Signin(c *gin.Context) {
	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	db := config.GetDB()
	var user models.User
	if err := db.Where("email = ? AND password = ?", req.Email, req.Password).
		Order("id asc").First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Invalid credentials",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

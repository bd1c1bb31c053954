package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ai-slice/ai-slice-api/config"
	"github.com/ai-slice/ai-slice-api/models"
)

// DepositRequest represents the request body for a wallet deposit
type DepositRequest struct {
	UserID uint    `json:"userId"`
	Amount float64 `json:"amount"`
}

// DepositMoney handles POST /api/wallet/deposit. The amount is applied
// unconditionally; only order placement enforces a balance floor.
func DepositMoney(c *gin.Context) {
	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	db := config.GetDB()
	var newBalance float64
	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, req.UserID).Error; err != nil {
			return err
		}

		user.WalletBalance += req.Amount
		newBalance = user.WalletBalance
		return tx.Save(&user).Error
	})

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "User not found",
		})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to update wallet",
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"newBalance": newBalance,
		})
	}
}

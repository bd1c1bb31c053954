package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ai-slice/ai-slice-api/config"
	"github.com/ai-slice/ai-slice-api/models"
)

// CreateOrderRequest carries the client's cart. Subtotal and total are taken
// as declared; the server does not recompute them from the line items.
type CreateOrderRequest struct {
	UserID   uint              `json:"userId"`
	Items    models.OrderItems `json:"items"`
	Subtotal float64           `json:"subtotal"`
	Total    float64           `json:"total"`
}

var errInsufficientFunds = errors.New("insufficient funds")

// CreateOrder handles POST /api/orders - the order placement workflow.
//
// The wallet check, the VIP discount, the debit and the order insert run in
// one transaction so two concurrent orders cannot both pass the sufficiency
// check against a stale balance. Sufficiency is checked against the declared
// total before any discount, which is why a VIP debit can never push the
// balance below zero. A rejected order is never created, but the rejection
// itself leaves a warning on the account's reputation.
func CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}
	if req.Items == nil {
		req.Items = models.OrderItems{}
	}

	db := config.GetDB()
	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, req.UserID).Error; err != nil {
			return err
		}

		if req.Total > user.WalletBalance {
			return errInsufficientFunds
		}

		discount := 0.0
		total := req.Total
		if user.IsVIP {
			discount = req.Total * 0.05
			total = req.Total - discount
		}

		user.WalletBalance -= total
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		order = models.Order{
			UserID:   user.ID,
			Items:    req.Items,
			Subtotal: req.Subtotal,
			Discount: discount,
			Total:    total,
			Status:   "Placed",
		}
		return tx.Create(&order).Error
	})

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "User not found",
		})
	case errors.Is(err, errInsufficientFunds):
		// The warning must survive the rejection, so it is written after
		// the rolled-back order transaction.
		warning := models.ReputationEntry{
			UserID: req.UserID,
			Type:   "warning",
			Reason: "Insufficient funds - order rejected",
		}
		if err := db.Create(&warning).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": "Failed to record warning",
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Order rejected - insufficient funds",
		})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create order",
		})
	default:
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"order":   order,
		})
	}
}

// GetUserOrders handles GET /api/orders/user/:id - lists an account's orders
// in insertion order, without pagination
func GetUserOrders(c *gin.Context) {
	db := config.GetDB()
	orders := []models.Order{}
	if err := db.Where("user_id = ?", c.Param("id")).Order("id asc").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to load orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"orders":  orders,
	})
}

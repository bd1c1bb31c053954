package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ai-slice/ai-slice-api/config"
	"github.com/ai-slice/ai-slice-api/models"
)

// PlaceBidRequest represents the request body for placing a delivery bid
type PlaceBidRequest struct {
	OrderID          uint    `json:"orderId"`
	DeliveryPersonID uint    `json:"deliveryPersonId"`
	DeliveryPerson   string  `json:"deliveryPerson"`
	Amount           float64 `json:"amount"`
}

// AssignDeliveryRequest represents the request body for resolving an auction
type AssignDeliveryRequest struct {
	OrderID         uint   `json:"orderId"`
	BidID           uint   `json:"bidId"`
	ManagerOverride bool   `json:"managerOverride"`
	Justification   string `json:"justification"`
}

// PlaceBid handles POST /api/bids. The order id is taken on trust: bids may
// target orders that do not exist.
func PlaceBid(c *gin.Context) {
	var req PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	bid := models.Bid{
		OrderID:          req.OrderID,
		DeliveryPersonID: req.DeliveryPersonID,
		DeliveryPerson:   req.DeliveryPerson,
		Amount:           req.Amount,
		Status:           "Pending",
	}

	db := config.GetDB()
	if err := db.Create(&bid).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to place bid",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"bid":     bid,
	})
}

// GetOrderBids handles GET /api/bids/order/:id - the reverse-auction ranking.
// Lowest price first; equal amounts keep their submission order.
func GetOrderBids(c *gin.Context) {
	db := config.GetDB()
	bids := []models.Bid{}
	if err := db.Where("order_id = ?", c.Param("id")).
		Order("amount asc, id asc").Find(&bids).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to load bids",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"bids":    bids,
	})
}

// AssignDelivery handles POST /api/bids/assign - binds a winning bid to its
// order.
//
// The justification check runs before the bid lookup, so a manager override
// without justification is reported even when the bid id is also bad. If the
// bid's order cannot be found, the bid is still marked Won and the call still
// succeeds; only the order-side fields are skipped.
func AssignDelivery(c *gin.Context) {
	var req AssignDeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request data",
		})
		return
	}

	if req.ManagerOverride && strings.TrimSpace(req.Justification) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Justification required for manager override",
		})
		return
	}

	db := config.GetDB()
	err := db.Transaction(func(tx *gorm.DB) error {
		var bid models.Bid
		if err := tx.First(&bid, req.BidID).Error; err != nil {
			return err
		}

		bid.Status = "Won"
		if err := tx.Save(&bid).Error; err != nil {
			return err
		}

		var order models.Order
		if err := tx.First(&order, req.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// The winning bid stands even when its order is unknown.
				return nil
			}
			return err
		}

		order.Status = "Assigned for Delivery"
		order.DeliveryPersonID = &bid.DeliveryPersonID
		if req.ManagerOverride {
			order.ManagerOverride = true
			order.Justification = req.Justification
		}
		return tx.Save(&order).Error
	})

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Bid not found",
		})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to assign delivery",
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Delivery assigned",
		})
	}
}

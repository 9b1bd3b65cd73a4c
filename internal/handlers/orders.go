package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdjobayerdream-BD/JioFFtopup/internal/models"
	"github.com/mdjobayerdream-BD/JioFFtopup/internal/services"
)

const liveFeedLimit = 20

type OrderHandler struct {
	orders *services.Orders
}

func NewOrderHandler(orders *services.Orders) *OrderHandler {
	return &OrderHandler{orders: orders}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order request"})
		return
	}

	order, err := h.orders.Create(uid, &req)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": failureMessage(err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Order Placed Successfully! Admin will verify.",
		"order":   order,
	})
}

func (h *OrderHandler) MyOrders(c *gin.Context) {
	uid := c.GetString("uid")
	c.JSON(http.StatusOK, gin.H{"orders": h.orders.ListForUser(uid)})
}

// LiveOrders is the public recent-purchases feed. Identifying fields are
// masked before leaving the process.
func (h *OrderHandler) LiveOrders(c *gin.Context) {
	recent := h.orders.Recent(liveFeedLimit)

	feed := make([]gin.H, 0, len(recent))
	for _, o := range recent {
		feed = append(feed, gin.H{
			"id":      o.ID,
			"uid":     maskUID(o.UserUID),
			"package": o.PackageDetails,
			"amount":  o.Amount,
			"status":  o.Status,
			"date":    o.Date,
		})
	}

	c.JSON(http.StatusOK, gin.H{"orders": feed})
}

func maskUID(uid string) string {
	if len(uid) <= 4 {
		return "****"
	}
	return uid[:3] + "*****" + uid[len(uid)-2:]
}

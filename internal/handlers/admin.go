package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdjobayerdream-BD/JioFFtopup/internal/models"
	"github.com/mdjobayerdream-BD/JioFFtopup/internal/services"
)

// AdminHandler is the reconciliation console: resolve deposits, resolve
// orders, edit settings, export the store.
type AdminHandler struct {
	store    *services.Store
	deposits *services.Deposits
	orders   *services.Orders
	settings *services.Settings
}

func NewAdminHandler(store *services.Store, deposits *services.Deposits, orders *services.Orders, settings *services.Settings) *AdminHandler {
	return &AdminHandler{
		store:    store,
		deposits: deposits,
		orders:   orders,
		settings: settings,
	}
}

func (h *AdminHandler) ListDeposits(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"deposits": h.deposits.List()})
}

type depositStatusRequest struct {
	Status models.DepositStatus `json:"status" binding:"required"`
}

func (h *AdminHandler) UpdateDepositStatus(c *gin.Context) {
	var req depositStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid deposit status"})
		return
	}

	// Unknown ids are a deliberate no-op, so this always reports success.
	h.deposits.SetStatus(c.Param("id"), req.Status)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": h.orders.List()})
}

type orderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	var req orderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid order status"})
		return
	}

	h.orders.SetStatus(c.Param("id"), req.Status)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AdminHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.settings.Get())
}

func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var settings models.AppSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid settings payload"})
		return
	}

	h.settings.Set(settings)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Settings saved"})
}

// Export dumps the persisted records as a downloadable backup snapshot.
func (h *AdminHandler) Export(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="jio_store_backup.json"`)
	c.JSON(http.StatusOK, gin.H{
		"users":    h.store.Users(),
		"orders":   h.store.Orders(),
		"deposits": h.store.Deposits(),
		"settings": h.store.Settings(),
	})
}

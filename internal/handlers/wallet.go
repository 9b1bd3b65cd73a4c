package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdjobayerdream-BD/JioFFtopup/internal/models"
	"github.com/mdjobayerdream-BD/JioFFtopup/internal/services"
)

type WalletHandler struct {
	deposits *services.Deposits
}

func NewWalletHandler(deposits *services.Deposits) *WalletHandler {
	return &WalletHandler{deposits: deposits}
}

// CreateDeposit records a declare-and-verify deposit claim. The wallet is
// untouched until an admin approves it.
func (h *WalletHandler) CreateDeposit(c *gin.Context) {
	uid := c.GetString("uid")

	var input models.DepositRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid deposit request"})
		return
	}

	deposit, err := h.deposits.Create(uid, &input)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": failureMessage(err)})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Deposit Request Submitted! Wait for Admin Approval.",
		"deposit": deposit,
	})
}

func (h *WalletHandler) MyDeposits(c *gin.Context) {
	uid := c.GetString("uid")
	c.JSON(http.StatusOK, gin.H{"deposits": h.deposits.ListForUser(uid)})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdjobayerdream-BD/JioFFtopup/internal/services"
)

type UserHandler struct {
	ledger *services.Ledger
}

func NewUserHandler(ledger *services.Ledger) *UserHandler {
	return &UserHandler{ledger: ledger}
}

func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	uid := c.GetString("uid")
	sessionID := c.GetString("session_id")

	user := h.ledger.CurrentUser(uid, sessionID)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired or invalid"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": user.Public(),
		"wallet": gin.H{
			"balance": user.Balance,
			"tokens":  user.Tokens,
		},
		"streak": gin.H{
			"days":       user.StreakDays,
			"last_claim": user.LastClaimDate,
		},
	})
}

func (h *UserHandler) Logout(c *gin.Context) {
	uid := c.GetString("uid")
	sessionID := c.GetString("session_id")

	if err := h.ledger.Logout(uid, sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to logout"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

func (h *UserHandler) ClaimDaily(c *gin.Context) {
	uid := c.GetString("uid")

	message, newStreak, err := h.ledger.ClaimDaily(uid)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": failureMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    message,
		"new_streak": newStreak,
	})
}

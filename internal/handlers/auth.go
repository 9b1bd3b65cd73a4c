package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdjobayerdream-BD/JioFFtopup/internal/services"
)

type AuthHandler struct {
	ledger     *services.Ledger
	jwtService *services.JWTService
}

func NewAuthHandler(ledger *services.Ledger, jwtService *services.JWTService) *AuthHandler {
	return &AuthHandler{
		ledger:     ledger,
		jwtService: jwtService,
	}
}

type loginRequest struct {
	UID      string `json:"uid" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login is simultaneously login and signup: a never-seen uid creates the
// account with the supplied password bound to it.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Player ID and password are required"})
		return
	}

	user, sessionID, err := h.ledger.LoginOrRegister(req.UID, req.Password)
	if err != nil {
		status := http.StatusUnauthorized
		if err != services.ErrIncorrectPassword {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{"success": false, "message": failureMessage(err)})
		return
	}

	token, err := h.jwtService.GenerateToken(user.UID, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user.Public(),
		"token":   token,
	})
}

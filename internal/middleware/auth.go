package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mdjobayerdream-BD/JioFFtopup/internal/services"
)

func AuthMiddleware(jwtService *services.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format"})
				c.Abort()
				return
			}
			tokenString = parts[1]
		} else {
			tokenString = c.Query("token")
			if tokenString == "" {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
				c.Abort()
				return
			}
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("uid", claims.UID)
		c.Set("session_id", claims.SessionID)

		c.Next()
	}
}

// AdminMiddleware runs after AuthMiddleware and gates the console routes on
// the account's role.
func AdminMiddleware(ledger *services.Ledger) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("uid")
		sessionID := c.GetString("session_id")

		user := ledger.CurrentUser(uid, sessionID)
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired or invalid"})
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func RateLimitMiddleware(store *services.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := c.GetString("uid")
		if identity == "" {
			identity = c.ClientIP()
		}

		path := c.Request.URL.Path

		var limit int
		window := time.Minute

		switch {
		case strings.HasSuffix(path, "/auth/login"):
			limit = services.DefaultRateLimitLogin
		case strings.HasSuffix(path, "/orders") && c.Request.Method == http.MethodPost:
			limit = services.DefaultRateLimitOrders
		case strings.HasSuffix(path, "/wallet/deposits") && c.Request.Method == http.MethodPost:
			limit = services.DefaultRateLimitDeposits
		default:
			c.Next()
			return
		}

		allowed, err := store.CheckRateLimit(identity, path, limit, window)
		if err != nil || !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"retry_after": window.Seconds(),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

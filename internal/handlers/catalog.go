package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mdjobayerdream-BD/JioFFtopup/internal/models"
	"github.com/mdjobayerdream-BD/JioFFtopup/internal/services"
)

// CatalogHandler serves the public storefront data: the built-in top-up
// catalog and the site settings the checkout and deposit forms read.
type CatalogHandler struct {
	settings *services.Settings
}

func NewCatalogHandler(settings *services.Settings) *CatalogHandler {
	return &CatalogHandler{settings: settings}
}

func (h *CatalogHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.Categories})
}

func (h *CatalogHandler) Packages(c *gin.Context) {
	categoryID := c.Query("category")
	if categoryID == "" {
		c.JSON(http.StatusOK, gin.H{"packages": models.Packages})
		return
	}

	if _, ok := models.FindCategory(categoryID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"packages": models.PackagesForCategory(categoryID)})
}

func (h *CatalogHandler) Settings(c *gin.Context) {
	c.JSON(http.StatusOK, h.settings.Get())
}

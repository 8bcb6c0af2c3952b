package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grich88/civic/models"
)

// GetPlugins returns every registered vendor plugin
func GetPlugins(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    registry.All(),
	})
}

// GetPlugin returns a single vendor plugin
func GetPlugin(c *gin.Context) {
	plugin, ok := registry.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor plugin not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    plugin,
	})
}

// SetPluginStatus enables or disables a vendor plugin
func SetPluginStatus(c *gin.Context) {
	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if !registry.SetStatus(c.Param("id"), *req.IsActive) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor plugin not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Plugin status updated",
	})
}

// ConfigurePlugin merges API credentials and settings into a plugin
func ConfigurePlugin(c *gin.Context) {
	var req models.PluginConfiguration

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if !registry.Configure(c.Param("id"), req) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor plugin not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Plugin configuration updated",
	})
}

// GetPluginImpactMetrics returns a plugin's social impact metrics
func GetPluginImpactMetrics(c *gin.Context) {
	plugin, ok := registry.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Vendor plugin not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    plugin.SocialImpact.ImpactMetrics,
	})
}

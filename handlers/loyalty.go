package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetLoyaltyProfile returns the signed-in user's loyalty summary
func GetLoyaltyProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    loyaltyLedger.Profile(userID),
	})
}

// GetLoyaltyPoints returns the user's point grants, optionally
// filtered to one vendor.
func GetLoyaltyPoints(c *gin.Context) {
	userID := c.GetString("user_id")

	if vendorID := c.Query("vendor_id"); vendorID != "" {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"vendor_id": vendorID,
				"balance":   loyaltyLedger.Balance(userID, vendorID),
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    loyaltyLedger.Grants(userID),
	})
}

// GetRedemptionHistory returns the user's completed redemptions
func GetRedemptionHistory(c *gin.Context) {
	userID := c.GetString("user_id")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    loyaltyLedger.Redemptions(userID),
	})
}

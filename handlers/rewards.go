package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/grich88/civic/services"
)

// GetAllRewards returns every active reward across active vendors
func GetAllRewards(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    rewardEngine.AllAvailableRewards(),
	})
}

// GetRewardCatalog returns one vendor's reward catalog
func GetRewardCatalog(c *gin.Context) {
	vendorID := c.Param("vendorId")

	catalog := rewardEngine.RewardCatalog(vendorID)
	if catalog == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reward catalog not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    catalog,
	})
}

// RedeemReward exchanges the signed-in user's points for a reward.
// The engine validates against the user's grants and bumps the tier
// counter; the ledger then applies the point deduction. The engine
// never touches balances.
func RedeemReward(c *gin.Context) {
	var req struct {
		RewardTierID string `json:"reward_tier_id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID := c.GetString("user_id")
	grants := loyaltyLedger.Grants(userID)

	redemption, err := rewardEngine.RedeemReward(userID, req.RewardTierID, grants)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRewardNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInsufficientPoints),
			errors.Is(err, services.ErrRedemptionLimit),
			errors.Is(err, services.ErrRewardExpired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to redeem reward"})
		}
		return
	}

	loyaltyLedger.ApplyRedemption(redemption)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Reward redeemed successfully",
		"data":    redemption,
	})
}

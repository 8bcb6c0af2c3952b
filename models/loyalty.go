package models

import "time"

// LoyaltyPoint is a single point grant scoped to one user and one
// vendor. A user's spendable balance per vendor is the sum of their
// non-expired grants for that vendor.
type LoyaltyPoint struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	VendorID   string     `json:"vendor_id"`
	VendorName string     `json:"vendor_name"`
	Points     int        `json:"points"`
	EarnedFrom string     `json:"earned_from"`
	EarnedAt   time.Time  `json:"earned_at"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

// Spendable reports whether the grant still counts toward the
// user's balance at the given time.
func (p *LoyaltyPoint) Spendable(now time.Time) bool {
	return p.ExpiresAt == nil || !now.After(*p.ExpiresAt)
}

// LoyaltyTier is the user's standing in the loyalty program
type LoyaltyTier string

const (
	TierBronze   LoyaltyTier = "bronze"
	TierSilver   LoyaltyTier = "silver"
	TierGold     LoyaltyTier = "gold"
	TierPlatinum LoyaltyTier = "platinum"
)

// UserLoyaltyProfile summarizes a user's point activity across vendors
type UserLoyaltyProfile struct {
	UserID            string              `json:"user_id"`
	TotalPointsEarned int                 `json:"total_points_earned"`
	TotalPointsSpent  int                 `json:"total_points_spent"`
	CurrentBalance    []*LoyaltyPoint     `json:"current_balance"`
	RedemptionHistory []*RewardRedemption `json:"redemption_history"`
	Tier              LoyaltyTier         `json:"tier"`
}

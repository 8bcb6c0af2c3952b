package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/grich88/civic/models"
)

// Loyalty tier thresholds on lifetime points earned
const (
	silverThreshold   = 1000
	goldThreshold     = 5000
	platinumThreshold = 15000
)

// LoyaltyLedger is the system of record for user point balances and
// redemption history. The reward engine is intentionally NOT: it
// validates against grants handed to it and mutates only catalog
// counters, so the deduction after a successful redemption is applied
// here, by the caller.
type LoyaltyLedger struct {
	mu          sync.RWMutex
	grants      map[string][]*models.LoyaltyPoint     // by user id
	redemptions map[string][]*models.RewardRedemption // by user id
	earned      map[string]int                        // lifetime points by user id
	spent       map[string]int
}

// NewLoyaltyLedger creates an empty ledger
func NewLoyaltyLedger() *LoyaltyLedger {
	return &LoyaltyLedger{
		grants:      make(map[string][]*models.LoyaltyPoint),
		redemptions: make(map[string][]*models.RewardRedemption),
		earned:      make(map[string]int),
		spent:       make(map[string]int),
	}
}

// AwardPoints records a new point grant for a user
func (l *LoyaltyLedger) AwardPoints(userID, vendorID, vendorName string, points int, earnedFrom string) *models.LoyaltyPoint {
	grant := &models.LoyaltyPoint{
		ID:         uuid.New().String(),
		UserID:     userID,
		VendorID:   vendorID,
		VendorName: vendorName,
		Points:     points,
		EarnedFrom: earnedFrom,
		EarnedAt:   time.Now(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.grants[userID] = append(l.grants[userID], grant)
	l.earned[userID] += points
	return grant
}

// Grants returns a copy of the user's point grants
func (l *LoyaltyLedger) Grants(userID string) []*models.LoyaltyPoint {
	l.mu.RLock()
	defer l.mu.RUnlock()

	grants := make([]*models.LoyaltyPoint, len(l.grants[userID]))
	copy(grants, l.grants[userID])
	return grants
}

// Balance returns the user's spendable points with one vendor
func (l *LoyaltyLedger) Balance(userID, vendorID string) int {
	return VendorPointBalance(l.Grants(userID), vendorID, time.Now())
}

// ApplyRedemption deducts a completed redemption's points from the
// user's grants for that vendor (oldest spendable grants first) and
// records it in the history.
func (l *LoyaltyLedger) ApplyRedemption(redemption *models.RewardRedemption) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	remaining := redemption.PointsUsed
	var kept []*models.LoyaltyPoint
	for _, grant := range l.grants[redemption.UserID] {
		if remaining <= 0 || grant.VendorID != redemption.VendorID || !grant.Spendable(now) {
			kept = append(kept, grant)
			continue
		}
		if grant.Points <= remaining {
			remaining -= grant.Points
			continue
		}
		grant.Points -= remaining
		remaining = 0
		kept = append(kept, grant)
	}
	l.grants[redemption.UserID] = kept

	l.spent[redemption.UserID] += redemption.PointsUsed
	l.redemptions[redemption.UserID] = append(l.redemptions[redemption.UserID], redemption)
}

// Redemptions returns a copy of the user's redemption history
func (l *LoyaltyLedger) Redemptions(userID string) []*models.RewardRedemption {
	l.mu.RLock()
	defer l.mu.RUnlock()

	history := make([]*models.RewardRedemption, len(l.redemptions[userID]))
	copy(history, l.redemptions[userID])
	return history
}

// Profile builds the user's loyalty summary
func (l *LoyaltyLedger) Profile(userID string) *models.UserLoyaltyProfile {
	l.mu.RLock()
	defer l.mu.RUnlock()

	balance := make([]*models.LoyaltyPoint, len(l.grants[userID]))
	copy(balance, l.grants[userID])
	history := make([]*models.RewardRedemption, len(l.redemptions[userID]))
	copy(history, l.redemptions[userID])

	return &models.UserLoyaltyProfile{
		UserID:            userID,
		TotalPointsEarned: l.earned[userID],
		TotalPointsSpent:  l.spent[userID],
		CurrentBalance:    balance,
		RedemptionHistory: history,
		Tier:              tierFor(l.earned[userID]),
	}
}

// SeedDemoGrants gives a fresh account a starter balance with each
// vendor so the loyalty screens have something to show.
func (l *LoyaltyLedger) SeedDemoGrants(userID string, registry *PluginRegistry) {
	for _, plugin := range registry.All() {
		l.AwardPoints(userID, plugin.ID, plugin.Name, 250, "Welcome bonus")
	}
}

func tierFor(earned int) models.LoyaltyTier {
	switch {
	case earned >= platinumThreshold:
		return models.TierPlatinum
	case earned >= goldThreshold:
		return models.TierGold
	case earned >= silverThreshold:
		return models.TierSilver
	}
	return models.TierBronze
}

package services

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/grich88/civic/models"
	"github.com/grich88/civic/utils"
)

// RewardEngine owns the per-vendor reward catalogs and executes
// point-for-reward exchanges. It is deliberately stateless with
// respect to user balances: callers hand it the user's point grants,
// it validates against them, and the only state it mutates is the
// tier's redemption counter. Deducting points is the caller's job.
type RewardEngine struct {
	registry *PluginRegistry

	// mu keeps the check of a tier's redemption cap and the counter
	// increment atomic. The validation path must not release it
	// between check and increment.
	mu sync.Mutex

	// now is swapped out by tests exercising expiry
	now func() time.Time
}

// NewRewardEngine creates a reward engine over the given registry
func NewRewardEngine(registry *PluginRegistry) *RewardEngine {
	return &RewardEngine{
		registry: registry,
		now:      time.Now,
	}
}

// RewardCatalog returns the catalog for a vendor, or nil if the vendor
// is unknown or has no catalog.
func (e *RewardEngine) RewardCatalog(vendorID string) *models.RewardCatalog {
	plugin, ok := e.registry.Get(vendorID)
	if !ok {
		return nil
	}
	return plugin.RewardCatalog
}

// AllAvailableRewards returns every active reward tier across active
// plugins, in plugin registration order, standard tiers before special
// offers within each vendor.
func (e *RewardEngine) AllAvailableRewards() []*models.RewardTier {
	var rewards []*models.RewardTier
	for _, plugin := range e.registry.Active() {
		if plugin.RewardCatalog == nil {
			continue
		}
		for _, tier := range plugin.RewardCatalog.Tiers {
			if tier.IsActive {
				rewards = append(rewards, tier)
			}
		}
		for _, offer := range plugin.RewardCatalog.SpecialOffers {
			if offer.IsActive {
				rewards = append(rewards, offer)
			}
		}
	}
	return rewards
}

// VendorPointBalance sums the spendable points a user holds with one
// vendor. Expired grants do not count.
func VendorPointBalance(grants []*models.LoyaltyPoint, vendorID string, now time.Time) int {
	total := 0
	for _, grant := range grants {
		if grant.VendorID == vendorID && grant.Spendable(now) {
			total += grant.Points
		}
	}
	return total
}

// RedeemReward validates and executes a redemption. Validation is
// fail-fast: the first failed check (unknown reward, insufficient
// vendor points, redemption cap, expiry) signals its distinct error
// and leaves the catalog untouched. On success the tier's redemption counter is incremented
// and a confirmed redemption record is returned. The caller's grants
// are never mutated; applying the point deduction to the balance of
// record is the caller's responsibility.
func (e *RewardEngine) RedeemReward(userID, rewardTierID string, grants []*models.LoyaltyPoint) (*models.RewardRedemption, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	var reward *models.RewardTier
	for _, tier := range e.AllAvailableRewards() {
		if tier.ID == rewardTierID {
			reward = tier
			break
		}
	}
	if reward == nil {
		return nil, ErrRewardNotFound
	}

	now := e.now()

	if VendorPointBalance(grants, reward.VendorID, now) < reward.PointsRequired {
		return nil, ErrInsufficientPoints
	}

	if reward.MaxRedemptions > 0 && reward.CurrentRedemptions >= reward.MaxRedemptions {
		return nil, ErrRedemptionLimit
	}

	if reward.ValidUntil != nil && now.After(*reward.ValidUntil) {
		return nil, ErrRewardExpired
	}

	var voucherCode string
	if reward.RewardType.NeedsVoucherCode() {
		voucherCode = utils.GenerateVoucherCode(reward.VendorID)
	}

	redemption := &models.RewardRedemption{
		ID:           uuid.New().String(),
		UserID:       userID,
		VendorID:     reward.VendorID,
		RewardTierID: rewardTierID,
		PointsUsed:   reward.PointsRequired,
		RewardType:   reward.RewardType,
		RewardValue:  reward.Value,
		RewardDetails: models.RewardDetails{
			Name:         reward.Name,
			Description:  reward.Description,
			Instructions: redemptionInstructions(reward.RewardType),
			VoucherCode:  voucherCode,
			ValidUntil:   reward.ValidUntil,
		},
		RedeemedAt: now,
		Status:     models.RedemptionConfirmed,
	}

	reward.CurrentRedemptions++

	log.Printf("Reward %s redeemed by user %s (%d points)", rewardTierID, userID, reward.PointsRequired)

	return redemption, nil
}

// redemptionInstructions maps each reward type to its fulfilment text.
// The switch is exhaustive over the RewardType constants.
func redemptionInstructions(rewardType models.RewardType) string {
	switch rewardType {
	case models.RewardFreeTicket:
		return "Use this code when purchasing your next ticket. The discount will be applied automatically."
	case models.RewardDiscount:
		return "Enter this code at checkout to apply your discount."
	case models.RewardMerchandise:
		return "Your merchandise will be shipped to the address on your account within 10 business days."
	case models.RewardUpgrade:
		return "Present this code at the venue for your upgrade. Subject to availability."
	case models.RewardVoucher:
		return "This voucher can be redeemed according to the terms specified."
	case models.RewardExperience:
		return "Your experience reward has been activated. You will receive further instructions via email."
	}
	return ""
}

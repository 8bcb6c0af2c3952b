package models

import "time"

// RewardType is the closed set of things a tier can be exchanged for
type RewardType string

const (
	RewardFreeTicket  RewardType = "free_ticket"
	RewardDiscount    RewardType = "discount"
	RewardMerchandise RewardType = "merchandise"
	RewardUpgrade     RewardType = "upgrade"
	RewardVoucher     RewardType = "voucher"
	RewardExperience  RewardType = "experience"
)

// IsValid reports whether t is one of the known reward types
func (t RewardType) IsValid() bool {
	switch t {
	case RewardFreeTicket, RewardDiscount, RewardMerchandise, RewardUpgrade, RewardVoucher, RewardExperience:
		return true
	}
	return false
}

// NeedsVoucherCode reports whether redeeming this reward type produces
// a voucher code the user presents at checkout or at the venue.
func (t RewardType) NeedsVoucherCode() bool {
	return t == RewardDiscount || t == RewardVoucher || t == RewardFreeTicket
}

// RewardTier is a catalog entry exchangeable for loyalty points.
// CurrentRedemptions is mutated only by a successful redemption and
// never exceeds MaxRedemptions when a cap is set.
type RewardTier struct {
	ID                 string     `json:"id"`
	VendorID           string     `json:"vendor_id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	PointsRequired     int        `json:"points_required"`
	RewardType         RewardType `json:"reward_type"`
	Value              string     `json:"value"`
	ImageURL           string     `json:"image_url,omitempty"`
	IsActive           bool       `json:"is_active"`
	MaxRedemptions     int        `json:"max_redemptions,omitempty"` // 0 means uncapped
	CurrentRedemptions int        `json:"current_redemptions"`
	ValidUntil         *time.Time `json:"valid_until,omitempty"`
	Terms              string     `json:"terms,omitempty"`
}

// RewardCatalog groups a vendor's standard tiers and special offers
type RewardCatalog struct {
	VendorID      string        `json:"vendor_id"`
	VendorName    string        `json:"vendor_name"`
	Tiers         []*RewardTier `json:"tiers"`
	SpecialOffers []*RewardTier `json:"special_offers"`
}

// RedemptionStatus tracks the lifecycle of a completed redemption
type RedemptionStatus string

const (
	RedemptionPending   RedemptionStatus = "pending"
	RedemptionConfirmed RedemptionStatus = "confirmed"
	RedemptionUsed      RedemptionStatus = "used"
	RedemptionExpired   RedemptionStatus = "expired"
)

// RewardDetails carries the user-facing payload of a redemption
type RewardDetails struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Instructions string     `json:"instructions,omitempty"`
	VoucherCode  string     `json:"voucher_code,omitempty"`
	ValidUntil   *time.Time `json:"valid_until,omitempty"`
}

// RewardRedemption is the immutable record of one completed reward
// exchange. Only the status ever changes after creation.
type RewardRedemption struct {
	ID            string           `json:"id"`
	UserID        string           `json:"user_id"`
	VendorID      string           `json:"vendor_id"`
	RewardTierID  string           `json:"reward_tier_id"`
	PointsUsed    int              `json:"points_used"`
	RewardType    RewardType       `json:"reward_type"`
	RewardValue   string           `json:"reward_value"`
	RewardDetails RewardDetails    `json:"reward_details"`
	RedeemedAt    time.Time        `json:"redeemed_at"`
	Status        RedemptionStatus `json:"status"`
}

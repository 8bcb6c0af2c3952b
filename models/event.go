package models

import "time"

// Event is a purchasable event, sourced either from a vendor's remote
// API (or its mock generator) or from the static native list.
type Event struct {
	ID                    string        `json:"id"`
	Name                  string        `json:"name"`
	Description           string        `json:"description"`
	Date                  time.Time     `json:"date"`
	Venue                 string        `json:"venue"`
	Organizer             string        `json:"organizer"`
	ImageURL              string        `json:"image_url"`
	Price                 float64       `json:"price"`
	MaxCapacity           int           `json:"max_capacity"`
	TicketsSold           int           `json:"tickets_sold"`
	IsAntiScalpingEnabled bool          `json:"is_anti_scalping_enabled"`
	LoyaltyPointsReward   int           `json:"loyalty_points_reward"`
	SocialImpact          *SocialImpact `json:"social_impact,omitempty"`
	VendorID              string        `json:"vendor_id,omitempty"` // empty for native events
}

// TicketsRemaining returns the number of unsold tickets
func (e *Event) TicketsRemaining() int {
	return e.MaxCapacity - e.TicketsSold
}

// IsFull reports whether the event has no tickets left
func (e *Event) IsFull() bool {
	return e.TicketsRemaining() <= 0
}

// IsPast reports whether the event date has already passed
func (e *Event) IsPast(now time.Time) bool {
	return e.Date.Before(now)
}

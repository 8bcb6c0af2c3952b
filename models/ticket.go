package models

import "time"

// TicketAttribute is a display attribute attached to ticket metadata
type TicketAttribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// TicketMetadata carries the descriptive payload of a ticket
type TicketMetadata struct {
	Description string            `json:"description"`
	Image       string            `json:"image"`
	Attributes  []TicketAttribute `json:"attributes"`
}

// Ticket is a purchased admission to an event
type Ticket struct {
	ID           string         `json:"id"`
	EventID      string         `json:"event_id"`
	EventName    string         `json:"event_name"`
	EventDate    time.Time      `json:"event_date"`
	Venue        string         `json:"venue"`
	Price        float64        `json:"price"`
	TicketType   string         `json:"ticket_type"`
	UserID       string         `json:"user_id"`
	QRCode       string         `json:"qr_code"`
	IsUsed       bool           `json:"is_used"`
	Metadata     TicketMetadata `json:"metadata"`
	SocialImpact *SocialImpact  `json:"social_impact,omitempty"`
	PurchasedAt  time.Time      `json:"purchased_at"`
}

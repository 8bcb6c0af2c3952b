package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/grich88/civic/models"
	"github.com/grich88/civic/utils"
)

// vendorTicketResponse is the envelope vendor purchase APIs return
type vendorTicketResponse struct {
	Success      bool           `json:"success"`
	Data         *models.Ticket `json:"data"`
	Error        string         `json:"error,omitempty"`
	SocialImpact *struct {
		Message string                 `json:"message"`
		Metrics map[string]interface{} `json:"metrics"`
	} `json:"social_impact,omitempty"`
}

// TicketService executes ticket purchases, either through a vendor
// plugin (remote API with mock fallback) or directly for native
// events, and keeps the purchased tickets in memory.
type TicketService struct {
	registry   *PluginRegistry
	aggregator *EventAggregator
	loyalty    *LoyaltyLedger
	client     *http.Client

	mu      sync.RWMutex
	tickets map[string][]*models.Ticket // by user id
}

// NewTicketService creates a ticket service
func NewTicketService(registry *PluginRegistry, aggregator *EventAggregator, loyalty *LoyaltyLedger, timeout time.Duration) *TicketService {
	return &TicketService{
		registry:   registry,
		aggregator: aggregator,
		loyalty:    loyalty,
		client:     &http.Client{Timeout: timeout},
		tickets:    make(map[string][]*models.Ticket),
	}
}

// PurchaseTicket buys a ticket to the given event for the given user.
// Events flagged for anti-scalping require a verified identity; that
// check is a precondition only, verification itself is the auth
// service's concern. Vendor API failures never surface: the purchase
// falls back to a mock ticket.
func (s *TicketService) PurchaseTicket(user *models.User, eventID, ticketType string) (*models.Ticket, error) {
	event, err := s.aggregator.FindEvent(eventID)
	if err != nil {
		return nil, err
	}

	if event.IsAntiScalpingEnabled && !user.IsVerified {
		return nil, ErrVerificationRequired
	}

	if event.IsFull() {
		return nil, ErrEventSoldOut
	}

	if ticketType == "" {
		ticketType = "general"
	}

	var ticket *models.Ticket
	if event.VendorID != "" {
		ticket = s.purchaseThroughPlugin(event, user.ID, ticketType)
	} else {
		ticket = s.nativeTicket(event, user.ID, ticketType)
	}

	if event.LoyaltyPointsReward > 0 {
		s.loyalty.AwardPoints(user.ID, event.VendorID, event.Organizer, event.LoyaltyPointsReward, "Ticket purchase: "+event.Name)
	}

	s.mu.Lock()
	s.tickets[user.ID] = append(s.tickets[user.ID], ticket)
	s.mu.Unlock()

	return ticket, nil
}

// UserTickets returns the tickets a user has purchased this session
func (s *TicketService) UserTickets(userID string) []*models.Ticket {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tickets := make([]*models.Ticket, len(s.tickets[userID]))
	copy(tickets, s.tickets[userID])
	return tickets
}

// purchaseThroughPlugin POSTs the purchase to the vendor API and falls
// back to a mock ticket on any failure.
func (s *TicketService) purchaseThroughPlugin(event *models.Event, userID, ticketType string) *models.Ticket {
	plugin, ok := s.registry.Get(event.VendorID)
	if !ok || !plugin.IsActive {
		log.Printf("Plugin %s not found or inactive, issuing mock ticket", event.VendorID)
		return s.mockTicket(event, userID, ticketType, nil)
	}

	ticket, err := s.remotePurchase(plugin, event, userID, ticketType)
	if err != nil {
		log.Printf("Failed to purchase ticket through %s, issuing mock ticket: %v", plugin.Name, err)
		return s.mockTicket(event, userID, ticketType, plugin)
	}
	return ticket
}

func (s *TicketService) remotePurchase(plugin *models.VendorPlugin, event *models.Event, userID, ticketType string) (*models.Ticket, error) {
	payload, err := json.Marshal(map[string]string{
		"event_id":    event.ID,
		"user_id":     userID,
		"ticket_type": ticketType,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal purchase request: %w", err)
	}

	req, err := http.NewRequest("POST", plugin.APIEndpoint+"/tickets/purchase", bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+plugin.Configuration.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach %s: %w", plugin.Name, err)
	}
	defer resp.Body.Close()

	var envelope vendorTicketResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode purchase response from %s: %w", plugin.Name, err)
	}

	if !envelope.Success || envelope.Data == nil {
		if envelope.Error != "" {
			return nil, fmt.Errorf("vendor %s rejected purchase: %s", plugin.Name, envelope.Error)
		}
		return nil, fmt.Errorf("vendor %s returned unsuccessful response", plugin.Name)
	}

	ticket := envelope.Data
	impact := plugin.SocialImpact
	ticket.SocialImpact = &impact
	if ticket.PurchasedAt.IsZero() {
		ticket.PurchasedAt = time.Now()
	}

	if envelope.SocialImpact != nil {
		log.Printf("Social impact tracked for %s: ticket=%s message=%q", plugin.ID, ticket.ID, envelope.SocialImpact.Message)
	}

	return ticket, nil
}

// mockTicket issues a demo ticket when the vendor API is unavailable
func (s *TicketService) mockTicket(event *models.Event, userID, ticketType string, plugin *models.VendorPlugin) *models.Ticket {
	vendorName := event.Organizer
	vendorID := event.VendorID
	impact := event.SocialImpact
	if plugin != nil {
		vendorName = plugin.Name
		pluginImpact := plugin.SocialImpact
		impact = &pluginImpact
	}

	attributes := []models.TicketAttribute{
		{TraitType: "Vendor", Value: vendorName},
	}
	if impact != nil {
		attributes = append(attributes,
			models.TicketAttribute{TraitType: "Social Impact", Value: string(impact.Type)},
			models.TicketAttribute{TraitType: "Beneficiary", Value: impact.Beneficiary},
		)
	}

	return &models.Ticket{
		ID:         uuid.New().String(),
		EventID:    event.ID,
		EventName:  event.Name,
		EventDate:  event.Date,
		Venue:      event.Venue,
		Price:      event.Price,
		TicketType: ticketType,
		UserID:     userID,
		QRCode:     utils.GenerateQRCode(vendorID),
		IsUsed:     false,
		Metadata: models.TicketMetadata{
			Description: fmt.Sprintf("Ticket purchased through %s", vendorName),
			Image:       event.ImageURL,
			Attributes:  attributes,
		},
		SocialImpact: impact,
		PurchasedAt:  time.Now(),
	}
}

// nativeTicket issues a ticket for a platform-run event
func (s *TicketService) nativeTicket(event *models.Event, userID, ticketType string) *models.Ticket {
	return s.mockTicket(event, userID, ticketType, nil)
}

package services

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/grich88/civic/models"
)

// EventSource produces the events a vendor currently offers
type EventSource interface {
	Events(plugin *models.VendorPlugin) ([]models.Event, error)
}

// vendorEventsResponse is the envelope vendor APIs return
type vendorEventsResponse struct {
	Success bool           `json:"success"`
	Data    []models.Event `json:"data"`
	Error   string         `json:"error,omitempty"`
}

// RemoteEventSource fetches events from a vendor's HTTP API
type RemoteEventSource struct {
	Client *http.Client
}

// NewRemoteEventSource creates a remote source with the given timeout
func NewRemoteEventSource(timeout time.Duration) *RemoteEventSource {
	return &RemoteEventSource{
		Client: &http.Client{Timeout: timeout},
	}
}

// Events performs GET {apiEndpoint}/events with bearer auth and stamps
// each returned event with the vendor's id and impact descriptor.
func (s *RemoteEventSource) Events(plugin *models.VendorPlugin) ([]models.Event, error) {
	req, err := http.NewRequest("GET", plugin.APIEndpoint+"/events", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+plugin.Configuration.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events from %s: %w", plugin.Name, err)
	}
	defer resp.Body.Close()

	var envelope vendorEventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode events from %s: %w", plugin.Name, err)
	}

	if !envelope.Success {
		if envelope.Error != "" {
			return nil, fmt.Errorf("vendor %s returned error: %s", plugin.Name, envelope.Error)
		}
		return nil, fmt.Errorf("vendor %s returned unsuccessful response", plugin.Name)
	}

	events := envelope.Data
	for i := range events {
		events[i].VendorID = plugin.ID
		impact := plugin.SocialImpact
		events[i].SocialImpact = &impact
	}
	return events, nil
}

// MockEventSource generates a deterministic event set for a vendor.
// It never fails; it backs the availability guarantee when a vendor
// API is down.
type MockEventSource struct{}

// Events returns the vendor's synthetic demo events
func (MockEventSource) Events(plugin *models.VendorPlugin) ([]models.Event, error) {
	impact := plugin.SocialImpact
	return []models.Event{
		{
			ID:                    plugin.ID + "-event-1",
			Name:                  "Charity Concert via " + plugin.Name,
			Description:           fmt.Sprintf("A benefit concert supporting %s", plugin.SocialImpact.Beneficiary),
			Date:                  time.Now().Add(7 * 24 * time.Hour),
			Venue:                 "Community Arts Center",
			Organizer:             plugin.Name,
			ImageURL:              "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=800&h=600&fit=crop",
			Price:                 35,
			MaxCapacity:           500,
			TicketsSold:           120,
			IsAntiScalpingEnabled: true,
			LoyaltyPointsReward:   10,
			VendorID:              plugin.ID,
			SocialImpact:          &impact,
		},
		{
			ID:                    plugin.ID + "-event-2",
			Name:                  "Sustainable Tech Conference via " + plugin.Name,
			Description:           fmt.Sprintf("Technology for good conference with %s impact", plugin.SocialImpact.Type),
			Date:                  time.Now().Add(14 * 24 * time.Hour),
			Venue:                 "Green Convention Center",
			Organizer:             plugin.Name,
			ImageURL:              "https://images.unsplash.com/photo-1517180102446-f3ece451e9d8?w=800&h=600&fit=crop",
			Price:                 85,
			MaxCapacity:           300,
			TicketsSold:           85,
			IsAntiScalpingEnabled: true,
			LoyaltyPointsReward:   25,
			VendorID:              plugin.ID,
			SocialImpact:          &impact,
		},
	}, nil
}

// FallbackEventSource tries a primary source and substitutes the
// fallback on any failure. With a mock fallback the composed source
// never fails, which is what keeps event listing available through
// vendor outages.
type FallbackEventSource struct {
	Primary  EventSource
	Fallback EventSource
}

// Events returns the primary source's events, or the fallback's when
// the primary fails.
func (s *FallbackEventSource) Events(plugin *models.VendorPlugin) ([]models.Event, error) {
	events, err := s.Primary.Events(plugin)
	if err != nil {
		log.Printf("Failed to load events from %s, using mock data: %v", plugin.Name, err)
		return s.Fallback.Events(plugin)
	}
	return events, nil
}

// EventAggregator produces the unified, date-ordered event list across
// active vendors plus the platform's native events.
type EventAggregator struct {
	registry *PluginRegistry
	source   EventSource
	native   []models.Event
}

// NewEventAggregator creates an aggregator over the given registry and
// per-vendor source.
func NewEventAggregator(registry *PluginRegistry, source EventSource) *EventAggregator {
	return &EventAggregator{
		registry: registry,
		source:   source,
		native:   nativeEvents(),
	}
}

// NewDefaultEventAggregator wires the remote-with-mock-fallback source
// used in production.
func NewDefaultEventAggregator(registry *PluginRegistry, timeout time.Duration) *EventAggregator {
	return NewEventAggregator(registry, &FallbackEventSource{
		Primary:  NewRemoteEventSource(timeout),
		Fallback: MockEventSource{},
	})
}

// AllEvents returns every event from active vendors plus the native
// events, sorted ascending by date. The merge is stable, so same-date
// events keep their input order. A fresh slice is returned on each
// call; nothing is cached.
func (a *EventAggregator) AllEvents() []models.Event {
	var all []models.Event

	for _, plugin := range a.registry.Active() {
		events, err := a.source.Events(plugin)
		if err != nil {
			// only reachable with a non-fallback source wired in
			log.Printf("Skipping events from %s: %v", plugin.Name, err)
			continue
		}
		all = append(all, events...)
	}

	all = append(all, a.native...)

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date.Before(all[j].Date)
	})

	return all
}

// FindEvent looks an event up by id in the current aggregate view
func (a *EventAggregator) FindEvent(eventID string) (*models.Event, error) {
	for _, event := range a.AllEvents() {
		if event.ID == eventID {
			e := event
			return &e, nil
		}
	}
	return nil, ErrEventNotFound
}

// AggregatedImpact accumulates the cross-vendor social impact summary
// over active plugins. Pure aggregation; nothing is mutated.
func (a *EventAggregator) AggregatedImpact() models.ImpactSummary {
	active := a.registry.Active()

	summary := models.ImpactSummary{
		ActivePlugins: len(active),
	}

	seen := make(map[models.ImpactType]bool)
	for _, plugin := range active {
		impact := plugin.SocialImpact
		if impact.TreesPlanted > 0 {
			summary.TotalTreesPlanted += impact.TreesPlanted
		}
		if impact.AmountDonated > 0 {
			summary.TotalMoneyDonated += impact.AmountDonated
		}
		if impact.Type == models.ImpactCarbonOffset {
			summary.CarbonOffsetPrograms++
		}
		if plugin.RewardCatalog != nil {
			summary.TotalRewardsAvailable += len(plugin.RewardCatalog.Tiers) + len(plugin.RewardCatalog.SpecialOffers)
		}
		if !seen[impact.Type] {
			seen[impact.Type] = true
			summary.ImpactTypes = append(summary.ImpactTypes, impact.Type)
		}
	}

	return summary
}

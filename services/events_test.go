package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/grich88/civic/models"
)

type failingSource struct{}

func (failingSource) Events(plugin *models.VendorPlugin) ([]models.Event, error) {
	return nil, errors.New("vendor outage")
}

func TestAllEvents_MockFallbackGuarantee(t *testing.T) {
	registry := NewDefaultPluginRegistry()
	aggregator := NewEventAggregator(registry, &FallbackEventSource{
		Primary:  failingSource{},
		Fallback: MockEventSource{},
	})

	events := aggregator.AllEvents()

	// 4 active vendors x 2 mock events + 2 native events
	want := 4*2 + 2
	if len(events) != want {
		t.Fatalf("expected %d events, got %d", want, len(events))
	}
}

func TestAllEvents_SortedAscendingByDate(t *testing.T) {
	registry := NewDefaultPluginRegistry()
	aggregator := NewEventAggregator(registry, &FallbackEventSource{
		Primary:  failingSource{},
		Fallback: MockEventSource{},
	})

	events := aggregator.AllEvents()
	for i := 1; i < len(events); i++ {
		if events[i-1].Date.After(events[i].Date) {
			t.Fatalf("events out of order at %d: %s after %s", i, events[i-1].Date, events[i].Date)
		}
	}
}

func TestAllEvents_InactivePluginExcluded(t *testing.T) {
	registry := NewDefaultPluginRegistry()
	registry.SetStatus("humanitix", false)

	aggregator := NewEventAggregator(registry, MockEventSource{})
	for _, event := range aggregator.AllEvents() {
		if event.VendorID == "humanitix" {
			t.Fatalf("event %s from disabled vendor listed", event.ID)
		}
	}
}

func TestAllEvents_FreshSliceEachCall(t *testing.T) {
	registry := NewDefaultPluginRegistry()
	aggregator := NewEventAggregator(registry, MockEventSource{})

	first := aggregator.AllEvents()
	first[0].Name = "mutated"

	second := aggregator.AllEvents()
	if second[0].Name == "mutated" {
		t.Error("AllEvents must return a fresh slice each call")
	}
}

func TestRemoteEventSource_StampsVendorFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/events" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Write([]byte(`{"success":true,"data":[{"id":"r-1","name":"Remote Gala","date":"2031-05-01T19:00:00Z","max_capacity":100,"tickets_sold":10}]}`))
	}))
	defer server.Close()

	plugin := &models.VendorPlugin{
		ID:          "remote-vendor",
		Name:        "Remote Vendor",
		APIEndpoint: server.URL,
		IsActive:    true,
		SocialImpact: models.SocialImpact{
			Type:        models.ImpactCharity,
			Beneficiary: "Remote charity",
		},
		Configuration: models.PluginConfiguration{APIKey: "test-key"},
	}

	source := NewRemoteEventSource(5 * time.Second)
	events, err := source.Events(plugin)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].VendorID != "remote-vendor" {
		t.Errorf("event not stamped with vendor id: %q", events[0].VendorID)
	}
	if events[0].SocialImpact == nil || events[0].SocialImpact.Type != models.ImpactCharity {
		t.Error("event not stamped with vendor social impact")
	}
}

func TestRemoteEventSource_EnvelopeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"rate limited"}`))
	}))
	defer server.Close()

	plugin := &models.VendorPlugin{ID: "remote-vendor", Name: "Remote Vendor", APIEndpoint: server.URL}

	if _, err := NewRemoteEventSource(5 * time.Second).Events(plugin); err == nil {
		t.Fatal("success:false envelope must be treated as a failure")
	}
}

func TestFallbackEventSource_SubstitutesMocks(t *testing.T) {
	registry := NewDefaultPluginRegistry()
	plugin, _ := registry.Get("tickethic")

	source := &FallbackEventSource{Primary: failingSource{}, Fallback: MockEventSource{}}
	events, err := source.Events(plugin)
	if err != nil {
		t.Fatalf("fallback source must not fail: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 mock events, got %d", len(events))
	}
	for _, event := range events {
		if event.VendorID != "tickethic" {
			t.Errorf("mock event %s missing vendor id", event.ID)
		}
	}
}

func TestAggregatedImpact(t *testing.T) {
	registry := NewPluginRegistry()
	registry.Register(&models.VendorPlugin{
		ID:       "trees-vendor",
		IsActive: true,
		SocialImpact: models.SocialImpact{
			Type:         models.ImpactTrees,
			TreesPlanted: 3000,
		},
		RewardCatalog: &models.RewardCatalog{
			Tiers:         []*models.RewardTier{testTier("t1", "trees-vendor", 100, models.RewardDiscount, true)},
			SpecialOffers: []*models.RewardTier{testTier("t2", "trees-vendor", 500, models.RewardUpgrade, false)},
		},
	})
	registry.Register(&models.VendorPlugin{
		ID:       "charity-vendor",
		IsActive: true,
		SocialImpact: models.SocialImpact{
			Type:          models.ImpactCharity,
			AmountDonated: 500,
		},
	})
	registry.Register(&models.VendorPlugin{
		ID:       "offline-vendor",
		IsActive: false,
		SocialImpact: models.SocialImpact{
			Type:         models.ImpactTrees,
			TreesPlanted: 9999,
		},
	})

	summary := NewEventAggregator(registry, MockEventSource{}).AggregatedImpact()

	if summary.TotalTreesPlanted != 3000 {
		t.Errorf("expected 3000 trees, got %d", summary.TotalTreesPlanted)
	}
	if summary.TotalMoneyDonated != 500 {
		t.Errorf("expected 500 donated, got %v", summary.TotalMoneyDonated)
	}
	if summary.ActivePlugins != 2 {
		t.Errorf("expected 2 active plugins, got %d", summary.ActivePlugins)
	}
	// reward counts include inactive tiers (catalog size, not availability)
	if summary.TotalRewardsAvailable != 2 {
		t.Errorf("expected 2 rewards, got %d", summary.TotalRewardsAvailable)
	}
	wantTypes := []models.ImpactType{models.ImpactTrees, models.ImpactCharity}
	if len(summary.ImpactTypes) != len(wantTypes) {
		t.Fatalf("expected %d impact types, got %v", len(wantTypes), summary.ImpactTypes)
	}
	for i, want := range wantTypes {
		if summary.ImpactTypes[i] != want {
			t.Errorf("impact type %d: expected %s, got %s", i, want, summary.ImpactTypes[i])
		}
	}
}

func TestAggregatedImpact_CarbonOffsetCount(t *testing.T) {
	registry := NewDefaultPluginRegistry()
	summary := NewEventAggregator(registry, MockEventSource{}).AggregatedImpact()

	// ticketebo is the one carbon-offset vendor in the default set
	if summary.CarbonOffsetPrograms != 1 {
		t.Errorf("expected 1 carbon offset program, got %d", summary.CarbonOffsetPrograms)
	}
	if summary.ActivePlugins != 4 {
		t.Errorf("expected 4 active plugins, got %d", summary.ActivePlugins)
	}
	// 4 vendors x (3 tiers + 1 special offer)
	if summary.TotalRewardsAvailable != 16 {
		t.Errorf("expected 16 rewards, got %d", summary.TotalRewardsAvailable)
	}
}

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/grich88/civic/config"
	"github.com/grich88/civic/services"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	t.Setenv("SESSION_DIR", t.TempDir())
	if err := config.Load(); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	store, err := services.NewSessionStore(config.AppConfig.SessionDir)
	if err != nil {
		t.Fatalf("failed to create session store: %v", err)
	}

	registry := services.NewDefaultPluginRegistry()
	rewardEngine := services.NewRewardEngine(registry)
	// mock source only, no vendor HTTP calls from tests
	aggregator := services.NewEventAggregator(registry, services.MockEventSource{})
	ledger := services.NewLoyaltyLedger()
	ticketService := services.NewTicketService(registry, aggregator, ledger, time.Second)
	authService := services.NewAuthService(store)

	InitializeHandlers(authService, registry, rewardEngine, aggregator, ticketService, ledger)

	router := gin.New()
	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", RegisterUser)
			auth.POST("/login", LoginUser)
			auth.GET("/validate", ValidateToken)
		}

		events := api.Group("/events")
		{
			events.GET("/", GetEvents)
			events.GET("/:id", GetEvent)
		}

		rewards := api.Group("/rewards")
		{
			rewards.GET("/catalog/:vendorId", GetRewardCatalog)
			rewards.POST("/redeem", AuthMiddleware(), RedeemReward)
		}

		loyalty := api.Group("/loyalty")
		loyalty.Use(AuthMiddleware())
		{
			loyalty.GET("/profile", GetLoyaltyProfile)
			loyalty.GET("/points", GetLoyaltyPoints)
			loyalty.GET("/redemptions", GetRedemptionHistory)
		}

		tickets := api.Group("/tickets")
		tickets.Use(AuthMiddleware())
		{
			tickets.POST("/purchase", PurchaseTicket)
			tickets.GET("/", GetUserTickets)
		}
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	w := doJSON(t, router, "POST", "/api/v1/auth/register", "", gin.H{
		"email":    email,
		"password": "secret123",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode register response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("register response missing token")
	}
	return resp.Token
}

func vendorBalance(t *testing.T, router *gin.Engine, token, vendorID string) int {
	t.Helper()

	w := doJSON(t, router, "GET", "/api/v1/loyalty/points?vendor_id="+vendorID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("points returned %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Balance int `json:"balance"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode points response: %v", err)
	}
	return resp.Data.Balance
}

func profileEarned(t *testing.T, router *gin.Engine, token string) int {
	t.Helper()

	w := doJSON(t, router, "GET", "/api/v1/loyalty/profile", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("profile returned %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			TotalPointsEarned int `json:"total_points_earned"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode profile response: %v", err)
	}
	return resp.Data.TotalPointsEarned
}

func TestRegisterLoginValidate(t *testing.T) {
	router := setupRouter(t)
	token := registerUser(t, router, "flow@example.com")

	w := doJSON(t, router, "GET", "/api/v1/auth/validate", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("validate returned %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, "POST", "/api/v1/auth/login", "", gin.H{
		"email":    "flow@example.com",
		"password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Errorf("login returned %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, "POST", "/api/v1/auth/login", "", gin.H{
		"email":    "flow@example.com",
		"password": "wrong-password",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for a bad password, got %d", w.Code)
	}

	w = doJSON(t, router, "POST", "/api/v1/auth/register", "", gin.H{
		"email":    "flow@example.com",
		"password": "secret123",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 for a duplicate email, got %d", w.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	router := setupRouter(t)

	for _, path := range []string{
		"/api/v1/loyalty/profile",
		"/api/v1/loyalty/points",
		"/api/v1/tickets/",
	} {
		w := doJSON(t, router, "GET", path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s without a token returned %d, want 401", path, w.Code)
		}
	}
}

func TestRedeemFlow(t *testing.T) {
	router := setupRouter(t)
	token := registerUser(t, router, "redeemer@example.com")

	// welcome bonus gives 250 points with each vendor
	if got := vendorBalance(t, router, token, "humanitix"); got != 250 {
		t.Fatalf("expected 250 starter points, got %d", got)
	}

	w := doJSON(t, router, "POST", "/api/v1/rewards/redeem", token, gin.H{
		"reward_tier_id": "humanitix-discount-20",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("redeem returned %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			PointsUsed    int    `json:"points_used"`
			Status        string `json:"status"`
			RewardDetails struct {
				VoucherCode string `json:"voucher_code"`
			} `json:"reward_details"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode redeem response: %v", err)
	}
	if resp.Data.PointsUsed != 200 {
		t.Errorf("expected 200 points used, got %d", resp.Data.PointsUsed)
	}
	if resp.Data.RewardDetails.VoucherCode == "" {
		t.Error("discount redemption should carry a voucher code")
	}
	if resp.Data.Status != "confirmed" {
		t.Errorf("expected confirmed status, got %q", resp.Data.Status)
	}

	// deduction lands in the ledger
	if got := vendorBalance(t, router, token, "humanitix"); got != 50 {
		t.Errorf("expected 50 points after redemption, got %d", got)
	}

	// counter bump is visible in the catalog
	w = doJSON(t, router, "GET", "/api/v1/rewards/catalog/humanitix", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("catalog returned %d", w.Code)
	}
	var catalog struct {
		Data struct {
			Tiers []struct {
				ID                 string `json:"id"`
				CurrentRedemptions int    `json:"current_redemptions"`
			} `json:"tiers"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &catalog); err != nil {
		t.Fatalf("failed to decode catalog response: %v", err)
	}
	for _, tier := range catalog.Data.Tiers {
		if tier.ID == "humanitix-discount-20" && tier.CurrentRedemptions != 128 {
			t.Errorf("expected redemption counter 128, got %d", tier.CurrentRedemptions)
		}
	}

	// 50 points left, the 500-point tier is out of reach
	w = doJSON(t, router, "POST", "/api/v1/rewards/redeem", token, gin.H{
		"reward_tier_id": "humanitix-free-ticket",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for insufficient points, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, "POST", "/api/v1/rewards/redeem", token, gin.H{
		"reward_tier_id": "no-such-tier",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for an unknown tier, got %d", w.Code)
	}

	w = doJSON(t, router, "GET", "/api/v1/loyalty/redemptions", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("redemptions returned %d", w.Code)
	}
	var history struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &history); err != nil {
		t.Fatalf("failed to decode history response: %v", err)
	}
	if len(history.Data) != 1 {
		t.Errorf("expected 1 redemption in history, got %d", len(history.Data))
	}
}

func TestPurchaseFlow(t *testing.T) {
	router := setupRouter(t)
	token := registerUser(t, router, "buyer@example.com")

	before := profileEarned(t, router, token)

	w := doJSON(t, router, "POST", "/api/v1/tickets/purchase", token, gin.H{
		"event_id": "native-1",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("purchase returned %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			EventID    string `json:"event_id"`
			TicketType string `json:"ticket_type"`
			QRCode     string `json:"qr_code"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode purchase response: %v", err)
	}
	if resp.Data.EventID != "native-1" {
		t.Errorf("wrong event on ticket: %s", resp.Data.EventID)
	}
	if resp.Data.TicketType != "general" {
		t.Errorf("expected default ticket type, got %q", resp.Data.TicketType)
	}
	if resp.Data.QRCode == "" {
		t.Error("ticket missing QR code")
	}

	// native-1 awards 5 loyalty points
	if after := profileEarned(t, router, token); after != before+5 {
		t.Errorf("expected %d lifetime points after purchase, got %d", before+5, after)
	}

	w = doJSON(t, router, "GET", "/api/v1/tickets/", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("tickets returned %d", w.Code)
	}
	var tickets struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &tickets); err != nil {
		t.Fatalf("failed to decode tickets response: %v", err)
	}
	if len(tickets.Data) != 1 {
		t.Errorf("expected 1 ticket, got %d", len(tickets.Data))
	}

	w = doJSON(t, router, "POST", "/api/v1/tickets/purchase", token, gin.H{
		"event_id": "no-such-event",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for an unknown event, got %d", w.Code)
	}
}

func TestGetEvents(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, "GET", "/api/v1/events/", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("events returned %d", w.Code)
	}

	var resp struct {
		Data []struct {
			ID   string `json:"id"`
			Date string `json:"date"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode events response: %v", err)
	}

	// 4 vendors with 2 mock events each plus 2 native events
	if len(resp.Data) != 10 {
		t.Errorf("expected 10 events, got %d", len(resp.Data))
	}

	w = doJSON(t, router, "GET", "/api/v1/events/native-1", "", nil)
	if w.Code != http.StatusOK {
		t.Errorf("event lookup returned %d", w.Code)
	}
	w = doJSON(t, router, "GET", "/api/v1/events/no-such-event", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for an unknown event, got %d", w.Code)
	}
}

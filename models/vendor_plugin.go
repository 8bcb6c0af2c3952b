package models

// PluginType describes what a vendor integration provides
type PluginType string

const (
	PluginTicketing PluginType = "ticketing"
	PluginLoyalty   PluginType = "loyalty"
	PluginBoth      PluginType = "both"
)

// PluginConfiguration holds per-vendor integration settings
type PluginConfiguration struct {
	APIKey            string   `json:"api_key,omitempty"`
	WebhookURL        string   `json:"webhook_url,omitempty"`
	SupportedFeatures []string `json:"supported_features"`
}

// VendorPlugin represents an external ticketing partner integration.
// Plugins are created once at process start from static definitions
// and live in memory for the life of the process.
type VendorPlugin struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Type          PluginType          `json:"type"`
	Description   string              `json:"description"`
	LogoURL       string              `json:"logo_url"`
	WebsiteURL    string              `json:"website_url"`
	APIEndpoint   string              `json:"api_endpoint"`
	IsActive      bool                `json:"is_active"`
	SocialImpact  SocialImpact        `json:"social_impact"`
	Configuration PluginConfiguration `json:"configuration"`
	RewardCatalog *RewardCatalog      `json:"reward_catalog,omitempty"`
}

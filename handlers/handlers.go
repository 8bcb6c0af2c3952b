package handlers

import "github.com/grich88/civic/services"

var (
	authService   *services.AuthService
	registry      *services.PluginRegistry
	rewardEngine  *services.RewardEngine
	aggregator    *services.EventAggregator
	ticketService *services.TicketService
	loyaltyLedger *services.LoyaltyLedger
)

// InitializeHandlers wires the handler package to the service layer
func InitializeHandlers(
	auth *services.AuthService,
	plugins *services.PluginRegistry,
	rewards *services.RewardEngine,
	events *services.EventAggregator,
	tickets *services.TicketService,
	loyalty *services.LoyaltyLedger,
) {
	authService = auth
	registry = plugins
	rewardEngine = rewards
	aggregator = events
	ticketService = tickets
	loyaltyLedger = loyalty
}

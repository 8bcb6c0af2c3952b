package services

import (
	"sync"

	"github.com/grich88/civic/models"
)

// PluginRegistry holds every registered vendor plugin for the life of
// the process. It is constructed once at startup and passed by
// reference to the services that need it; nothing else holds plugin
// state. Iteration follows registration order.
type PluginRegistry struct {
	mu      sync.RWMutex
	order   []string
	plugins map[string]*models.VendorPlugin
}

// NewPluginRegistry creates an empty registry
func NewPluginRegistry() *PluginRegistry {
	return &PluginRegistry{
		plugins: make(map[string]*models.VendorPlugin),
	}
}

// NewDefaultPluginRegistry creates a registry seeded with the built-in
// vendor integrations.
func NewDefaultPluginRegistry() *PluginRegistry {
	r := NewPluginRegistry()
	for _, plugin := range defaultPlugins() {
		r.Register(plugin)
	}
	return r
}

// Register adds a plugin. Re-registering an id replaces the plugin in
// place without changing its position.
func (r *PluginRegistry) Register(plugin *models.VendorPlugin) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plugins[plugin.ID]; !exists {
		r.order = append(r.order, plugin.ID)
	}
	r.plugins[plugin.ID] = plugin
}

// All returns every plugin in registration order
func (r *PluginRegistry) All() []*models.VendorPlugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*models.VendorPlugin, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.plugins[id])
	}
	return all
}

// Active returns the active plugins in registration order
func (r *PluginRegistry) Active() []*models.VendorPlugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var active []*models.VendorPlugin
	for _, id := range r.order {
		if plugin := r.plugins[id]; plugin.IsActive {
			active = append(active, plugin)
		}
	}
	return active
}

// Get returns the plugin with the given id
func (r *PluginRegistry) Get(pluginID string) (*models.VendorPlugin, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	plugin, ok := r.plugins[pluginID]
	return plugin, ok
}

// SetStatus enables or disables a plugin
func (r *PluginRegistry) SetStatus(pluginID string, isActive bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	plugin, ok := r.plugins[pluginID]
	if !ok {
		return false
	}
	plugin.IsActive = isActive
	return true
}

// Configure merges the given settings into a plugin's configuration.
// Empty fields leave the existing values untouched.
func (r *PluginRegistry) Configure(pluginID string, configuration models.PluginConfiguration) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	plugin, ok := r.plugins[pluginID]
	if !ok {
		return false
	}
	if configuration.APIKey != "" {
		plugin.Configuration.APIKey = configuration.APIKey
	}
	if configuration.WebhookURL != "" {
		plugin.Configuration.WebhookURL = configuration.WebhookURL
	}
	if len(configuration.SupportedFeatures) > 0 {
		plugin.Configuration.SupportedFeatures = configuration.SupportedFeatures
	}
	return true
}

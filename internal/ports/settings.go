package ports

import "content-templates/internal/types"

// SettingsPort exposes the site configuration the resolver depends on.
// Implementations must read live values on every call.
type SettingsPort interface {
	Defaults() types.Defaults
	Provider() types.ProviderConfig
	// Settings returns the whole settings tree handed to templates.
	Settings() map[string]any
}

package adapters

import (
	"sort"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"content-templates/internal/ports"
	"content-templates/internal/types"
)

const (
	keyProviderSource   = "provider.source"
	keyProviderTable    = "provider.table"
	keyProviderField    = "provider.field"
	keyProviderFallback = "provider.fallback_template"
	keyDefaultMode      = "settings.defaults.mode"
	keyDefaultVariant   = "settings.defaults.variant"
	keyDefaultVersion   = "settings.defaults.version"
	keySettings         = "settings"
	keySources          = "sources"
	keyVariants         = "variants"
)

// ViperConfigAdapter serves settings, source roots and variant candidates
// from a viper instance. Every call reads the live configuration.
type ViperConfigAdapter struct {
	v *viper.Viper
}

func NewViperConfigAdapter(v *viper.Viper) ViperConfigAdapter {
	v.SetDefault(keyProviderTable, types.DefaultProviderTable)
	v.SetDefault(keyProviderField, types.DefaultProviderField)
	return ViperConfigAdapter{v: v}
}

func (a ViperConfigAdapter) Defaults() types.Defaults {
	mode := types.Mode(strings.ToLower(strings.TrimSpace(a.v.GetString(keyDefaultMode))))
	if mode == "" {
		mode = types.ModeConfiguration
	}
	return types.Defaults{
		Mode:    mode,
		Variant: strings.TrimSpace(a.v.GetString(keyDefaultVariant)),
		Version: strings.TrimSpace(a.v.GetString(keyDefaultVersion)),
	}
}

func (a ViperConfigAdapter) Provider() types.ProviderConfig {
	return types.ProviderConfig{
		Source:           strings.TrimSpace(a.v.GetString(keyProviderSource)),
		Table:            strings.TrimSpace(a.v.GetString(keyProviderTable)),
		Field:            strings.TrimSpace(a.v.GetString(keyProviderField)),
		FallbackTemplate: strings.TrimSpace(a.v.GetString(keyProviderFallback)),
	}
}

func (a ViperConfigAdapter) Settings() map[string]any {
	return a.v.GetStringMap(keySettings)
}

// Roots accepts either a single directory or a list per source. Source
// names are matched case-insensitively, as viper lower-cases keys.
func (a ViperConfigAdapter) Roots(source string) []string {
	if strings.TrimSpace(source) == "" {
		return nil
	}
	return stringList(lookup(a.v.GetStringMap(keySources), source))
}

func (a ViperConfigAdapter) Candidates(contentType string) []string {
	if strings.TrimSpace(contentType) == "" {
		return nil
	}
	return stringList(lookup(a.v.GetStringMap(keyVariants), contentType))
}

// ContentTypes lists the content types that have variant candidates, in
// lexical order.
func (a ViperConfigAdapter) ContentTypes() []string {
	variants := a.v.GetStringMap(keyVariants)
	contentTypes := make([]string, 0, len(variants))
	for contentType := range variants {
		contentTypes = append(contentTypes, contentType)
	}
	sort.Strings(contentTypes)
	return contentTypes
}

func lookup(values map[string]any, name string) any {
	if value, ok := values[name]; ok {
		return value
	}
	return values[strings.ToLower(name)]
}

func stringList(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []string{strings.TrimSpace(v)}
	default:
		var items []string
		for _, item := range cast.ToStringSlice(v) {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				items = append(items, trimmed)
			}
		}
		return items
	}
}

var (
	_ ports.SettingsPort          = ViperConfigAdapter{}
	_ ports.SourceRootsPort       = ViperConfigAdapter{}
	_ ports.VariantCandidatesPort = ViperConfigAdapter{}
)

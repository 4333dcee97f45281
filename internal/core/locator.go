package core

import (
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"content-templates/internal/ports"
	"content-templates/internal/types"
)

// TemplateLocator picks the template file that renders a record.
type TemplateLocator struct {
	Fs        afero.Fs
	Roots     ports.SourceRootsPort
	Settings  ports.SettingsPort
	Overrides OverrideResolver
}

func NewTemplateLocator(fs afero.Fs, roots ports.SourceRootsPort, settings ports.SettingsPort) TemplateLocator {
	return TemplateLocator{
		Fs:        fs,
		Roots:     roots,
		Settings:  settings,
		Overrides: NewOverrideResolver(settings),
	}
}

// Resolve always returns a path. When no root of the selected source holds
// the record's template, the provider's fallback template is returned even
// if it does not exist; reporting that is the renderer's job.
func (l TemplateLocator) Resolve(record types.Record) types.Resolution {
	provider := l.Settings.Provider()
	source := SourceName(record, provider)
	variant := l.Overrides.EffectiveVariant(record)
	version := l.Overrides.EffectiveVersion(record)
	if variant != "" {
		source = variant
	}

	resolution := types.Resolution{
		Source:  source,
		Variant: variant,
		Version: version,
	}
	if path, ok := firstExisting(l.Fs, l.Roots.Roots(source), record.Type, version); ok {
		resolution.Path = absPath(path)
		log.Debug().
			Str("content_type", record.Type).
			Str("source", source).
			Str("version", version).
			Str("path", resolution.Path).
			Msg("template resolved")
		return resolution
	}

	resolution.Path = absPath(provider.FallbackTemplate)
	resolution.Fallback = true
	log.Debug().
		Str("content_type", record.Type).
		Str("source", source).
		Str("version", version).
		Str("path", resolution.Path).
		Msg("template not found, using fallback")
	return resolution
}

// SourceName is the source a record asks for by itself: its raw variant
// field, or the provider's own source when the field is empty.
func SourceName(record types.Record, provider types.ProviderConfig) string {
	if record.Variant != "" {
		return record.Variant
	}
	return provider.Source
}

func absPath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

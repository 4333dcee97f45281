package core

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"content-templates/internal/ports"
	"content-templates/internal/types"
)

var validModes = map[types.Mode]struct{}{
	"":                      {},
	types.ModeRecord:        {},
	types.ModeConfiguration: {},
	types.ModePreselect:     {},
}

// ConfigReport lists problems that do not stop resolution but are worth
// surfacing to an operator.
type ConfigReport struct {
	Sources  []string
	Warnings []string
}

type ConfigCompiler struct {
	Fs         afero.Fs
	Settings   ports.SettingsPort
	Roots      ports.SourceRootsPort
	Candidates ports.VariantCandidatesPort
}

func NewConfigCompiler(fs afero.Fs, settings ports.SettingsPort, roots ports.SourceRootsPort, candidates ports.VariantCandidatesPort) ConfigCompiler {
	return ConfigCompiler{Fs: fs, Settings: settings, Roots: roots, Candidates: candidates}
}

// Validate checks the provider and defaults configuration. Resolution
// itself never fails on bad configuration; this is the place where such
// configuration is reported.
func (c ConfigCompiler) Validate(ctx context.Context) (ConfigReport, error) {
	provider := c.Settings.Provider()
	defaults := c.Settings.Defaults()
	assert.NotEmpty(ctx, provider.Table, "provider.table must be set")
	assert.NotEmpty(ctx, provider.Field, "provider.field must be set")

	if _, ok := validModes[defaults.Mode]; !ok {
		return ConfigReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown resolution mode: %s", defaults.Mode))
	}
	if strings.TrimSpace(provider.Source) == "" {
		return ConfigReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("provider.source must be set")
	}
	if strings.TrimSpace(provider.FallbackTemplate) == "" {
		return ConfigReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("provider.fallback_template must be set")
	}
	if !fileExists(c.Fs, absPath(provider.FallbackTemplate)) {
		return ConfigReport{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("fallback template not found: " + provider.FallbackTemplate)
	}
	if len(c.Roots.Roots(provider.Source)) == 0 {
		return ConfigReport{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("provider source has no template roots: " + provider.Source)
	}

	report := ConfigReport{Sources: c.referencedSources(provider, defaults)}
	for _, source := range report.Sources {
		roots := c.Roots.Roots(source)
		if len(roots) == 0 {
			report.Warnings = append(report.Warnings, fmt.Sprintf("source %s has no template roots", source))
			continue
		}
		for _, root := range roots {
			if !dirExists(c.Fs, root) {
				report.Warnings = append(report.Warnings, fmt.Sprintf("source %s root does not exist: %s", source, root))
			}
		}
	}
	for _, warning := range report.Warnings {
		log.Warn().Msg(warning)
	}
	return report, nil
}

// referencedSources lists every source named by the configuration, in
// first-seen order: provider, default variant, then variant candidates.
func (c ConfigCompiler) referencedSources(provider types.ProviderConfig, defaults types.Defaults) []string {
	seen := map[string]struct{}{}
	var sources []string
	add := func(name string) {
		if name == "" {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		sources = append(sources, name)
	}
	add(provider.Source)
	add(defaults.Variant)
	for _, contentType := range c.Candidates.ContentTypes() {
		for _, candidate := range c.Candidates.Candidates(contentType) {
			add(candidate)
		}
	}
	return sources
}

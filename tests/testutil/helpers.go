// Package testutil provides shared test helpers used across integration
// and e2e test packages.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"content-templates/internal/shared"
)

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// Sandbox is a temporary installation with one directory per template
// source and a fallback template under the core source.
type Sandbox struct {
	Dir      string
	Fallback string
}

// NewSandbox creates the directory roots for the given sources.
func NewSandbox(t *testing.T, sources ...string) Sandbox {
	t.Helper()
	dir := t.TempDir()
	for _, source := range sources {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, source), 0o755))
	}
	fallback := filepath.Join(dir, "core", "Templates", "Default.html")
	WriteFile(t, fallback, "<div>default</div>")
	return Sandbox{Dir: dir, Fallback: fallback}
}

// Root is the directory of a template source.
func (s Sandbox) Root(source string) string {
	return filepath.Join(s.Dir, source)
}

// Template writes a content type's template into a source. An empty
// version writes the base template.
func (s Sandbox) Template(t *testing.T, source string, contentType string, version string) string {
	t.Helper()
	name := shared.Capitalize(contentType)
	path := filepath.Join(s.Root(source), "CoreContent", name, version+".html")
	if version == "" {
		path = filepath.Join(s.Root(source), "CoreContent", name+".html")
	}
	WriteFile(t, path, "<div/>")
	return path
}

// Config renders a YAML configuration pointing every source at its
// sandbox directory.
func (s Sandbox) Config(mode string, variant string, version string, sources []string, variants map[string][]string) string {
	config := fmt.Sprintf(`provider:
  source: core
  fallback_template: %q
settings:
  defaults:
    mode: %q
    variant: %q
    version: %q
sources:
`, s.Fallback, mode, variant, version)
	for _, source := range sources {
		config += fmt.Sprintf("  %s: %q\n", source, s.Root(source))
	}
	if len(variants) > 0 {
		config += "variants:\n"
		for contentType, candidates := range variants {
			config += fmt.Sprintf("  %s:\n", contentType)
			for _, candidate := range candidates {
				config += fmt.Sprintf("    - %s\n", candidate)
			}
		}
	}
	return config
}

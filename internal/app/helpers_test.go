package app

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

const baseConfig = `
provider:
  source: core
  fallback_template: /srv/core/Templates/Default.html
settings:
  defaults:
    mode: configuration
    variant: base
    version: ""
sources:
  core: /srv/core
  base: /srv/base
  a: /srv/a
  b: /srv/b
  c: /srv/c
variants:
  menu: [a, b, c]
  text: [base, core]
`

func newTestService(t *testing.T, config string) (Service, afero.Fs, *viper.Viper) {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(config)))
	fs := afero.NewMemMapFs()
	service := NewService(v, fs)
	service.Clock = func() time.Time {
		return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	}
	return service, fs, v
}

func writeFile(t *testing.T, fs afero.Fs, path string, content string) {
	t.Helper()
	path = filepath.FromSlash(path)
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

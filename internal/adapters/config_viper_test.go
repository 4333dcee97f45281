package adapters

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content-templates/internal/types"
)

const sampleConfig = `
provider:
  source: fluidcontent_core
  fallback_template: /srv/core/Templates/Default.html
settings:
  defaults:
    mode: Record
    variant: base
    version: compact
  label: site
sources:
  fluidcontent_core: /srv/core
  base:
    - /srv/override
    - /srv/base
  empty: ""
variants:
  menu: [a, b, c]
  text:
    - base
`

func newSampleViper(t *testing.T, content string) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(content)))
	return v
}

func TestViperConfigAdapterDefaults(t *testing.T) {
	adapter := NewViperConfigAdapter(newSampleViper(t, sampleConfig))
	expected := types.Defaults{Mode: types.ModeRecord, Variant: "base", Version: "compact"}
	if diff := cmp.Diff(expected, adapter.Defaults()); diff != "" {
		t.Fatalf("unexpected defaults (-want +got):\n%s", diff)
	}
}

func TestViperConfigAdapterMissingModeMeansConfiguration(t *testing.T) {
	adapter := NewViperConfigAdapter(viper.New())
	assert.Equal(t, types.ModeConfiguration, adapter.Defaults().Mode)
	assert.Empty(t, adapter.Defaults().Variant)
}

func TestViperConfigAdapterReadsLiveValues(t *testing.T) {
	v := newSampleViper(t, sampleConfig)
	adapter := NewViperConfigAdapter(v)
	assert.Equal(t, "base", adapter.Defaults().Variant)
	v.Set("settings.defaults.variant", "fancy")
	assert.Equal(t, "fancy", adapter.Defaults().Variant)
}

func TestViperConfigAdapterProvider(t *testing.T) {
	adapter := NewViperConfigAdapter(newSampleViper(t, sampleConfig))
	expected := types.ProviderConfig{
		Source:           "fluidcontent_core",
		Table:            types.DefaultProviderTable,
		Field:            types.DefaultProviderField,
		FallbackTemplate: "/srv/core/Templates/Default.html",
	}
	if diff := cmp.Diff(expected, adapter.Provider()); diff != "" {
		t.Fatalf("unexpected provider (-want +got):\n%s", diff)
	}
}

func TestViperConfigAdapterRoots(t *testing.T) {
	adapter := NewViperConfigAdapter(newSampleViper(t, sampleConfig))
	assert.Equal(t, []string{"/srv/core"}, adapter.Roots("fluidcontent_core"))
	assert.Equal(t, []string{"/srv/override", "/srv/base"}, adapter.Roots("base"))
	assert.Equal(t, []string{"/srv/override", "/srv/base"}, adapter.Roots("BASE"))
	assert.Nil(t, adapter.Roots("empty"))
	assert.Nil(t, adapter.Roots("unknown"))
	assert.Nil(t, adapter.Roots(""))
}

func TestViperConfigAdapterCandidates(t *testing.T) {
	adapter := NewViperConfigAdapter(newSampleViper(t, sampleConfig))
	assert.Equal(t, []string{"a", "b", "c"}, adapter.Candidates("menu"))
	assert.Equal(t, []string{"base"}, adapter.Candidates("text"))
	assert.Nil(t, adapter.Candidates("image"))
	assert.Equal(t, []string{"menu", "text"}, adapter.ContentTypes())
}

func TestViperConfigAdapterSettings(t *testing.T) {
	adapter := NewViperConfigAdapter(newSampleViper(t, sampleConfig))
	settings := adapter.Settings()
	assert.Equal(t, "site", settings["label"])
	assert.Contains(t, settings, "defaults")
}

package adapters

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"content-templates/internal/types"
)

func TestDiscoveryIndexWriterAdapter_Write(t *testing.T) {
	fs := afero.NewMemMapFs()
	index := types.DiscoveryIndex{
		GeneratedAt: "2026-10-19T00:00:00Z",
		ContentTypes: map[string]map[string][]string{
			"menu": {"b": {"compact"}},
			"text": {"base": {}},
		},
	}
	require.NoError(t, NewDiscoveryIndexWriterAdapter(fs).Write("/out/nested/discovery.yaml", index))

	data, err := afero.ReadFile(fs, "/out/nested/discovery.yaml")
	require.NoError(t, err)
	var decoded types.DiscoveryIndex
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	if diff := cmp.Diff(index, decoded); diff != "" {
		t.Fatalf("unexpected index (-want +got):\n%s", diff)
	}
}

func TestDiscoveryIndexWriterAdapter_EmptyPath(t *testing.T) {
	err := NewDiscoveryIndexWriterAdapter(afero.NewMemMapFs()).Write(" ", types.DiscoveryIndex{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output path is required")
}

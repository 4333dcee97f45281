package core

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

type staticRoots map[string][]string

func (r staticRoots) Roots(source string) []string { return r[source] }

type staticCandidates map[string][]string

func (c staticCandidates) Candidates(contentType string) []string { return c[contentType] }

func (c staticCandidates) ContentTypes() []string {
	var types []string
	for contentType := range c {
		types = append(types, contentType)
	}
	return types
}

// countingFs counts the filesystem probes made through it.
type countingFs struct {
	afero.Fs
	stats atomic.Int64
	opens atomic.Int64
}

func newCountingFs(fs afero.Fs) *countingFs {
	return &countingFs{Fs: fs}
}

func (c *countingFs) Stat(name string) (os.FileInfo, error) {
	c.stats.Add(1)
	return c.Fs.Stat(name)
}

func (c *countingFs) Open(name string) (afero.File, error) {
	c.opens.Add(1)
	return c.Fs.Open(name)
}

func (c *countingFs) probes() int64 {
	return c.stats.Load() + c.opens.Load()
}

func writeTemplate(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	path = filepath.FromSlash(path)
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fs, path, []byte("<f:layout/>"), 0o644))
}

package adapters

import (
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"content-templates/internal/ports"
	"content-templates/internal/types"
)

type DiscoveryIndexWriterAdapter struct {
	Fs afero.Fs
}

func NewDiscoveryIndexWriterAdapter(fs afero.Fs) DiscoveryIndexWriterAdapter {
	return DiscoveryIndexWriterAdapter{Fs: fs}
}

func (a DiscoveryIndexWriterAdapter) Write(path string, index types.DiscoveryIndex) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is required")
	}
	data, err := yaml.Marshal(index)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal discovery index").
			WithCause(err)
	}
	if err := a.Fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create discovery index directory").
			WithCause(err)
	}
	if err := afero.WriteFile(a.Fs, path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write discovery index").
			WithCause(err)
	}
	return nil
}

var _ ports.DiscoveryIndexWriterPort = DiscoveryIndexWriterAdapter{}

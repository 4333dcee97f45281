package app

import (
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"content-templates/internal/adapters"
	"content-templates/internal/core"
	"content-templates/internal/ports"
)

type Service struct {
	Settings    ports.SettingsPort
	Roots       ports.SourceRootsPort
	Candidates  ports.VariantCandidatesPort
	Records     ports.RecordStorePort
	IndexWriter ports.DiscoveryIndexWriterPort
	Fs          afero.Fs
	Cache       *core.DiscoveryCache
	Clock       func() time.Time
}

// NewService wires the service to a viper configuration and a filesystem.
// The discovery cache lives as long as the returned service.
func NewService(cfg *viper.Viper, fs afero.Fs) Service {
	config := adapters.NewViperConfigAdapter(cfg)
	return Service{
		Settings:    config,
		Roots:       config,
		Candidates:  config,
		Records:     adapters.NewRecordFileAdapter(fs),
		IndexWriter: adapters.NewDiscoveryIndexWriterAdapter(fs),
		Fs:          fs,
		Cache:       core.NewDiscoveryCache(),
		Clock:       time.Now,
	}
}

func (s Service) locator() core.TemplateLocator {
	return core.NewTemplateLocator(s.Fs, s.Roots, s.Settings)
}

func (s Service) variantDiscovery() core.VariantDiscovery {
	return core.NewVariantDiscovery(s.Fs, s.Roots, s.Candidates, s.Cache)
}

func (s Service) versionDiscovery() core.VersionDiscovery {
	return core.NewVersionDiscovery(s.Fs, s.Roots, s.Cache)
}

func timeNow(clock func() time.Time) time.Time {
	if clock != nil {
		return clock().UTC()
	}
	return time.Now().UTC()
}

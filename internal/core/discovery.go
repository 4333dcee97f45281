package core

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"

	"content-templates/internal/ports"
)

// VariantDiscovery reports which configured candidate sources actually
// ship a template for a content type.
type VariantDiscovery struct {
	Fs         afero.Fs
	Roots      ports.SourceRootsPort
	Candidates ports.VariantCandidatesPort
	Cache      *DiscoveryCache
}

func NewVariantDiscovery(fs afero.Fs, roots ports.SourceRootsPort, candidates ports.VariantCandidatesPort, cache *DiscoveryCache) VariantDiscovery {
	return VariantDiscovery{Fs: fs, Roots: roots, Candidates: candidates, Cache: cache}
}

// VariantsForType keeps the configured candidate order and drops
// candidates without a base template for contentType.
func (d VariantDiscovery) VariantsForType(contentType string) []string {
	return d.Cache.Variants(contentType, func() []string {
		var found []string
		for _, candidate := range d.Candidates.Candidates(contentType) {
			if _, ok := firstExisting(d.Fs, d.Roots.Roots(candidate), contentType, ""); ok {
				found = append(found, candidate)
				continue
			}
			log.Debug().
				Str("content_type", contentType).
				Str("variant", candidate).
				Msg("variant candidate has no template")
		}
		return found
	})
}

// VersionDiscovery lists the named sub-templates of a content type within
// one variant.
type VersionDiscovery struct {
	Fs    afero.Fs
	Roots ports.SourceRootsPort
	Cache *DiscoveryCache
}

func NewVersionDiscovery(fs afero.Fs, roots ports.SourceRootsPort, cache *DiscoveryCache) VersionDiscovery {
	return VersionDiscovery{Fs: fs, Roots: roots, Cache: cache}
}

// VersionsForTypeAndVariant enumerates the version directory of the first
// root of variant that has one. Names come back in the order the
// filesystem lists them.
func (d VersionDiscovery) VersionsForTypeAndVariant(contentType string, variant string) []string {
	return d.Cache.Versions(contentType, variant, func() []string {
		for _, root := range d.Roots.Roots(variant) {
			dir := VersionDir(root, contentType)
			if !dirExists(d.Fs, dir) {
				continue
			}
			return listVersions(d.Fs, dir)
		}
		return nil
	})
}

func listVersions(fs afero.Fs, dir string) []string {
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		log.Debug().Err(err).Str("dir", dir).Msg("version directory unreadable")
		return nil
	}
	var versions []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if matched, _ := filepath.Match(versionFileGlob, entry.Name()); !matched {
			continue
		}
		versions = append(versions, strings.TrimSuffix(entry.Name(), templateSuffix))
	}
	return versions
}

func firstExisting(fs afero.Fs, roots []string, contentType string, version string) (string, bool) {
	for _, root := range roots {
		candidate := BuildPath(root, contentType, version)
		if fileExists(fs, candidate) {
			return candidate, true
		}
	}
	return "", false
}

func fileExists(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && !info.IsDir()
}

func dirExists(fs afero.Fs, path string) bool {
	info, err := fs.Stat(path)
	return err == nil && info.IsDir()
}

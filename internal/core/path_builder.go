package core

import (
	"path/filepath"

	"content-templates/internal/shared"
)

const (
	controllerDir   = "CoreContent"
	templateFormat  = "html"
	templateSuffix  = "." + templateFormat
	versionFileGlob = "*" + templateSuffix
)

// BuildPath returns the template file for a content type under root.
// Without a version the template sits next to the content type's version
// directory; with a version it lives inside that directory.
func BuildPath(root string, contentType string, version string) string {
	if version == "" {
		return filepath.Join(root, controllerDir, shared.Capitalize(contentType)+templateSuffix)
	}
	return filepath.Join(VersionDir(root, contentType), version+templateSuffix)
}

// VersionDir is the directory holding the versioned templates of a
// content type.
func VersionDir(root string, contentType string) string {
	return filepath.Join(root, controllerDir, shared.Capitalize(contentType))
}

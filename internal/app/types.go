package app

import "content-templates/internal/types"

type ResolveRequest struct {
	RecordPath string
}

type ResolveResult struct {
	ContentType string
	Resolution  types.Resolution
}

type VariantsRequest struct {
	ContentType string
}

type VariantsResult struct {
	ContentType string
	Variants    []string
}

type VersionsRequest struct {
	ContentType string
	Variant     string
}

type VersionsResult struct {
	ContentType string
	Variant     string
	Versions    []string
}

type PersistRequest struct {
	RecordPath string
	Operation  types.SaveOperation
	DryRun     bool
}

type PersistResult struct {
	Record  types.Record
	Mode    types.Mode
	Changed bool
	Written bool
}

type InspectRequest struct {
	RecordPath string
	Table      string
	Field      string
}

type InspectResult struct {
	ContentType      string
	ControllerAction string
	Triggered        bool
	MenuSection      string
	Variables        map[string]any
}

type DiscoverRequest struct {
	Output  string
	Workers int
}

type DiscoverResult struct {
	OutputPath   string
	ContentTypes int
	Variants     int
	Versions     int
}

type ValidateRequest struct{}

type ValidateResult struct {
	Sources  []string
	Warnings []string
}

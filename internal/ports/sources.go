package ports

// SourceRootsPort returns the ordered template root directories of a
// source. Unknown sources yield an empty list, never an error.
type SourceRootsPort interface {
	Roots(source string) []string
}

// VariantCandidatesPort lists, per content type, the sources that may
// provide a variant template for it.
type VariantCandidatesPort interface {
	Candidates(contentType string) []string
	ContentTypes() []string
}

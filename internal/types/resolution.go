package types

// Resolution is the outcome of locating a template for one record.
type Resolution struct {
	Path     string
	Source   string
	Variant  string
	Version  string
	Fallback bool
}

// DiscoveryIndex maps content type to variant to the versions found on
// disk for that pair.
type DiscoveryIndex struct {
	GeneratedAt  string                         `yaml:"generated_at"`
	ContentTypes map[string]map[string][]string `yaml:"content_types"`
}

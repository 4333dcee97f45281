package types

const (
	DefaultProviderTable = "tt_content"
	DefaultProviderField = "content_options"
)

// Defaults are the site-wide fallbacks applied when a record carries no
// variant or version of its own.
type Defaults struct {
	Mode    Mode   `yaml:"mode" mapstructure:"mode"`
	Variant string `yaml:"variant" mapstructure:"variant"`
	Version string `yaml:"version" mapstructure:"version"`
}

// IsRecordMode reports whether defaults are stamped into records at save
// time. An empty or unrecognised mode means configuration mode.
func (d Defaults) IsRecordMode() bool {
	return d.Mode == ModeRecord
}

// ProviderConfig describes the built-in provider: the source it renders
// from when a record names no variant, the table/field pair it handles and
// the template used when nothing else resolves.
type ProviderConfig struct {
	Source           string `yaml:"source" mapstructure:"source"`
	Table            string `yaml:"table" mapstructure:"table"`
	Field            string `yaml:"field" mapstructure:"field"`
	FallbackTemplate string `yaml:"fallback_template" mapstructure:"fallback_template"`
}

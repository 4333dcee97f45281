package core

import (
	"content-templates/internal/ports"
	"content-templates/internal/types"
)

// overrideField describes one axis of selection (variant or version):
// how to read it from a record, how to read its default and how to stamp
// it back into a record.
type overrideField struct {
	name     string
	record   func(types.Record) string
	fallback func(types.Defaults) string
	set      func(*types.Record, string)
}

var (
	variantField = overrideField{
		name:     types.FieldVariant,
		record:   func(r types.Record) string { return r.Variant },
		fallback: func(d types.Defaults) string { return d.Variant },
		set:      func(r *types.Record, value string) { r.Variant = value },
	}
	versionField = overrideField{
		name:     types.FieldVersion,
		record:   func(r types.Record) string { return r.Version },
		fallback: func(d types.Defaults) string { return d.Version },
		set:      func(r *types.Record, value string) { r.Version = value },
	}
	overrideFields = []overrideField{variantField, versionField}
)

type OverrideResolver struct {
	Settings ports.SettingsPort
}

func NewOverrideResolver(settings ports.SettingsPort) OverrideResolver {
	return OverrideResolver{Settings: settings}
}

func (r OverrideResolver) EffectiveVariant(record types.Record) string {
	return resolveOverride(r.Settings.Defaults(), record, variantField)
}

func (r OverrideResolver) EffectiveVersion(record types.Record) string {
	return resolveOverride(r.Settings.Defaults(), record, versionField)
}

// resolveOverride returns the record's own value unless resolution is
// transient (not record mode) and the record left the field empty. In
// record mode an empty field stays empty and selects the base template.
func resolveOverride(defaults types.Defaults, record types.Record, field overrideField) string {
	value := field.record(record)
	if !defaults.IsRecordMode() && value == "" {
		return field.fallback(defaults)
	}
	return value
}

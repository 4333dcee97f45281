package types

import "content-templates/internal/shared"

// Field names of a content record as stored by the record store.
const (
	FieldType    = "CType"
	FieldVariant = "content_variant"
	FieldVersion = "content_version"
	FieldPages   = "pages"
	FieldMenu    = "menu_type"
)

// Record is a typed view over a flat content record. Type, Variant and
// Version are lifted out of the raw map once at the boundary; every other
// field travels untouched in Fields.
type Record struct {
	Type    string
	Variant string
	Version string
	Fields  map[string]any
}

// Clone returns a deep-enough copy: the opaque field map is copied, its
// values are shared.
func (r Record) Clone() Record {
	clone := r
	if r.Fields != nil {
		clone.Fields = make(map[string]any, len(r.Fields))
		for key, value := range r.Fields {
			clone.Fields[key] = value
		}
	}
	return clone
}

// RecordFromMap builds the typed view of a raw record. The type, variant
// and version fields are removed from Fields.
func RecordFromMap(raw map[string]any) Record {
	record := Record{Fields: map[string]any{}}
	for key, value := range raw {
		switch key {
		case FieldType:
			record.Type = shared.FieldString(value)
		case FieldVariant:
			record.Variant = shared.FieldString(value)
		case FieldVersion:
			record.Version = shared.FieldString(value)
		default:
			record.Fields[key] = value
		}
	}
	return record
}

// ToMap flattens the record back into the store's representation. Empty
// variant and version fields are written as empty strings so the store
// keeps the column.
func (r Record) ToMap() map[string]any {
	raw := make(map[string]any, len(r.Fields)+3)
	for key, value := range r.Fields {
		raw[key] = value
	}
	raw[FieldType] = r.Type
	raw[FieldVariant] = r.Variant
	raw[FieldVersion] = r.Version
	return raw
}

// Field returns an opaque field as a string.
func (r Record) Field(name string) string {
	return shared.FieldString(r.Fields[name])
}

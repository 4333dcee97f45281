package core

import (
	"github.com/rs/zerolog/log"

	"content-templates/internal/ports"
	"content-templates/internal/types"
)

// WriteBackController bakes the configured defaults into records before
// they are persisted, when record mode is active.
type WriteBackController struct {
	Settings ports.SettingsPort
}

func NewWriteBackController(settings ports.SettingsPort) WriteBackController {
	return WriteBackController{Settings: settings}
}

// Apply returns a copy of record with empty variant and version fields set
// to the defaults. The input record is never modified. The boolean reports
// whether the copy differs from the input; in configuration mode it is
// always false.
func (w WriteBackController) Apply(operation types.SaveOperation, record types.Record) (types.Record, bool) {
	defaults := w.Settings.Defaults()
	updated := record.Clone()
	if !defaults.IsRecordMode() {
		return updated, false
	}
	changed := false
	for _, field := range overrideFields {
		if field.record(updated) != "" {
			continue
		}
		value := field.fallback(defaults)
		if value == "" {
			continue
		}
		field.set(&updated, value)
		changed = true
		log.Debug().
			Str("operation", string(operation)).
			Str("field", field.name).
			Str("value", value).
			Msg("default stamped into record")
	}
	return updated, changed
}

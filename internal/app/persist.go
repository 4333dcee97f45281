package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"content-templates/internal/core"
	"content-templates/internal/types"
)

// Persist runs the save-time write-back on a stored record and writes the
// record back when defaults were stamped into it.
func (s Service) Persist(_ context.Context, req PersistRequest) (PersistResult, error) {
	recordPath := strings.TrimSpace(req.RecordPath)
	if recordPath == "" {
		return PersistResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("record path is required")
	}
	operation, err := normalizeOperation(req.Operation)
	if err != nil {
		return PersistResult{}, err
	}
	record, err := s.Records.Load(recordPath)
	if err != nil {
		return PersistResult{}, err
	}
	controller := core.NewWriteBackController(s.Settings)
	updated, changed := controller.Apply(operation, record)
	result := PersistResult{
		Record:  updated,
		Mode:    s.Settings.Defaults().Mode,
		Changed: changed,
	}
	if !changed || req.DryRun {
		return result, nil
	}
	if err := s.Records.Save(recordPath, updated); err != nil {
		return PersistResult{}, err
	}
	result.Written = true
	log.Info().
		Str("record", recordPath).
		Str("operation", string(operation)).
		Str("variant", updated.Variant).
		Str("version", updated.Version).
		Msg("record defaults persisted")
	return result, nil
}

func normalizeOperation(operation types.SaveOperation) (types.SaveOperation, error) {
	switch types.SaveOperation(strings.ToLower(strings.TrimSpace(string(operation)))) {
	case "", types.SaveOperationUpdate:
		return types.SaveOperationUpdate, nil
	case types.SaveOperationNew:
		return types.SaveOperationNew, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported save operation: %s", operation))
	}
}

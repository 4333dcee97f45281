package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"content-templates/internal/core"
	"content-templates/internal/types"
)

func (s Service) Inspect(_ context.Context, req InspectRequest) (InspectResult, error) {
	recordPath := strings.TrimSpace(req.RecordPath)
	if recordPath == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("record path is required")
	}
	record, err := s.Records.Load(recordPath)
	if err != nil {
		return InspectResult{}, err
	}
	provider := core.NewProvider(s.Settings.Provider())
	table := strings.TrimSpace(req.Table)
	if table == "" {
		table = provider.Config.Table
	}
	result := InspectResult{
		ContentType:      record.Type,
		ControllerAction: core.ControllerAction(record),
		Triggered:        provider.Triggers(table, strings.TrimSpace(req.Field)),
		Variables:        core.TemplateVariables(record, s.Settings.Settings()),
	}
	if record.Type == core.ContentTypeMenu {
		result.MenuSection, _ = core.MenuSectionName(record.Field(types.FieldMenu))
	}
	return result, nil
}

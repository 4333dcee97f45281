package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

func (s Service) Resolve(_ context.Context, req ResolveRequest) (ResolveResult, error) {
	recordPath := strings.TrimSpace(req.RecordPath)
	if recordPath == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("record path is required")
	}
	record, err := s.Records.Load(recordPath)
	if err != nil {
		return ResolveResult{}, err
	}
	return ResolveResult{
		ContentType: record.Type,
		Resolution:  s.locator().Resolve(record),
	}, nil
}

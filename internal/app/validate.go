package app

import (
	"context"

	"content-templates/internal/core"
)

func (s Service) Validate(ctx context.Context, _ ValidateRequest) (ValidateResult, error) {
	compiler := core.NewConfigCompiler(s.Fs, s.Settings, s.Roots, s.Candidates)
	report, err := compiler.Validate(ctx)
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{
		Sources:  report.Sources,
		Warnings: report.Warnings,
	}, nil
}

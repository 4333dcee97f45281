package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"content-templates/internal/app"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate provider, defaults and source configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd.Context())
		},
	}
}

func runValidate(ctx context.Context) error {
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{})
	if err != nil {
		return err
	}
	fmt.Printf("validated sources: %s\n", strings.Join(result.Sources, ", "))
	for _, warning := range result.Warnings {
		fmt.Printf("warning: %s\n", warning)
	}
	return nil
}

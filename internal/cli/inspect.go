package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"content-templates/internal/app"
)

type inspectOptions struct {
	Record string
	Table  string
	Field  string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Inspect the controller action and template variables of a record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Record, "record", "", "Record file (YAML or TOML)")
	cmd.Flags().StringVar(&opts.Table, "table", "", "Table the record belongs to (defaults to the provider table)")
	cmd.Flags().StringVar(&opts.Field, "field", "", "Field being rendered (empty for the whole record)")
	_ = viper.BindPFlag("record", cmd.Flags().Lookup("record"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		RecordPath: resolveString(cmd, opts.Record, "record", "record"),
		Table:      opts.Table,
		Field:      opts.Field,
	})
	if err != nil {
		return err
	}
	fmt.Printf("type: %s\n", result.ContentType)
	fmt.Printf("controller action: %s\n", result.ControllerAction)
	fmt.Printf("handled by provider: %t\n", result.Triggered)
	if result.MenuSection != "" {
		fmt.Printf("menu section: %s\n", result.MenuSection)
	}
	names := make([]string, 0, len(result.Variables))
	for name := range result.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println("template variables:")
	for _, name := range names {
		fmt.Printf("- %s: %v\n", name, result.Variables[name])
	}
	return nil
}

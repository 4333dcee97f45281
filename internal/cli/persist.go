package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"content-templates/internal/app"
	"content-templates/internal/types"
)

type persistOptions struct {
	Record    string
	Operation string
	DryRun    bool
}

func newPersistCommand() *cobra.Command {
	opts := persistOptions{}
	cmd := &cobra.Command{
		Use:   "persist",
		Short: "Apply save-time defaults to a record file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPersist(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Record, "record", "", "Record file (YAML or TOML)")
	cmd.Flags().StringVar(&opts.Operation, "operation", string(types.SaveOperationUpdate), "Save operation (new or update)")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Report changes without writing the record")
	_ = viper.BindPFlag("record", cmd.Flags().Lookup("record"))
	_ = viper.BindPFlag("operation", cmd.Flags().Lookup("operation"))
	_ = viper.BindPFlag("dry_run", cmd.Flags().Lookup("dry-run"))
	return cmd
}

func runPersist(ctx context.Context, cmd *cobra.Command, opts persistOptions) error {
	service := newAppService()
	result, err := service.Persist(ctx, app.PersistRequest{
		RecordPath: resolveString(cmd, opts.Record, "record", "record"),
		Operation:  types.SaveOperation(resolveString(cmd, opts.Operation, "operation", "operation")),
		DryRun:     resolveBool(cmd, opts.DryRun, "dry_run", "dry-run"),
	})
	if err != nil {
		return err
	}
	if !result.Changed {
		fmt.Printf("unchanged (mode=%s)\n", result.Mode)
		return nil
	}
	fmt.Printf("variant=%s version=%s written=%t\n", result.Record.Variant, result.Record.Version, result.Written)
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"content-templates/internal/app"
)

type resolveOptions struct {
	Record string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve the template file that renders a record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Record, "record", "", "Record file (YAML or TOML)")
	_ = viper.BindPFlag("record", cmd.Flags().Lookup("record"))
	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	result, err := service.Resolve(ctx, app.ResolveRequest{
		RecordPath: resolveString(cmd, opts.Record, "record", "record"),
	})
	if err != nil {
		return err
	}
	resolution := result.Resolution
	fmt.Println(resolution.Path)
	fmt.Printf("type=%s source=%s variant=%s version=%s fallback=%t\n",
		result.ContentType, resolution.Source, resolution.Variant, resolution.Version, resolution.Fallback)
	return nil
}

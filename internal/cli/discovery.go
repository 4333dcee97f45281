package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"content-templates/internal/app"
)

type variantsOptions struct {
	ContentType string
}

func newVariantsCommand() *cobra.Command {
	opts := variantsOptions{}
	cmd := &cobra.Command{
		Use:   "variants",
		Short: "List the variants that provide a template for a content type",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVariants(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.ContentType, "type", "", "Content type")
	_ = viper.BindPFlag("type", cmd.Flags().Lookup("type"))
	return cmd
}

func runVariants(ctx context.Context, cmd *cobra.Command, opts variantsOptions) error {
	service := newAppService()
	result, err := service.Variants(ctx, app.VariantsRequest{
		ContentType: resolveString(cmd, opts.ContentType, "type", "type"),
	})
	if err != nil {
		return err
	}
	for _, variant := range result.Variants {
		fmt.Println(variant)
	}
	return nil
}

type versionsOptions struct {
	ContentType string
	Variant     string
}

func newVersionsCommand() *cobra.Command {
	opts := versionsOptions{}
	cmd := &cobra.Command{
		Use:   "versions",
		Short: "List the versions of a content type within a variant",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVersions(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.ContentType, "type", "", "Content type")
	cmd.Flags().StringVar(&opts.Variant, "variant", "", "Variant (defaults to the configured default variant)")
	_ = viper.BindPFlag("type", cmd.Flags().Lookup("type"))
	_ = viper.BindPFlag("variant", cmd.Flags().Lookup("variant"))
	return cmd
}

func runVersions(ctx context.Context, cmd *cobra.Command, opts versionsOptions) error {
	service := newAppService()
	result, err := service.Versions(ctx, app.VersionsRequest{
		ContentType: resolveString(cmd, opts.ContentType, "type", "type"),
		Variant:     resolveString(cmd, opts.Variant, "variant", "variant"),
	})
	if err != nil {
		return err
	}
	for _, version := range result.Versions {
		fmt.Println(version)
	}
	return nil
}

type discoverOptions struct {
	Output  string
	Workers int
}

func newDiscoverCommand() *cobra.Command {
	opts := discoverOptions{}
	cmd := &cobra.Command{
		Use:   "discover",
		Short: "Discover variants and versions for every configured content type",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDiscover(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Output, "output", "discovery.yaml", "Output path for the discovery index YAML")
	cmd.Flags().IntVar(&opts.Workers, "workers", 4, "Concurrent discovery workers (0 = default)")
	_ = viper.BindPFlag("discover_output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("discover_workers", cmd.Flags().Lookup("workers"))
	return cmd
}

func runDiscover(ctx context.Context, cmd *cobra.Command, opts discoverOptions) error {
	service := newAppService()
	result, err := service.Discover(ctx, app.DiscoverRequest{
		Output:  resolveString(cmd, opts.Output, "discover_output", "output"),
		Workers: resolveInt(cmd, opts.Workers, "discover_workers", "workers"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("discovery index: %s (content types: %d, variants: %d, versions: %d)\n",
		result.OutputPath, result.ContentTypes, result.Variants, result.Versions)
	return nil
}

package main

import (
	"context"
	"log/slog"

	"khitma/config"
	"khitma/internal/domain/repository"
	"khitma/internal/errors"
	"khitma/internal/infra/catalog"
	"khitma/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func versesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verses",
		Short: "Manage the motivational verse catalog",
	}
	cmd.AddCommand(versesImportCmd())

	return cmd
}

func versesImportCmd() *cobra.Command {
	var (
		source string
		key    string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load a JSON verse catalog from a bucket and upsert it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				cfg    *config.Config
				logger *slog.Logger
			)
			options := fx.Options()
			var verseRepo repository.VerseRepository
			targets := []any{&cfg, &logger}
			if !dryRun {
				options = postgres.Module
				targets = append(targets, &verseRepo)
			}

			return runApp(cmd.Context(), options, func(ctx context.Context) error {
				if source == "" && cfg.Catalog != nil {
					source = cfg.Catalog.Source
				}
				if key == "" && cfg.Catalog != nil {
					key = cfg.Catalog.Key
				}
				if source == "" || key == "" {
					return errors.New("--source and --key are required when catalog is not configured")
				}

				result, err := catalog.NewImporter(verseRepo, logger).Import(ctx, source, key, dryRun)
				if err != nil {
					return err
				}

				return printJSON(cmd.OutOrStdout(), result)
			}, targets...)
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "Bucket URL (file://, gs://, mem://); defaults to catalog.source")
	cmd.Flags().StringVar(&key, "key", "", "Object key of the catalog; defaults to catalog.key")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the catalog without writing")

	return cmd
}

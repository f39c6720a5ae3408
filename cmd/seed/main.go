package main

import (
	"context"
	"fmt"
	"os"

	"natours/config"
	"natours/internal/infra/auth"
	logs "natours/internal/infra/log"
	"natours/internal/infra/persistence/postgres"
	"natours/internal/usecase"
	"natours/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const defaultDataDir = "dev-data"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dir string

	root := &cobra.Command{
		Use:           "seed",
		Short:         "Load, wipe or generate development data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dir, "dir", defaultDataDir, "Directory holding users.json, tours.json and reviews.json")

	root.AddCommand(
		newImportCmd(&dir),
		newDeleteCmd(),
		newGenerateCmd(&dir),
	)

	return root
}

func newImportCmd(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Import the dataset in --dir into the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := readDataset(*dir)
			if err != nil {
				return err
			}

			return withDataUsecase(cmd.Context(), func(ctx context.Context, uc usecase.DataUsecase) error {
				return uc.Import(ctx, data)
			})
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete every tour, user, review and booking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDataUsecase(cmd.Context(), func(ctx context.Context, uc usecase.DataUsecase) error {
				return uc.DeleteAll(ctx)
			})
		},
	}
}

func newGenerateCmd(dir *string) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random dataset into --dir",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			data, err := generateDataset(opts)
			if err != nil {
				return err
			}
			if err := writeDataset(*dir, data); err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Wrote %d users, %d tours and %d reviews to %s\n",
				len(data.Users), len(data.Tours), len(data.Reviews), *dir)

			return nil
		},
	}
	cmd.Flags().IntVar(&opts.Users, "users", 20, "Number of regular users")
	cmd.Flags().IntVar(&opts.Guides, "guides", 6, "Number of guides and lead guides")
	cmd.Flags().IntVar(&opts.Tours, "tours", 9, "Number of tours")
	cmd.Flags().IntVar(&opts.ReviewsPerTour, "reviews-per-tour", 5, "Reviews written for each tour")
	cmd.Flags().StringVar(&opts.Password, "password", "test1234", "Password of every generated user")

	return cmd
}

// withDataUsecase starts just enough of the application to reach the database,
// runs fn and stops the application again.
func withDataUsecase(ctx context.Context, fn func(context.Context, usecase.DataUsecase) error) error {
	var uc usecase.DataUsecase

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewTransactionManager,
			auth.NewBcryptHasher,
			impl.NewDataService,
		),
		fx.Populate(&uc),
	)

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start")
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to stop: %v\n", err)
		}
	}()

	return fn(ctx, uc)
}

// Package cli wires the movieloader command line to the loader pipeline.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	postgres "github.com/heartmarshall/movieloader/internal/adapter/postgres"
	"github.com/heartmarshall/movieloader/internal/adapter/postgres/director"
	"github.com/heartmarshall/movieloader/internal/adapter/postgres/genre"
	"github.com/heartmarshall/movieloader/internal/adapter/postgres/movie"
	"github.com/heartmarshall/movieloader/internal/adapter/postgres/schema"
	"github.com/heartmarshall/movieloader/internal/app"
	"github.com/heartmarshall/movieloader/internal/app/loader"
	"github.com/heartmarshall/movieloader/internal/config"
	"github.com/heartmarshall/movieloader/internal/sheet"
	"github.com/heartmarshall/movieloader/pkg/ctxutil"
)

// Compile-time interface assertions.
var (
	_ loader.TxManager    = (*postgres.TxManager)(nil)
	_ loader.SchemaRepo   = (*schema.Repo)(nil)
	_ loader.DirectorRepo = (*director.Repo)(nil)
	_ loader.GenreRepo    = (*genre.Repo)(nil)
	_ loader.MovieRepo    = (*movie.Repo)(nil)
)

type loadFlags struct {
	configPath string
	file       string
	database   string
	sheet      string
	skipRows   int
	dryRun     bool
}

// NewRootCmd builds the movieloader command tree.
func NewRootCmd() *cobra.Command {
	var flags loadFlags

	cmd := &cobra.Command{
		Use:   "movieloader",
		Short: "Load a movie spreadsheet into PostgreSQL",
		Long: `movieloader drops and recreates the movie, director, genre, movie_director
and movie_genre tables, then loads them from a spreadsheet (.xls, .xlsx or .csv).

Directors and genres are inserted once per distinct name. The first rows of
the sheet (4 by default) are skipped; the next row holds the column labels.

Exit Codes:
  0  - Success
  1  - Configuration, spreadsheet or database error`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLoad(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.configPath, "config", "", "path to YAML config (default: $CONFIG_PATH or ./config.yaml)")
	f.StringVarP(&flags.file, "file", "f", "", "spreadsheet to load (default movie_list.xls)")
	f.StringVarP(&flags.database, "database", "d", "", "database name, overrides the DSN (default university)")
	f.StringVar(&flags.sheet, "sheet", "", "sheet name for .xls/.xlsx (default: first sheet)")
	f.IntVar(&flags.skipRows, "skip-rows", 4, "leading rows to skip before the header row")
	f.BoolVar(&flags.dryRun, "dry-run", false, "read the spreadsheet and print the summary without touching the database")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the root command and logs a failure.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		slog.Error("movieloader failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// applyFlags copies explicitly set flags over the loaded configuration.
func applyFlags(cmd *cobra.Command, flags loadFlags, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("file") {
		cfg.Loader.File = flags.file
	}
	if changed("sheet") {
		cfg.Loader.Sheet = flags.sheet
	}
	if changed("skip-rows") {
		cfg.Loader.SkipRows = flags.skipRows
	}
	if changed("dry-run") {
		cfg.Loader.DryRun = flags.dryRun
	}
}

func runLoad(cmd *cobra.Command, flags loadFlags) error {
	cfg, err := config.LoadPath(flags.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, flags, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := app.NewLogger(cmd.ErrOrStderr(), cfg.Log)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.Loader.Timeout)
	defer cancel()

	runID := uuid.New()
	ctx = ctxutil.WithRunID(ctx, runID)
	logger.Info("movieloader starting",
		slog.String("version", app.Version),
		slog.String("run_id", runID.String()),
		slog.String("file", cfg.Loader.File),
		slog.Bool("dry_run", cfg.Loader.DryRun),
	)

	table, err := sheet.Read(cfg.Loader.File, sheet.Options{
		Sheet:    cfg.Loader.Sheet,
		SkipRows: cfg.Loader.SkipRows,
	})
	if err != nil {
		return fmt.Errorf("read spreadsheet: %w", err)
	}

	if cfg.Loader.DryRun {
		logger.Info("dry run: database untouched", slog.Int("rows", table.Len()))
		return loader.Preview(table).Print(cmd.OutOrStdout())
	}

	conn, err := postgres.Open(ctx, cfg.Database, flags.database)
	if err != nil {
		return err
	}
	defer func() {
		if err := postgres.Close(context.Background(), conn); err != nil {
			logger.Warn("close database", slog.String("error", err.Error()))
		}
	}()

	pipeline := loader.NewPipeline(logger, loader.Deps{
		Tx:        postgres.NewTxManager(conn),
		Schema:    schema.New(conn),
		Directors: director.New(conn),
		Genres:    genre.New(conn),
		Movies:    movie.New(conn),
	})

	summary, err := pipeline.Run(ctx, table)
	if err != nil {
		return err
	}
	return summary.Print(cmd.OutOrStdout())
}

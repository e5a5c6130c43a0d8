package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/alimgiray/gfolio/internal/app"
	"github.com/alimgiray/gfolio/internal/browse"
	"github.com/alimgiray/gfolio/internal/clipboard"
	"github.com/alimgiray/gfolio/internal/models"
	"github.com/alimgiray/gfolio/internal/render"
	"github.com/alimgiray/gfolio/internal/services"
	"github.com/alimgiray/gfolio/pkg/config"
	"github.com/alimgiray/gfolio/pkg/logger"
)

type globalFlags struct {
	username        string
	includeForks    bool
	includeArchived bool
	cacheDriver     string
	logLevel        string
}

type filterFlags struct {
	query    string
	language string
	sort     string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "Search name and description")
	cmd.Flags().StringVarP(&f.language, "language", "l", "", "Only show this language")
	cmd.Flags().StringVarP(&f.sort, "sort", "s", string(models.SortByRecency), "pushed_at, stargazers_count or name")
}

func (f *filterFlags) state() (models.FilterState, error) {
	key, ok := models.ParseSortKey(f.sort)
	if !ok {
		return models.FilterState{}, fmt.Errorf("unknown sort key %q", f.sort)
	}
	return models.FilterState{Query: f.query, Language: f.language, Sort: key}, nil
}

func main() {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "folio",
		Short:         "Render a GitHub portfolio in the terminal or as static files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flags.username, "user", "u", "", "GitHub username (default $GITHUB_USERNAME)")
	root.PersistentFlags().BoolVar(&flags.includeForks, "forks", false, "Include forked repositories")
	root.PersistentFlags().BoolVar(&flags.includeArchived, "archived", false, "Include archived repositories")
	root.PersistentFlags().StringVar(&flags.cacheDriver, "cache", "", "Cache driver: memory or sqlite (default $CACHE_DRIVER)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (default $LOG_LEVEL)")

	root.AddCommand(reposCmd(flags), buildCmd(flags), exportCmd(flags), browseCmd(flags))

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup loads configuration, applies flag overrides and builds the app.
// Logs go to stderr so they never mix with command output.
func setup(cmd *cobra.Command, flags *globalFlags) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if flags.username != "" {
		cfg.Portfolio.Username = flags.username
	}
	if cmd.Flags().Changed("forks") {
		cfg.Portfolio.IncludeForks = flags.includeForks
	}
	if cmd.Flags().Changed("archived") {
		cfg.Portfolio.IncludeArchived = flags.includeArchived
	}
	if flags.cacheDriver != "" {
		cfg.Cache.Driver = flags.cacheDriver
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}

	logger.Init(cfg.Log.Level, "text")
	logger.SetOutput(os.Stderr)

	return app.New(cfg)
}

func reposCmd(flags *globalFlags) *cobra.Command {
	var filter filterFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "repos",
		Short: "List repositories after search, language filter and sort",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := filter.state()
			if err != nil {
				return err
			}
			a, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			defer a.Close()

			snapshot := a.Portfolio.Load(cmd.Context())
			if snapshot.RepositoriesErr != nil {
				return snapshot.RepositoriesErr
			}

			repos := services.ApplyFilter(snapshot.Repositories, state)
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(repos)
			}
			return render.WriteCardTable(cmd.OutOrStdout(), render.BuildCards(repos))
		},
	}
	filter.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	return cmd
}

func buildCmd(flags *globalFlags) *cobra.Command {
	var filter filterFlags
	var output string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Write the portfolio as a static HTML page",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := filter.state()
			if err != nil {
				return err
			}
			a, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			defer a.Close()

			snapshot := a.Portfolio.Load(cmd.Context())
			doc := render.NewDocument()
			a.Portfolio.Paint(snapshot, state, doc, time.Now().Year())

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := render.WritePage(f, doc); err != nil {
				return fmt.Errorf("failed to render page: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}
	filter.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "index.html", "Output file")
	return cmd
}

func exportCmd(flags *globalFlags) *cobra.Command {
	var filter filterFlags
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the repository list as an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := filter.state()
			if err != nil {
				return err
			}
			a, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			defer a.Close()

			snapshot := a.Portfolio.Load(cmd.Context())
			if snapshot.RepositoriesErr != nil {
				return snapshot.RepositoriesErr
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := a.Export.WriteXLSX(f, services.ApplyFilter(snapshot.Repositories, state)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}
	filter.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "projects.xlsx", "Output file")
	return cmd
}

func browseCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the portfolio interactively; type to search, :help for commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd, flags)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			snapshot := a.Portfolio.Load(ctx)
			err = browse.Run(ctx, a.Portfolio, snapshot, cmd.InOrStdin(), cmd.OutOrStdout(), browse.Options{
				Year:   time.Now().Year(),
				Copier: clipboard.NewSystemCopier(os.Stdout),
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/paulfryers/coronavirus-dashboard/internal/config"
	"github.com/paulfryers/coronavirus-dashboard/internal/dataset"
	"github.com/paulfryers/coronavirus-dashboard/internal/domain"
	"github.com/paulfryers/coronavirus-dashboard/internal/logging"
	"github.com/paulfryers/coronavirus-dashboard/internal/ui/state"
)

// options holds the global flags.
type options struct {
	configPath string
	data       string
	overview   string
	countries  string
	regions    string
	utlas      string
	tab        string
	breakpoint int
	logFile    string
	noWatch    bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "coviddash",
		Short: "Terminal dashboard of UK coronavirus (COVID-19) figures",
		Long: `coviddash shows the UK headline figures, a table and tile map of
countries, regions and upper tier local authorities, and the case and
death time series.

The data is a JSON document on disk or at an http(s) URL, either one
combined file (--data) or four split documents (--overview, --countries,
--regions, --utlas). Local files are watched and reloaded on change.

When stdout is not a terminal the summary tables are printed instead.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			if !isTerminal(os.Stdout) {
				return runSummary(cmd, cfg, summaryFlags{width: 100})
			}
			return runDashboard(cmd.Context(), cfg, opts)
		},
	}

	bindFlags(root, opts)

	root.AddCommand(newSummaryCmd(opts))
	root.AddCommand(newExportCmd(opts))
	return root
}

// bindFlags registers the global flags on cmd.
func bindFlags(cmd *cobra.Command, opts *options) {
	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default: user config dir)")
	flags.StringVarP(&opts.data, "data", "d", "", "combined dataset file or URL")
	flags.StringVar(&opts.overview, "overview", "", "overview document (split sources)")
	flags.StringVar(&opts.countries, "countries", "", "countries document (split sources)")
	flags.StringVar(&opts.regions, "regions", "", "regions document (split sources)")
	flags.StringVar(&opts.utlas, "utlas", "", "upper tier local authorities document (split sources)")
	flags.StringVarP(&opts.tab, "tab", "t", "", "initial tab: countries, regions or local-authorities")
	flags.IntVar(&opts.breakpoint, "breakpoint", 0, "terminal width below which the mobile layout is used")
	flags.StringVar(&opts.logFile, "log-file", "", "log file (empty string from config disables logging)")
	flags.BoolVar(&opts.noWatch, "no-watch", false, "do not reload when the data file changes")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	// A missing file yields the defaults
	cfg, err := configService(opts).Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Data.Source = opts.data
	}
	if flags.Changed("overview") {
		cfg.Data.Overview = opts.overview
	}
	if flags.Changed("countries") {
		cfg.Data.Countries = opts.countries
	}
	if flags.Changed("regions") {
		cfg.Data.Regions = opts.regions
	}
	if flags.Changed("utlas") {
		cfg.Data.Utlas = opts.utlas
	}
	if flags.Changed("tab") {
		tab, ok := state.ParseTab(opts.tab)
		if !ok {
			return nil, fmt.Errorf("unknown tab %q: want countries, regions or local-authorities", opts.tab)
		}
		cfg.UISettings.DefaultTab = tab.ID()
	}
	if flags.Changed("breakpoint") {
		if opts.breakpoint <= 0 {
			return nil, fmt.Errorf("breakpoint must be positive, got %d", opts.breakpoint)
		}
		cfg.UISettings.Breakpoint = opts.breakpoint
	}
	if flags.Changed("log-file") {
		cfg.LogFile = opts.logFile
	}
	if opts.noWatch {
		cfg.Data.Watch = false
	}
	return cfg, nil
}

func configService(opts *options) config.ConfigService {
	if opts.configPath != "" {
		return config.NewConfigServiceAt(opts.configPath, nil)
	}
	return config.NewConfigService()
}

func newLogger(cfg *config.Config, opts *options) *zap.Logger {
	logger, err := logging.New(logging.Options{File: cfg.LogFile, Verbose: opts.verbose})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
		return zap.NewNop()
	}
	return logger
}

func sourceFromConfig(cfg *config.Config) dataset.Source {
	return dataset.Source{
		Path:      cfg.Data.Source,
		Overview:  cfg.Data.Overview,
		Countries: cfg.Data.Countries,
		Regions:   cfg.Data.Regions,
		Utlas:     cfg.Data.Utlas,
	}
}

func newLoader(cfg *config.Config) *dataset.Loader {
	return dataset.NewLoader(&http.Client{Timeout: time.Duration(cfg.Data.TimeoutSeconds) * time.Second})
}

// loadOnce loads the dataset synchronously for the non-interactive commands.
func loadOnce(ctx context.Context, cfg *config.Config) (*domain.Dataset, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Data.TimeoutSeconds)*time.Second)
	defer cancel()

	src := sourceFromConfig(cfg)
	loader := newLoader(cfg)
	if src.Split() {
		return loader.LoadSplit(ctx, src.Overview, src.Countries, src.Regions, src.Utlas)
	}
	return loader.Load(ctx, src.Path)
}

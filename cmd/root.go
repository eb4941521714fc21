package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/eventorkit/config"
	"github.com/s0up4200/eventorkit/eventor"
	"github.com/s0up4200/eventorkit/filter"
)

// skipConfig marks commands that run without a configuration or API key.
const skipConfig = "skip-config"

var skipConfigAnnotations = map[string]string{skipConfig: "true"}

var (
	cfgFile       string
	outputFormat  string
	cfg           *config.Config
	logger        zerolog.Logger
	client        *eventor.Client
	filterManager *filter.Manager

	// Shared list command flags
	filterExpr string
	preset     string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "eventorkit",
	Short: "Query the Eventor orienteering API from the command line",
	Long: `eventorkit is a CLI for the Eventor web API of the Swedish orienteering
federation. It fetches events, organisations, entries, start lists and results
and prints them as JSON or YAML.`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "output format: json or yaml (overrides config)")
}

// addFilterFlags registers --filter and --preset on a list command
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to each record")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

// initializeApp loads the configuration and creates the Eventor client
func initializeApp(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[skipConfig] == "true" {
		logger = setupLogger(config.LoggingConfig{Level: "info", Format: "console", Color: true})
		cfg = &config.Config{Output: config.OutputConfig{Format: "json", Indent: 2}}
		return applyOutputFlag()
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	if err := applyOutputFlag(); err != nil {
		return err
	}

	client, err = eventor.NewClient(cfg.Eventor.APIKey, logger,
		eventor.WithBaseURL(cfg.Eventor.URL),
		eventor.WithTimeout(cfg.Eventor.Timeout),
		eventor.WithUserAgent(cfg.Eventor.UserAgent),
	)
	if err != nil {
		return fmt.Errorf("failed to create Eventor client: %w", err)
	}

	filterManager = filter.NewManager()
	if err := filterManager.RegisterFilters(cfg.PresetExpressions()); err != nil {
		return fmt.Errorf("failed to load filter presets: %w", err)
	}

	logger.Debug().Str("url", client.BaseURL()).Msg("Eventor client ready")

	return nil
}

// applyOutputFlag lets --output override the configured format
func applyOutputFlag() error {
	if outputFormat == "" {
		return nil
	}
	if outputFormat != "json" && outputFormat != "yaml" {
		return fmt.Errorf("invalid output format: %s (must be 'json' or 'yaml')", outputFormat)
	}
	cfg.Output.Format = outputFormat
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Colour only when stderr is a terminal
	fd := os.Stderr.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !tty,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// applyFilter narrows records with --filter or --preset
func applyFilter(ctx context.Context, records []eventor.Node) ([]eventor.Node, error) {
	return applyFilterWithDefault(ctx, records, "")
}

// applyFilterWithDefault falls back to fallback when neither --filter nor
// --preset is given
func applyFilterWithDefault(ctx context.Context, records []eventor.Node, fallback string) ([]eventor.Node, error) {
	f, err := filterManager.Resolve(filterExpr, preset, fallback)
	if err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	if f == nil {
		return records, nil
	}

	matches, err := filterManager.Apply(ctx, f, records)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("filter", f.Expression()).
		Int("records", len(records)).
		Int("matches", len(matches)).
		Msg("Applied filter")

	return matches, nil
}

// organisationFromKey returns the id of the organisation owning the API key
func organisationFromKey(ctx context.Context) (int64, error) {
	org, err := client.OrganisationFromAPIKey(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to look up API key organisation: %w", err)
	}

	id, err := org.Text("Organisation.OrganisationId")
	if err != nil {
		return 0, fmt.Errorf("failed to read organisation id: %w", err)
	}
	return parseID(id)
}

// organisationArg returns the organisation id given as args[0], falling back
// to the API key's own organisation
func organisationArg(ctx context.Context, args []string) (int64, error) {
	if len(args) > 0 {
		return parseID(args[0])
	}
	return organisationFromKey(ctx)
}

// listRecords unwraps wrapper/item from resp. An empty wrapper element yields
// no records; any other shape is an error.
func listRecords(resp eventor.Node, wrapper, item string) ([]eventor.Node, error) {
	records, err := resp.List(wrapper, item)
	if err == nil {
		return records, nil
	}
	if v, ok := resp[wrapper]; ok {
		if _, isMap := v.(map[string]any); !isMap {
			return []eventor.Node{}, nil
		}
	}
	return nil, err
}

package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nish-b/found-call-explorer/config"
	"github.com/nish-b/found-call-explorer/loader"
	"github.com/nish-b/found-call-explorer/logging"
	"github.com/nish-b/found-call-explorer/tui"
)

var (
	// Global flags
	configPath string
	logFile    string
	verbose    bool
	timeout    time.Duration

	// Report flags
	raw   bool
	width int
	style string

	// init-config flags
	force bool
)

// rootCmd launches the interactive explorer.
var rootCmd = &cobra.Command{
	Use:   "callexplorer [source]",
	Short: "Explore call outcomes from a call-center CSV export",
	Long: `callexplorer loads a call-center CSV export, groups every call's
disposition into outcome categories, and lets you drill into one disposition
to read its notes and most frequent keywords.

source is a CSV file path, an http(s) URL, or "-" for stdin. When omitted,
the source from the config file or CALLEXPLORER_SOURCE is used.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runExplorer,
}

// summaryCmd prints the category breakdown without the TUI.
var summaryCmd = &cobra.Command{
	Use:   "summary [source]",
	Short: "Print the disposition breakdown by category",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSummary,
}

// inspectCmd prints notes and keywords for one disposition.
var inspectCmd = &cobra.Command{
	Use:   "inspect <disposition> [source]",
	Short: "Print notes and common keywords for one disposition",
	Example: `  callexplorer inspect "Left Voicemail" calls.csv
  cat calls.csv | callexplorer inspect "No Answer" -`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runInspect,
}

// initConfigCmd writes the default settings to a config file to edit.
var initConfigCmd = &cobra.Command{
	Use:   "init-config [path]",
	Short: "Write a config file with the default settings",
	Long: `Writes the built-in settings as YAML so they can be edited. path defaults
to --config, then $CALLEXPLORER_CONFIG, then $XDG_CONFIG_HOME/callexplorer/config.yaml.
An existing file is left alone unless --force is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInitConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/callexplorer/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write JSON logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "timeout for loading the source (overrides fetch_timeout)")

	for _, c := range []*cobra.Command{summaryCmd, inspectCmd} {
		c.Flags().BoolVar(&raw, "raw", false, "print plain Markdown instead of styled output")
		c.Flags().IntVar(&width, "width", 80, "word wrap width for styled output")
		c.Flags().StringVar(&style, "style", "", "glamour style: dark, light, notty, ascii (default: auto)")
	}

	initConfigCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	rootCmd.AddCommand(summaryCmd, inspectCmd, initConfigCmd)
}

// session bundles what every command needs after flag and config handling.
type session struct {
	cfg     *config.Config
	logger  *zap.Logger
	loader  *loader.Loader
	source  string
	timeout time.Duration
}

func newSession(args []string, interactive bool) (*session, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}

	logger, err := logging.New(cfg.Log, logging.Options{Interactive: interactive, Verbose: verbose})
	if err != nil {
		return nil, err
	}

	source := cfg.Source
	if len(args) > 0 {
		source = args[0]
	}
	if source == "" {
		_ = logger.Sync()
		return nil, fmt.Errorf("no source given: pass a CSV path or URL, or set source in %s", path)
	}

	d, err := cfg.Timeout()
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		d = timeout
	}

	logger.Debug("session configured",
		zap.String("config", path),
		zap.String("source", source),
		zap.Duration("timeout", d),
	)
	return &session{cfg: cfg, logger: logger, loader: loader.New(logger), source: source, timeout: d}, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}

func runExplorer(cmd *cobra.Command, args []string) error {
	s, err := newSession(args, true)
	if err != nil {
		return err
	}
	defer s.close()

	m := tui.NewModel(s.loader, tui.Options{
		Title:   s.cfg.Title,
		Source:  s.source,
		Timeout: s.timeout,
		Logger:  s.logger,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return fmt.Errorf("explorer failed: %w", err)
	}

	// a failed load is shown in the view; repeat it after the alt screen closes
	if final, ok := result.(tui.Model); ok && final.Err() != nil {
		return final.Err()
	}
	return nil
}

func runInitConfig(cmd *cobra.Command, args []string) error {
	path := configPath
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		path = config.DefaultPath()
	}
	if path == "" {
		return fmt.Errorf("no config path: pass one or set CALLEXPLORER_CONFIG")
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config %s already exists (use --force to overwrite)", path)
	}
	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

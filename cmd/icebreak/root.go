package main

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sant0-9/icebreak/internal/config"
	"github.com/sant0-9/icebreak/internal/logging"
	"github.com/sant0-9/icebreak/internal/tui"
)

type rootOptions struct {
	verbose  bool
	endpoint string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "icebreak",
		Short: "Generate icebreakers, weird facts, jokes and weather chat",
		Long: `icebreak asks a chat model for a conversation starter written for the
room you're in and the voice you pick.

Run without arguments for the interactive terminal UI, or:
  icebreak ask joke --context party --persona sassy
  icebreak prompt fact --context classroom`,
		Args:              cobra.NoArgs,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output")
	cmd.PersistentFlags().StringVar(&opts.endpoint, "endpoint", "", "override the endpoint or base URL for this run")

	cmd.AddCommand(
		newAskCmd(opts),
		newPromptCmd(),
		newConfigCmd(),
	)
	return cmd
}

// loadConfig reads the config file, applies environment and flag overrides.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return nil, err
	}
	if o.endpoint != "" {
		cfg.SetTargetURL(strings.TrimSpace(o.endpoint))
	}
	if o.verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, nil
}

// cliLogger writes to w. Without --verbose only errors are logged so that
// stdout stays clean for piping.
func (o *rootOptions) cliLogger(cfg *config.Config, w io.Writer) (*zap.Logger, error) {
	logCfg := cfg.Log
	if !o.verbose {
		logCfg.Level = "error"
	}
	return logging.New(logCfg, w)
}

func runTUI(opts *rootOptions) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	// Settings saved from the TUI start from the file, not this run's overrides.
	saved, err := config.Load()
	if err != nil {
		return err
	}
	if saved == nil {
		saved = config.DefaultConfig()
	}

	log, closeLog, err := logging.NewFile(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	log.Info("starting",
		zap.String("version", version),
		zap.String("provider", cfg.Provider),
		zap.String("endpoint", cfg.TargetURL()),
		logging.Secret("api_key", cfg.APIKey),
	)

	p := tea.NewProgram(tui.NewApp(saved, cfg, log), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sant0-9/icebreak/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage icebreak configuration",
	}
	cmd.AddCommand(newConfigShowCmd(), newConfigSetCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault()
			if err != nil {
				return err
			}

			shown := *cfg
			if shown.APIKey != "" {
				shown.APIKey = shown.MaskedAPIKey()
			}
			data, err := yaml.Marshal(&shown)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}

			path, err := config.ConfigPath()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config file: %s\n\n", path)
			fmt.Fprint(out, string(data))
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Update a configuration value",
		Long: `Update a configuration value. Supported keys:
  provider    worker, ollama, openai, groq, openrouter, custom
  endpoint    worker URL
  base_url    API base URL for ollama, openai or custom
  model       model name
  api_key     API key for openai, groq or openrouter
  timeout     request timeout, e.g. 30s
  log.level   debug, info, warn or error
  log.file    path of the TUI log file`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd, args[0], args[1])
		},
	}
}

func runConfigSet(cmd *cobra.Command, key, value string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	value = strings.TrimSpace(value)
	switch key {
	case "provider":
		cfg.Provider = strings.ToLower(value)
		if info := config.GetProvider(cfg.Provider); info != nil {
			cfg.Model = info.DefaultModel
		}
	case "endpoint":
		cfg.Endpoint = value
	case "base_url":
		cfg.BaseURL = value
	case "model":
		if value == "" {
			return fmt.Errorf("model cannot be empty")
		}
		cfg.Model = value
	case "api_key":
		cfg.APIKey = value
	case "timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", value, err)
		}
		cfg.Timeout = d
	case "log.level":
		cfg.Log.Level = strings.ToLower(value)
	case "log.file":
		cfg.Log.File = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}

	// Keys from the environment count for validation but stay off disk.
	check := *cfg
	if check.APIKey == "" {
		check.APIKey = check.EnvAPIKey()
	}
	if err := check.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return err
	}

	shown := value
	if key == "api_key" {
		shown = cfg.MaskedAPIKey()
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, shown)
	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sant0-9/icebreak/internal/llm"
	"github.com/sant0-9/icebreak/internal/logging"
	"github.com/sant0-9/icebreak/internal/prompts"
	"github.com/sant0-9/icebreak/internal/session"
)

type selectionFlags struct {
	context string
	persona string
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.context, "context", "c", string(prompts.ContextDefault),
		"setting: team, classroom, gamenight, party, networking")
	cmd.Flags().StringVarP(&f.persona, "persona", "p", string(prompts.PersonaDefault),
		"voice: friendly, casual, sassy, professor, enthusiastic, zen")
}

func (f *selectionFlags) selection() session.Selection {
	return session.Selection{
		Context: prompts.ContextKey(f.context),
		Persona: prompts.PersonaKey(f.persona),
	}
}

func newAskCmd(opts *rootOptions) *cobra.Command {
	var sel selectionFlags

	cmd := &cobra.Command{
		Use:       "ask <icebreaker|fact|joke|weather>",
		Short:     "Generate one response and print it",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := prompts.ParseKind(args[0])
			if err != nil {
				return err
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			log, err := opts.cliLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			provider, err := llm.NewProvider(cfg)
			if err != nil {
				return fmt.Errorf("creating provider: %w", err)
			}

			log.Debug("config loaded",
				zap.String("provider", cfg.Provider),
				zap.String("endpoint", cfg.TargetURL()),
				logging.Secret("api_key", cfg.APIKey),
			)

			orch := session.New(provider, session.StaticSelector(sel.selection()), nil, log)
			out := orch.Run(cmd.Context(), kind)

			fmt.Fprintln(cmd.OutOrStdout(), orch.Surface().Text())
			if out.Err != nil {
				return fmt.Errorf("generation failed: %w", out.Err)
			}
			return nil
		},
	}

	sel.register(cmd)
	return cmd
}

func newPromptCmd() *cobra.Command {
	var sel selectionFlags

	cmd := &cobra.Command{
		Use:       "prompt <icebreaker|fact|joke|weather>",
		Short:     "Print the prompt that would be sent, without sending it",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := prompts.ParseKind(args[0])
			if err != nil {
				return err
			}
			s := sel.selection()
			fmt.Fprintln(cmd.OutOrStdout(), prompts.Compose(kind, s.Context, s.Persona))
			return nil
		},
	}

	sel.register(cmd)
	return cmd
}

func kindNames() []string {
	var names []string
	for _, k := range prompts.Kinds() {
		names = append(names, string(k.Kind))
	}
	return names
}

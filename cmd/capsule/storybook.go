package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/capsule/internal/tui/storybook"
	"github.com/alexisbeaulieu97/capsule/internal/ui/terminal"
)

type storybookOptions struct {
	overrides string
}

func newStorybookCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &storybookOptions{}

	cmd := &cobra.Command{
		Use:   "storybook",
		Short: "Browse components interactively",
		Long:  `Launch the interactive TUI to browse components, cycle axis values and toggle checked state.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStorybook(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.overrides, "overrides", "", "TOML file overriding token values")

	return cmd
}

func runStorybook(cmd *cobra.Command, rootFlags *rootFlags, opts *storybookOptions) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return newCommandError("start storybook", "checking terminal", fmt.Errorf("stdin and stdout must be a terminal"), "Run 'capsule preview <component>' for non-interactive output.")
	}

	registry, err := loadRegistry(cmd, rootFlags)
	if err != nil {
		return err
	}
	set, err := loadTokens(opts.overrides)
	if err != nil {
		return newCommandError("start storybook", "loading "+opts.overrides, err, "Check the TOML file; colours must be #RGB or #RRGGBB.")
	}
	log, err := newLogger(cmd, rootFlags)
	if err != nil {
		return err
	}

	m := storybook.NewModel(registry, terminal.NewTheme(set))
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error(err, "storybook exited")
		return fmt.Errorf("storybook error: %w", err)
	}
	return nil
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/capsule/internal/catalog"
	"github.com/alexisbeaulieu97/capsule/internal/displayname"
	"github.com/alexisbeaulieu97/capsule/internal/logger"
	"github.com/alexisbeaulieu97/capsule/internal/ui/components"
)

type rootFlags struct {
	verbose       bool
	catalog       string
	displayPrefix string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "capsule",
		Short:         "Capsule resolves, renders and previews design-system components",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.catalog, "catalog", "", "YAML catalog with extra components")
	cmd.PersistentFlags().StringVar(&flags.displayPrefix, "display-prefix", "none", "Display-name prefix: none, emoji or text")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newSafelistCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newInitialsCmd())
	cmd.AddCommand(newAvatarCmd())
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newSnapshotCmd(flags))
	cmd.AddCommand(newTokensCmd())
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newStorybookCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger writes human-readable entries to the command's stderr.
func newLogger(cmd *cobra.Command, flags *rootFlags) (*logger.Logger, error) {
	return logger.New(logger.Options{
		Level:         logger.LevelFor(flags.verbose),
		HumanReadable: true,
		Writer:        cmd.ErrOrStderr(),
		Component:     cmd.Name(),
	})
}

func displayConfig(mode string) (displayname.Config, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "none":
		return displayname.Config{}, nil
	case "text":
		return displayname.Config{ShowPrefix: true}, nil
	case "emoji":
		return displayname.Config{ShowPrefix: true, UseEmojis: true}, nil
	default:
		return displayname.Config{}, fmt.Errorf("unknown display prefix %q (want none, emoji or text)", mode)
	}
}

// loadRegistry builds the built-in registry plus any --catalog components.
func loadRegistry(cmd *cobra.Command, flags *rootFlags) (*components.Registry, error) {
	display, err := displayConfig(flags.displayPrefix)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "reading --display-prefix", err, "Use one of none, emoji or text.")
	}

	registry := components.Builtin(display)
	if flags.catalog == "" {
		return registry, nil
	}

	log, err := newLogger(cmd, flags)
	if err != nil {
		return nil, err
	}
	log.WithFields(map[string]any{"path": flags.catalog}).Debug("loading catalog")

	cat, err := catalog.Load(flags.catalog)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading catalog", err, "Run 'capsule validate -c "+flags.catalog+"' for details.")
	}
	if err := cat.Register(registry); err != nil {
		return nil, newCommandError(cmd.Name(), "registering catalog components", err, "Rename components that clash with built-in names.")
	}
	log.WithFields(map[string]any{"components": len(cat.Components)}).Debug("catalog registered")
	return registry, nil
}

func lookupEntry(cmd *cobra.Command, registry *components.Registry, name string) (components.Entry, error) {
	entry, ok := registry.Lookup(name)
	if !ok {
		return components.Entry{}, newCommandError(cmd.Name(), "looking up component", fmt.Errorf("unknown component %q", name), "Run 'capsule list' to see registered components.")
	}
	return entry, nil
}

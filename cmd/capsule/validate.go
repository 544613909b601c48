package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/capsule/internal/catalog"
	"github.com/alexisbeaulieu97/capsule/internal/ui/components"
)

type validateOptions struct {
	path  string
	watch bool
}

func newValidateCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a component catalog file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.path == "" {
				opts.path = rootFlags.catalog
			}
			if opts.path == "" {
				return newCommandError("validate", "reading flags", fmt.Errorf("no catalog given"), "Pass the catalog with -c catalog.yaml.")
			}
			if opts.watch {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return runValidateWatch(ctx, cmd, rootFlags, opts)
			}
			return runValidate(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.path, "catalog-file", "c", "", "Catalog file to validate (defaults to --catalog)")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "Re-validate whenever the file changes")

	return cmd
}

func runValidate(cmd *cobra.Command, rootFlags *rootFlags, opts *validateOptions) error {
	cat, err := catalog.Load(opts.path)
	if err == nil {
		err = checkRegistration(rootFlags, cat)
	}
	if err != nil {
		return newCommandError("validate", "checking "+opts.path, err, "Fix the reported field and run the command again.")
	}
	reportValid(cmd, opts.path, cat)
	return nil
}

func runValidateWatch(ctx context.Context, cmd *cobra.Command, rootFlags *rootFlags, opts *validateOptions) error {
	log, err := newLogger(cmd, rootFlags)
	if err != nil {
		return err
	}
	log.WithFields(map[string]any{"path": opts.path}).Info("watching catalog")

	err = catalog.Watch(ctx, opts.path, func(cat *catalog.Catalog, err error) {
		if err == nil {
			err = checkRegistration(rootFlags, cat)
		}
		if err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "✗ %s\n", err)
			return
		}
		reportValid(cmd, opts.path, cat)
	})
	if err != nil {
		return newCommandError("validate", "watching "+opts.path, err, "Check that the catalog's directory exists and is readable.")
	}
	log.Debug("watch stopped")
	return nil
}

// checkRegistration catches clashes with built-in component names.
func checkRegistration(rootFlags *rootFlags, cat *catalog.Catalog) error {
	display, err := displayConfig(rootFlags.displayPrefix)
	if err != nil {
		return err
	}
	return cat.Register(components.Builtin(display))
}

func reportValid(cmd *cobra.Command, path string, cat *catalog.Catalog) {
	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is valid (%d components)\n", path, len(cat.Components))
}

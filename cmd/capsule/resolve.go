package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/capsule/internal/variant"
)

type resolveOptions struct {
	set   []string
	class string
}

func newResolveCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve <component>",
		Short: "Print the merged class string for a component selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "Axis selection as axis=value (repeatable)")
	cmd.Flags().StringVar(&opts.class, "class", "", "Extra classes appended last")

	return cmd
}

func runResolve(cmd *cobra.Command, rootFlags *rootFlags, opts *resolveOptions, name string) error {
	registry, err := loadRegistry(cmd, rootFlags)
	if err != nil {
		return err
	}
	entry, err := lookupEntry(cmd, registry, name)
	if err != nil {
		return err
	}

	sel, err := parseSelection(opts.set)
	if err != nil {
		return newCommandError("resolve", "reading --set", err, "Pass selections as axis=value, e.g. --set size=lg.")
	}

	cls, err := entry.Classes(sel, opts.class)
	if err != nil {
		return newCommandError("resolve", "resolving "+entry.Name, err, "Run 'capsule list' to see each component's axes.")
	}

	fmt.Fprintln(cmd.OutOrStdout(), cls)
	return nil
}

// parseSelection turns repeated axis=value pairs into a selection. Later
// pairs win.
func parseSelection(pairs []string) (variant.Selection, error) {
	sel := make(variant.Selection, len(pairs))
	for _, pair := range pairs {
		axis, value, ok := strings.Cut(pair, "=")
		axis = strings.TrimSpace(axis)
		if !ok || axis == "" {
			return nil, fmt.Errorf("malformed selection %q", pair)
		}
		sel[axis] = strings.TrimSpace(value)
	}
	return sel, nil
}

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/capsule/internal/ui/components"
)

func newSafelistCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "safelist [component]",
		Short: "Print every class token the components can emit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry(cmd, rootFlags)
			if err != nil {
				return err
			}

			entries := registry.Entries()
			if len(args) == 1 {
				entry, err := lookupEntry(cmd, registry, args[0])
				if err != nil {
					return err
				}
				entries = []components.Entry{entry}
			}

			seen := make(map[string]struct{})
			for _, entry := range entries {
				for _, token := range entry.Spec.Safelist() {
					seen[token] = struct{}{}
				}
			}
			tokens := make([]string, 0, len(seen))
			for token := range seen {
				tokens = append(tokens, token)
			}
			sort.Strings(tokens)

			out := cmd.OutOrStdout()
			for _, token := range tokens {
				fmt.Fprintln(out, token)
			}
			return nil
		},
	}

	return cmd
}

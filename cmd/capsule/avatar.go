package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/capsule/internal/avatar"
)

func newInitialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "initials <name>",
		Short: "Print the avatar initials for a name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), avatar.Initials(strings.Join(args, " ")))
			return nil
		},
	}
}

func newAvatarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "avatar <name>",
		Short: "Print the fallback colour, palette index and initials for a name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			index := avatar.IndexFor(name, len(avatar.DefaultPalette))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "initials: %s\n", avatar.Initials(name))
			fmt.Fprintf(out, "index: %d\n", index)
			fmt.Fprintf(out, "colour: %s\n", avatar.DefaultPalette[index])
			return nil
		},
	}
}

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/capsule/internal/tokens"
	"github.com/alexisbeaulieu97/capsule/internal/ui/terminal"
)

type tokensOptions struct {
	overrides string
	family    string
}

func newTokensCmd() *cobra.Command {
	opts := &tokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Print the colour, radius and spacing tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadTokens(opts.overrides)
			if err != nil {
				return newCommandError("tokens", "loading "+opts.overrides, err, "Check the TOML file; colours must be #RGB or #RRGGBB.")
			}
			return renderTokens(cmd, set, opts)
		},
	}

	cmd.Flags().StringVar(&opts.overrides, "overrides", "", "TOML file overriding token values")
	cmd.Flags().StringVar(&opts.family, "family", "", "Only print one colour family")

	return cmd
}

// loadTokens returns the defaults, merged with path when one is given.
func loadTokens(path string) (*tokens.Tokens, error) {
	if path == "" {
		return tokens.Default(), nil
	}
	return tokens.LoadOverrides(path)
}

func renderTokens(cmd *cobra.Command, set *tokens.Tokens, opts *tokensOptions) error {
	theme := terminal.NewTheme(set)
	useColour := supportsUnicode(cmd.OutOrStdout())
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "TOKEN\tVALUE\t")
	for _, family := range set.Families() {
		if opts.family != "" && !strings.EqualFold(family, opts.family) {
			continue
		}
		for _, step := range set.Steps(family) {
			token := family + "-" + step
			if step == "DEFAULT" {
				token = family
			}
			hex, _ := set.Color(token)
			swatch := ""
			if useColour {
				swatch = theme.Swatch(token)
			}
			fmt.Fprintf(writer, "%s\t%s\t%s\n", token, hex, swatch)
		}
	}

	if opts.family == "" {
		for _, group := range []struct {
			prefix string
			values map[string]string
		}{{"rounded", set.Radius}, {"spacing", set.Spacing}} {
			for _, key := range sortedKeys(group.values) {
				name := group.prefix + "-" + key
				if key == "DEFAULT" {
					name = group.prefix
				}
				fmt.Fprintf(writer, "%s\t%s\t\n", name, group.values[key])
			}
		}
	}

	return writer.Flush()
}

package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/capsule/internal/ui/components"
	"github.com/alexisbeaulieu97/capsule/internal/ui/terminal"
)

type previewOptions struct {
	set       []string
	label     string
	overrides string
}

func newPreviewCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <component>",
		Short: "Approximate a component in the terminal",
		Long: "Prints every story of the component styled with lipgloss, or a single\n" +
			"sample when --set is given. Only colour, padding, border and text\n" +
			"utilities are translated.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "Axis selection as axis=value (repeatable)")
	cmd.Flags().StringVar(&opts.label, "label", "", "Sample text")
	cmd.Flags().StringVar(&opts.overrides, "overrides", "", "TOML file overriding token values")

	return cmd
}

func runPreview(cmd *cobra.Command, rootFlags *rootFlags, opts *previewOptions, name string) error {
	registry, err := loadRegistry(cmd, rootFlags)
	if err != nil {
		return err
	}
	entry, err := lookupEntry(cmd, registry, name)
	if err != nil {
		return err
	}
	set, err := loadTokens(opts.overrides)
	if err != nil {
		return newCommandError("preview", "loading "+opts.overrides, err, "Check the TOML file; colours must be #RGB or #RRGGBB.")
	}
	theme := terminal.NewTheme(set)
	out := cmd.OutOrStdout()

	if len(opts.set) > 0 {
		sel, err := parseSelection(opts.set)
		if err != nil {
			return newCommandError("preview", "reading --set", err, "Pass selections as axis=value, e.g. --set size=lg.")
		}
		cls, err := entry.Classes(sel, "")
		if err != nil {
			return newCommandError("preview", "resolving "+entry.Name, err, "Run 'capsule list' to see each component's axes.")
		}
		fmt.Fprintln(out, theme.Preview(cls, valueOrFallback(opts.label, entry.Name)))
		return nil
	}

	for _, story := range entry.Stories {
		cls, err := entry.Classes(story.Select, "")
		if err != nil {
			return newCommandError("preview", "resolving "+entry.Name+"/"+story.Name, err, "Fix the story selection.")
		}
		fmt.Fprintf(out, "%s\n%s\n\n", story.Name, theme.Preview(cls, storyLabel(story, opts.label, entry)))
	}
	return nil
}

func storyLabel(story components.Story, override string, entry components.Entry) string {
	switch {
	case override != "":
		return override
	case story.Label != "":
		return story.Label
	default:
		return entry.Name
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

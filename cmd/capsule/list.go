package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/capsule/internal/ui/components"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered components with their axes and defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry(cmd, rootFlags)
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				return renderListJSON(cmd, registry)
			}
			return renderListTable(cmd, registry)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderListTable(cmd *cobra.Command, registry *components.Registry) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "NAME\tLEVEL\tAXES\tDEFAULTS\tSTORIES")

	useUnicode := supportsUnicode(cmd.OutOrStdout())

	for _, entry := range registry.Entries() {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%d\n",
			registry.DisplayName(entry),
			entry.Level.Prefix(useUnicode),
			valueOrFallback(formatAxes(entry), "-"),
			valueOrFallback(formatDefaults(entry), "-"),
			len(entry.Stories),
		)
	}

	return writer.Flush()
}

type listJSONAxis struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
	Default string   `json:"default,omitempty"`
}

type listJSONComponent struct {
	Name    string         `json:"name"`
	Level   string         `json:"level"`
	Axes    []listJSONAxis `json:"axes"`
	Stories []string       `json:"stories"`
}

type listJSONPayload struct {
	Count      int                 `json:"count"`
	Components []listJSONComponent `json:"components"`
}

func renderListJSON(cmd *cobra.Command, registry *components.Registry) error {
	entries := registry.Entries()
	payload := listJSONPayload{
		Count:      len(entries),
		Components: make([]listJSONComponent, len(entries)),
	}

	for i, entry := range entries {
		comp := listJSONComponent{
			Name:    entry.Name,
			Level:   string(entry.Level),
			Axes:    make([]listJSONAxis, 0, len(entry.Spec.Axes)),
			Stories: make([]string, 0, len(entry.Stories)),
		}
		for _, axis := range entry.Spec.Axes {
			comp.Axes = append(comp.Axes, listJSONAxis{
				Name:    axis.Name,
				Options: axis.Values(),
				Default: entry.Spec.Defaults[axis.Name],
			})
		}
		for _, story := range entry.Stories {
			comp.Stories = append(comp.Stories, story.Name)
		}
		payload.Components[i] = comp
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func formatAxes(entry components.Entry) string {
	parts := make([]string, 0, len(entry.Spec.Axes))
	for _, axis := range entry.Spec.Axes {
		parts = append(parts, axis.Name+"("+strings.Join(axis.Values(), "|")+")")
	}
	return strings.Join(parts, " ")
}

func formatDefaults(entry components.Entry) string {
	parts := make([]string, 0, len(entry.Spec.Defaults))
	for _, axis := range entry.Spec.Axes {
		if value, ok := entry.Spec.Defaults[axis.Name]; ok {
			parts = append(parts, axis.Name+"="+value)
		}
	}
	return strings.Join(parts, " ")
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func valueOrFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

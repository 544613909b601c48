package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/capsule/internal/toggle"
	"github.com/alexisbeaulieu97/capsule/internal/ui/components"
	"github.com/alexisbeaulieu97/capsule/internal/variant"
)

type renderOptions struct {
	set      []string
	story    string
	label    string
	class    string
	checked  bool
	disabled bool
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <component>",
		Short: "Render a component as HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringArrayVar(&opts.set, "set", nil, "Axis selection as axis=value (repeatable)")
	cmd.Flags().StringVar(&opts.story, "story", "", "Start from a named story's selection and label")
	cmd.Flags().StringVar(&opts.label, "label", "", "Text content")
	cmd.Flags().StringVar(&opts.class, "class", "", "Extra classes appended last")
	cmd.Flags().BoolVar(&opts.checked, "checked", false, "Control the checked state of toggle components")
	cmd.Flags().BoolVar(&opts.disabled, "disabled", false, "Render in the disabled state")

	return cmd
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, opts *renderOptions, name string) error {
	registry, err := loadRegistry(cmd, rootFlags)
	if err != nil {
		return err
	}
	entry, err := lookupEntry(cmd, registry, name)
	if err != nil {
		return err
	}

	in := components.RenderInput{}
	if opts.story != "" {
		story, ok := entry.Story(opts.story)
		if !ok {
			return newCommandError("render", "looking up story", fmt.Errorf("%s has no story %q", entry.Name, opts.story), "Run 'capsule list' to see each component's stories.")
		}
		in = story.Input()
	}

	sel, err := parseSelection(opts.set)
	if err != nil {
		return newCommandError("render", "reading --set", err, "Pass selections as axis=value, e.g. --set size=lg.")
	}
	if in.Select == nil {
		in.Select = sel
	} else {
		merged := make(variant.Selection, len(in.Select)+len(sel))
		for k, v := range in.Select {
			merged[k] = v
		}
		for k, v := range sel {
			merged[k] = v
		}
		in.Select = merged
	}

	flags := cmd.Flags()
	if flags.Changed("label") {
		in.Label = opts.label
	}
	if flags.Changed("checked") {
		in.Checked = toggle.Ptr(opts.checked)
	}
	if flags.Changed("disabled") {
		in.Disabled = opts.disabled
	}
	in.Class = opts.class

	html, err := registry.Render(entry.Name, in)
	if err != nil {
		return newCommandError("render", "rendering "+entry.Name, err, "Check the selection against 'capsule list'.")
	}

	fmt.Fprintln(cmd.OutOrStdout(), html)
	return nil
}

package components

import (
	"github.com/alexisbeaulieu97/capsule/internal/displayname"
	"github.com/alexisbeaulieu97/capsule/internal/ui/markup"
	"github.com/alexisbeaulieu97/capsule/internal/variant"
)

// PlaceholderIcon is a neutral circle glyph used where no icon is supplied.
func PlaceholderIcon(sizeClasses string) markup.Node {
	return markup.El("svg", markup.Attrs{
		"class":       sizeClasses,
		"xmlns":       "http://www.w3.org/2000/svg",
		"viewBox":     "0 0 24 24",
		"fill":        "currentColor",
		"aria-hidden": "true",
	}, markup.El("circle", markup.Attrs{"cx": "12", "cy": "12", "r": "8"}))
}

// Builtin returns a registry holding every built-in component.
func Builtin(display displayname.Config) *Registry {
	r := NewRegistry(display)
	for _, entry := range builtinEntries() {
		r.MustRegister(entry)
	}
	return r
}

func builtinEntries() []Entry {
	return []Entry{
		{
			Name: "Button", Level: displayname.Atom, Spec: ButtonSpec,
			Stories: []Story{
				{Name: "default", Label: "Button"},
				{Name: "secondary", Select: variant.Selection{"variant": "secondary"}, Label: "Secondary"},
				{Name: "outline", Select: variant.Selection{"variant": "outline"}, Label: "Outline"},
				{Name: "ghost", Select: variant.Selection{"variant": "ghost"}, Label: "Ghost"},
				{Name: "danger", Select: variant.Selection{"variant": "danger", "size": "lg"}, Label: "Delete"},
				{Name: "small", Select: variant.Selection{"size": "sm"}, Label: "Small"},
				{Name: "full-width", Select: variant.Selection{"fullWidth": variant.True}, Label: "Full width"},
				{Name: "disabled", Label: "Disabled", Disabled: true},
			},
			Render: func(in RenderInput) (markup.Node, error) {
				return NewButton(in.Label).Select(in.Select).Disabled(in.Disabled).WithClass(in.Class).Render()
			},
		},
		{
			Name: "IconButton", Level: displayname.Atom, Spec: IconButtonSpec,
			Stories: []Story{
				{Name: "default", Label: "Close"},
				{Name: "outline", Select: variant.Selection{"variant": "outline", "colorScheme": "accent"}, Label: "Search"},
				{Name: "ghost", Select: variant.Selection{"variant": "ghost", "colorScheme": "neutral"}, Label: "More"},
				{Name: "round", Select: variant.Selection{"isRound": variant.True, "size": "lg"}, Label: "Add"},
				{Name: "danger", Select: variant.Selection{"colorScheme": "error", "size": "sm"}, Label: "Delete"},
			},
			Render: func(in RenderInput) (markup.Node, error) {
				return NewIconButton(PlaceholderIcon, in.Label).Select(in.Select).Disabled(in.Disabled).WithClass(in.Class).Render()
			},
		},
		{
			Name: "Badge", Level: displayname.Atom, Spec: BadgeSpec,
			Stories: []Story{
				{Name: "default", Label: "Badge"},
				{Name: "success", Select: variant.Selection{"colorScheme": "success"}, Label: "Active"},
				{Name: "outline", Select: variant.Selection{"variant": "outline", "colorScheme": "warning"}, Label: "Pending"},
				{Name: "subtle", Select: variant.Selection{"variant": "subtle", "colorScheme": "info"}, Label: "New"},
				{Name: "large", Select: variant.Selection{"size": "lg", "colorScheme": "error"}, Label: "99+"},
			},
			Render: func(in RenderInput) (markup.Node, error) {
				return NewBadge(in.Label).Select(in.Select).WithClass(in.Class).Render()
			},
		},
		{
			Name: "Tag", Level: displayname.Atom, Spec: TagSpec,
			Stories: []Story{
				{Name: "default", Label: "Tag"},
				{Name: "outline", Select: variant.Selection{"variant": "outline", "colorScheme": "success"}, Label: "Active"},
				{Name: "subtle", Select: variant.Selection{"variant": "subtle", "colorScheme": "neutral"}, Label: "Removable"},
				{Name: "small", Select: variant.Selection{"size": "sm", "colorScheme": "accent"}, Label: "Featured"},
			},
			Render: func(in RenderInput) (markup.Node, error) {
				return NewTag(in.Label).Select(in.Select).WithIcons(PlaceholderIcon, nil).WithClass(in.Class).Render()
			},
		},
		{
			Name: "Avatar", Level: displayname.Atom, Spec: AvatarSpec,
			Stories: []Story{
				{Name: "default", Label: "Sebastian Vargas"},
				{Name: "small", Select: variant.Selection{"size": "sm"}, Label: "John Doe"},
				{Name: "rounded", Select: variant.Selection{"variant": "rounded", "size": "lg"}, Label: "Bob Johnson"},
				{Name: "square", Select: variant.Selection{"variant": "square", "size": "2xl"}, Label: "Alice"},
				{Name: "anonymous", Select: variant.Selection{"size": "xs"}, Label: ""},
			},
			Render: func(in RenderInput) (markup.Node, error) {
				return NewAvatar(in.Label).Select(in.Select).WithClass(in.Class).Render()
			},
		},
		{
			Name: "Switch", Level: displayname.Atom, Spec: SwitchSpec,
			Stories: []Story{
				{Name: "default", Label: "Enable notifications"},
				{Name: "accent", Select: variant.Selection{"colorScheme": "accent", "size": "lg"}, Label: "Dark mode"},
				{Name: "small", Select: variant.Selection{"size": "sm"}, Label: ""},
				{Name: "disabled", Label: "Unavailable", Disabled: true},
			},
			Render: func(in RenderInput) (markup.Node, error) {
				return NewSwitch(false).Checked(in.Checked).Select(in.Select).
					WithLabel(in.Label, LabelRight).Disabled(in.Disabled).WithClass(in.Class).Render()
			},
		},
		{
			Name: "Checkbox", Level: displayname.Atom, Spec: CheckboxSpec,
			Stories: []Story{
				{Name: "default", Label: "Accept terms and conditions"},
				{Name: "accent", Select: variant.Selection{"colorScheme": "accent"}, Label: "I agree"},
				{Name: "large", Select: variant.Selection{"size": "lg"}, Label: "Large option"},
				{Name: "disabled", Label: "Disabled option", Disabled: true},
			},
			Render: func(in RenderInput) (markup.Node, error) {
				return NewCheckbox(false).Checked(in.Checked).Select(in.Select).
					WithLabel(in.Label).Disabled(in.Disabled).WithClass(in.Class).Render()
			},
		},
		{
			Name: "Radio", Level: displayname.Atom, Spec: RadioSpec,
			Stories: []Story{
				{Name: "default", Label: "Option A"},
				{Name: "accent", Select: variant.Selection{"colorScheme": "accent", "size": "sm"}, Label: "Option B"},
				{Name: "disabled", Label: "Option C", Disabled: true},
			},
			Render: func(in RenderInput) (markup.Node, error) {
				checked := in.Checked != nil && *in.Checked
				return NewRadio("choice", in.Label).Select(in.Select).WithLabel(in.Label).
					Checked(checked).Disabled(in.Disabled).WithClass(in.Class).Render()
			},
		},
		{
			Name: "Input", Level: displayname.Atom, Spec: InputSpec,
			Stories: []Story{
				{Name: "default", Label: "Enter text..."},
				{Name: "error", Select: variant.Selection{"variant": "error"}, Label: "Invalid email"},
				{Name: "success", Select: variant.Selection{"variant": "success", "size": "lg"}, Label: "Looks good"},
				{Name: "full-width", Select: variant.Selection{"fullWidth": variant.True, "size": "sm"}, Label: "Search..."},
				{Name: "disabled", Label: "Disabled", Disabled: true},
			},
			Render: func(in RenderInput) (markup.Node, error) {
				return NewInput("").WithPlaceholder(in.Label).Select(in.Select).Disabled(in.Disabled).WithClass(in.Class).Render()
			},
		},
		{
			Name: "Link", Level: displayname.Atom, Spec: LinkSpec,
			Stories: []Story{
				{Name: "default", Label: "Click here"},
				{Name: "standalone", Select: variant.Selection{"variant": "standalone"}, Label: "Learn more"},
				{Name: "accent", Select: variant.Selection{"colorScheme": "accent"}, Label: "Pricing"},
			},
			Render: func(in RenderInput) (markup.Node, error) {
				return NewLink("#", in.Label).Select(in.Select).WithClass(in.Class).Render()
			},
		},
		{
			Name: "Spinner", Level: displayname.Atom, Spec: SpinnerSpec,
			Stories: []Story{
				{Name: "default", Label: "Loading..."},
				{Name: "small", Select: variant.Selection{"size": "xs", "colorScheme": "accent"}, Label: "Saving"},
				{Name: "large", Select: variant.Selection{"size": "xl"}, Label: "Please wait"},
			},
			Render: func(in RenderInput) (markup.Node, error) {
				return NewSpinner().WithLabel(in.Label).Select(in.Select).WithClass(in.Class).Render()
			},
		},
		{
			Name: "Skeleton", Level: displayname.Atom, Spec: SkeletonSpec,
			Stories: []Story{
				{Name: "text", Label: "200"},
				{Name: "circle", Select: variant.Selection{"variant": "circle"}, Label: "48"},
				{Name: "rect", Select: variant.Selection{"variant": "rect"}, Label: "320"},
			},
			Render: func(in RenderInput) (markup.Node, error) {
				// The label doubles as the placeholder width.
				return NewSkeleton().Select(in.Select).WithDimensions(in.Label, "").WithClass(in.Class).Render()
			},
		},
		{
			Name: "Divider", Level: displayname.Atom, Spec: DividerSpec,
			Stories: []Story{
				{Name: "default"},
				{Name: "dashed", Select: variant.Selection{"variant": "dashed"}},
				{Name: "labelled", Label: "OR"},
				{Name: "vertical", Select: variant.Selection{"orientation": "vertical"}},
			},
			Render: func(in RenderInput) (markup.Node, error) {
				return NewDivider().Select(in.Select).WithLabel(in.Label).WithClass(in.Class).Render()
			},
		},
	}
}

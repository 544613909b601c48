// Package toggle reconciles a caller-owned boolean with an instance-owned one.
//
// A State is controlled while the caller supplies a value through Sync and
// uncontrolled otherwise. The instance's own value is initialised once from
// Options.Default and only Toggle ever changes it; switching modes changes
// which value Current reads, never the stored one.
package toggle

// Options configure a new State.
type Options struct {
	// Controlled is the caller's value; nil selects uncontrolled mode.
	Controlled *bool
	Default    bool
}

// State is owned by a single component instance and is not safe for
// concurrent use.
type State struct {
	controlled *bool
	internal   bool
}

// New creates a State.
func New(opts Options) *State {
	s := &State{internal: opts.Default}
	s.Sync(opts.Controlled)
	return s
}

// Sync records the caller's latest value. It is called on every render.
func (s *State) Sync(controlled *bool) {
	if controlled == nil {
		s.controlled = nil
		return
	}
	v := *controlled
	s.controlled = &v
}

// IsControlled reports whether the last Sync supplied a value.
func (s *State) IsControlled() bool {
	return s.controlled != nil
}

// Current returns the controlled value when present, else the internal one.
func (s *State) Current() bool {
	if s.controlled != nil {
		return *s.controlled
	}
	return s.internal
}

// Toggle flips the state. In uncontrolled mode the internal value is
// updated; in controlled mode nothing changes until the caller syncs the
// new value. onChange receives the next value in both modes.
func (s *State) Toggle(onChange func(next bool)) bool {
	next := !s.Current()
	if s.controlled == nil {
		s.internal = next
	}
	if onChange != nil {
		onChange(next)
	}
	return next
}

// Ptr returns a pointer to v for Options.Controlled and Sync.
func Ptr(v bool) *bool {
	return &v
}

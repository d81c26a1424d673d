// Package theme holds the light/dark mode flag
package theme

// State is the dark mode flag and the observers interested in it
type State struct {
	dark      bool
	observers []func(isDark bool)
}

// New creates a theme state. The default mode is light.
func New(dark bool) *State {
	return &State{dark: dark}
}

// IsDark reports whether dark mode is on
func (s *State) IsDark() bool {
	return s.dark
}

// Toggle flips the mode, notifies observers and returns the new value
func (s *State) Toggle() bool {
	s.dark = !s.dark
	for _, fn := range s.observers {
		fn(s.dark)
	}
	return s.dark
}

// Subscribe registers fn to run after every toggle
func (s *State) Subscribe(fn func(isDark bool)) {
	s.observers = append(s.observers, fn)
}

package surf

import tea "github.com/charmbracelet/bubbletea"

// SetModeMsg is the synchronization message sent to the navigation store.
// It is scheduled as a command, so the store applies it strictly after the
// render pass that first observed the new split value. One intermediate
// render may still present the old mode.
type SetModeMsg struct {
	Split  bool
	Target string
}

// ModeSynchronizer emits exactly one SetModeMsg per split-boolean edge.
// It acts on transitions, not on every observation: repeated Sync calls
// with an unchanged value return nil. The first observation counts as an
// edge so the store's mode is established on mount.
type ModeSynchronizer struct {
	initialRoute string
	seen         bool
	last         bool
}

// NewModeSynchronizer returns a synchronizer targeting initialRoute when
// entering split mode and the main screen when leaving it.
func NewModeSynchronizer(initialRoute string) *ModeSynchronizer {
	return &ModeSynchronizer{initialRoute: initialRoute}
}

// Sync observes the current split value and returns the synchronization
// command on an edge, nil otherwise.
func (s *ModeSynchronizer) Sync(split bool) tea.Cmd {
	if s.seen && s.last == split {
		return nil
	}
	s.seen = true
	s.last = split

	target := MainScreenName
	if split {
		target = s.initialRoute
	}
	return func() tea.Msg {
		return SetModeMsg{Split: split, Target: target}
	}
}

package surf

import (
	"fmt"

	"github.com/google/uuid"
)

// NavigationStore holds the ordered route list, the focused index, and the
// mode tag. The container never mutates navigation state directly; it only
// sends SetMode and the screen-navigation actions below. This single-writer
// rule is what keeps cross-pass consistency simple.
type NavigationStore interface {
	State() NavigationState
	Descriptor(key string) (*Descriptor, bool)

	// SetMode switches between split and stack layouts. It is idempotent:
	// repeating the call while already in the requested mode is a no-op.
	SetMode(split bool, target string) error

	// Navigate focuses the named screen. In split mode an existing route
	// with that name is re-focused; otherwise a new detail route is
	// appended. In stack mode every call pushes a fresh route.
	Navigate(name string, params any) error

	// Pop removes the top stack entry. It reports false at the root or in
	// split mode.
	Pop() bool
}

// Store is the default in-memory NavigationStore.
type Store struct {
	specs map[string]ScreenSpec
	state NavigationState
	descs map[string]*Descriptor
}

// NewStore builds a store over the registered screens, starting as a
// single-entry stack at initialRoute (the first registered screen when
// initialRoute is empty).
func NewStore(screens []ScreenSpec, initialRoute string) (*Store, error) {
	if len(screens) == 0 {
		return nil, fmt.Errorf("store: no screens registered")
	}

	specs := make(map[string]ScreenSpec, len(screens))
	for _, sc := range screens {
		if sc.Name == "" {
			return nil, fmt.Errorf("store: screen with empty name")
		}
		if sc.Build == nil {
			return nil, fmt.Errorf("store: screen %q has no build function", sc.Name)
		}
		if _, dup := specs[sc.Name]; dup {
			return nil, fmt.Errorf("store: screen %q registered twice", sc.Name)
		}
		specs[sc.Name] = sc
	}

	if initialRoute == "" {
		initialRoute = screens[0].Name
	}
	if _, ok := specs[initialRoute]; !ok {
		return nil, fmt.Errorf("store: initial route %q: %w", initialRoute, ErrUnknownScreen)
	}

	s := &Store{
		specs: specs,
		descs: make(map[string]*Descriptor),
	}
	first := s.newRoute(initialRoute, nil)
	s.state = NavigationState{
		Routes: []Route{first},
		Index:  0,
		Type:   ModeStack,
	}
	return s, nil
}

// State returns the current navigation snapshot.
func (s *Store) State() NavigationState {
	return s.state
}

// Descriptor looks up the render descriptor for a route key.
func (s *Store) Descriptor(key string) (*Descriptor, bool) {
	d, ok := s.descs[key]
	return d, ok
}

// newRoute mints a route with a unique key and registers its descriptor.
func (s *Store) newRoute(name string, params any) Route {
	r := Route{
		Key:    name + "-" + uuid.NewString()[:8],
		Name:   name,
		Params: params,
	}
	spec := s.specs[name]
	s.descs[r.Key] = &Descriptor{
		Route:   r,
		Options: spec.Options,
		build:   spec.Build,
	}
	return r
}

// SetMode implements the mode-synchronization message.
//
// Entering split mode keeps the existing history, pins the main route at
// position 0 (minting it if needed), and focuses target. Leaving split mode
// collapses the multi-route history into a single-lane stack whose sole
// entry is target; an existing route with that name is carried over so its
// scene survives the collapse.
func (s *Store) SetMode(split bool, target string) error {
	if split == (s.state.Type == ModeSplit) {
		return nil
	}

	if _, ok := s.specs[target]; !ok {
		return fmt.Errorf("store: set mode target %q: %w", target, ErrUnknownScreen)
	}

	if split {
		if _, ok := s.specs[MainScreenName]; !ok {
			return fmt.Errorf("store: entering split mode: %w", ErrMissingMainScreen)
		}

		routes := append([]Route(nil), s.state.Routes...)
		if mainIdx := (NavigationState{Routes: routes}).IndexOf(MainScreenName); mainIdx < 0 {
			routes = append([]Route{s.newRoute(MainScreenName, nil)}, routes...)
		} else if mainIdx != 0 {
			main := routes[mainIdx]
			routes = append(routes[:mainIdx], routes[mainIdx+1:]...)
			routes = append([]Route{main}, routes...)
		}

		idx := (NavigationState{Routes: routes}).IndexOf(target)
		if idx < 0 {
			routes = append(routes, s.newRoute(target, nil))
			idx = len(routes) - 1
		}

		s.state = NavigationState{Routes: routes, Index: idx, Type: ModeSplit}
		s.pruneDescriptors()
		return nil
	}

	// Collapse policy: the target route becomes the sole stack entry.
	var sole Route
	if idx := s.state.IndexOf(target); idx >= 0 {
		sole = s.state.Routes[idx]
	} else {
		sole = s.newRoute(target, nil)
	}
	s.state = NavigationState{Routes: []Route{sole}, Index: 0, Type: ModeStack}
	s.pruneDescriptors()
	return nil
}

// Navigate focuses the named screen per the active mode.
func (s *Store) Navigate(name string, params any) error {
	if _, ok := s.specs[name]; !ok {
		return fmt.Errorf("store: navigate to %q: %w", name, ErrUnknownScreen)
	}

	if s.state.Type == ModeSplit {
		if idx := s.state.IndexOf(name); idx >= 0 {
			s.state.Index = idx
			return nil
		}
		s.state.Routes = append(s.state.Routes, s.newRoute(name, params))
		s.state.Index = len(s.state.Routes) - 1
		return nil
	}

	s.state.Routes = append(s.state.Routes, s.newRoute(name, params))
	s.state.Index = len(s.state.Routes) - 1
	return nil
}

// Pop removes the top stack entry.
func (s *Store) Pop() bool {
	if s.state.Type != ModeStack || len(s.state.Routes) <= 1 {
		return false
	}
	s.state.Routes = s.state.Routes[:len(s.state.Routes)-1]
	s.state.Index = len(s.state.Routes) - 1
	s.pruneDescriptors()
	return true
}

// pruneDescriptors drops descriptors for routes no longer in the history.
// Scenes referenced by surviving routes are untouched.
func (s *Store) pruneDescriptors() {
	live := make(map[string]struct{}, len(s.state.Routes))
	for _, r := range s.state.Routes {
		live[r.Key] = struct{}{}
	}
	for key := range s.descs {
		if _, ok := live[key]; !ok {
			delete(s.descs, key)
		}
	}
}

package surf

// ModeType tags the navigation state with its active layout mode.
type ModeType string

const (
	// ModeStack is the single-pane push/pop layout.
	ModeStack ModeType = "stack"
	// ModeSplit is the two-pane master/detail layout.
	ModeSplit ModeType = "split"
)

// MainScreenName is the reserved name of the pinned master route. Exactly one
// registered screen must carry this name for split mode to be usable.
const MainScreenName = "main"

// Route is one entry in the navigation history. Identity is the Key, not the
// Name: in stack mode the same screen can be pushed multiple times, each push
// getting a distinct key.
type Route struct {
	Key    string
	Name   string
	Params any
}

// NavigationState is the full navigation snapshot owned by the store.
// Invariant: 0 <= Index < len(Routes), and when Type is ModeSplit exactly one
// route is named MainScreenName.
type NavigationState struct {
	Routes []Route
	Index  int
	Type   ModeType
}

// ActiveRoute returns the currently focused route.
func (s NavigationState) ActiveRoute() (Route, bool) {
	if s.Index < 0 || s.Index >= len(s.Routes) {
		return Route{}, false
	}
	return s.Routes[s.Index], true
}

// IndexOf returns the position of the first route with the given name,
// or -1 when absent.
func (s NavigationState) IndexOf(name string) int {
	for i, r := range s.Routes {
		if r.Name == name {
			return i
		}
	}
	return -1
}

// MainIndex returns the position of the pinned master route, or -1.
func (s NavigationState) MainIndex() int {
	return s.IndexOf(MainScreenName)
}

package surf

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Scene is the per-route UI unit hosted by the container. It mirrors the
// Bubble Tea model contract, except navigation requests travel as messages
// (see Navigate and Back) rather than return values.
type Scene interface {
	Init() tea.Cmd
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
}

// ScreenOptions carries per-screen presentation settings.
type ScreenOptions struct {
	// Title is shown by stack backends that render a header.
	// Defaults to the screen name.
	Title string
	// HeaderShown controls whether the surface stack backend renders a
	// header bar above the scene.
	HeaderShown bool
	// SplitStyles overrides the container-level split styling for this
	// screen's panes. Nil means inherit.
	SplitStyles *SplitStyles
}

// ScreenSpec registers one screen with the container. Build is invoked at
// most once, the first time a route for this screen becomes focused; the
// resulting Scene then lives until the container is torn down.
type ScreenSpec struct {
	Name    string
	Options ScreenOptions
	Build   func(route Route) Scene
}

// SplitStyles are the styling slots for the three split-mode regions.
type SplitStyles struct {
	Body   lipgloss.Style
	Main   lipgloss.Style
	Detail lipgloss.Style
}

// Descriptor pairs a route with its render capability. Descriptors are owned
// by the store and looked up by route key. The scene inside is built lazily
// so that never-focused detail routes cost nothing.
type Descriptor struct {
	Route   Route
	Options ScreenOptions

	build func(Route) Scene
	scene Scene
}

// Scene returns the mounted scene, building it on first access.
func (d *Descriptor) Scene() Scene {
	if d.scene == nil && d.build != nil {
		d.scene = d.build(d.Route)
	}
	return d.scene
}

// Mounted reports whether the scene has been built.
func (d *Descriptor) Mounted() bool {
	return d.scene != nil
}

// DescriptorLookup resolves a route key to its descriptor.
type DescriptorLookup func(key string) (*Descriptor, bool)

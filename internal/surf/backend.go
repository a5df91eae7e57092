package surf

import (
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StackBackend renders the single-pane push/pop layout. Both backends are
// driven by the same state shape and descriptor map; the container only
// projects the state and picks one of them at construction.
type StackBackend interface {
	Name() string
	Render(state NavigationState, lookup DescriptorLookup, width, height int) string
}

// Capabilities feed the backend selection rule.
type Capabilities struct {
	// Surface reports whether the optimized surface-backed stack renderer
	// is available on this host.
	Surface bool
	// Platform is the host platform identifier (runtime.GOOS).
	Platform string
}

// DetectCapabilities queries the current host.
func DetectCapabilities() Capabilities {
	return Capabilities{Surface: true, Platform: runtime.GOOS}
}

// NewStackBackend selects the surface backend where supported and
// applicable, else the portable card backend.
func NewStackBackend(caps Capabilities) StackBackend {
	if caps.Surface && caps.Platform != "windows" {
		return &surfaceStack{}
	}
	return &cardStack{}
}

// surfaceStack is the optimized backend: only the top scene is drawn, with
// an optional header bar taken from the screen options.
type surfaceStack struct{}

func (b *surfaceStack) Name() string { return "surface" }

func (b *surfaceStack) Render(state NavigationState, lookup DescriptorLookup, width, height int) string {
	route, ok := state.ActiveRoute()
	if !ok {
		return renderPlaceholder("no active route", width, height)
	}
	desc, ok := lookup(route.Key)
	if !ok {
		return renderPlaceholder("no descriptor for "+route.Name, width, height)
	}

	sceneHeight := height
	var header string
	if desc.Options.HeaderShown {
		title := desc.Options.Title
		if title == "" {
			title = route.Name
		}
		header = headerStyle.Width(width).Render(title)
		sceneHeight = height - lipgloss.Height(header)
	}

	body := desc.Scene().View(width, sceneHeight)
	if header == "" {
		return body
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}

// cardStack is the portable fallback backend: a breadcrumb trail of the
// stack above the top scene.
type cardStack struct{}

func (b *cardStack) Name() string { return "card" }

func (b *cardStack) Render(state NavigationState, lookup DescriptorLookup, width, height int) string {
	route, ok := state.ActiveRoute()
	if !ok {
		return renderPlaceholder("no active route", width, height)
	}
	desc, ok := lookup(route.Key)
	if !ok {
		return renderPlaceholder("no descriptor for "+route.Name, width, height)
	}

	trail := make([]string, 0, len(state.Routes))
	for i, r := range state.Routes {
		label := r.Name
		if i == state.Index {
			label = breadcrumbActiveStyle.Render(label)
		} else {
			label = breadcrumbStyle.Render(label)
		}
		trail = append(trail, label)
	}
	crumb := lipgloss.NewStyle().Width(width).MaxHeight(1).
		Render(strings.Join(trail, breadcrumbStyle.Render(" › ")))

	body := desc.Scene().View(width, height-1)
	return lipgloss.JoinVertical(lipgloss.Left, crumb, body)
}

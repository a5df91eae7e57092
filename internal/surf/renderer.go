package surf

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// SceneFrame describes one detail scene's place in the split render tree.
// Hidden frames are mounted but not drawn: the scene object survives with
// all its internal state, only its visibility is off.
type SceneFrame struct {
	Index   int
	Key     string
	Visible bool
}

// LayoutRenderer projects navigation state into the terminal. Split mode is
// rendered here; stack mode is delegated wholesale to the selected backend.
type LayoutRenderer struct {
	mainWidth int
	styles    SplitStyles
	backend   StackBackend
}

// NewLayoutRenderer builds a renderer with the given master-pane width,
// split styles, and stack backend.
func NewLayoutRenderer(mainWidth int, styles SplitStyles, backend StackBackend) *LayoutRenderer {
	return &LayoutRenderer{
		mainWidth: mainWidth,
		styles:    styles,
		backend:   backend,
	}
}

// Backend returns the selected stack backend.
func (r *LayoutRenderer) Backend() StackBackend {
	return r.backend
}

// DetailFrames applies the split-mode render policy to every non-main
// route: a route appears in the tree iff it is focused or has been focused
// before; exactly the focused one is visible.
func (r *LayoutRenderer) DetailFrames(state NavigationState, loaded *LoadedSet) []SceneFrame {
	mainIdx := state.MainIndex()
	frames := make([]SceneFrame, 0, len(state.Routes))
	for i, route := range state.Routes {
		if i == mainIdx {
			continue
		}
		if i != state.Index && !loaded.Contains(i) {
			continue
		}
		frames = append(frames, SceneFrame{
			Index:   i,
			Key:     route.Key,
			Visible: i == state.Index,
		})
	}
	return frames
}

// Render produces the layout for the current state. The mode tag on the
// state is authoritative: during the one-pass lag after a threshold
// crossing this still draws the old mode.
func (r *LayoutRenderer) Render(state NavigationState, lookup DescriptorLookup, loaded *LoadedSet, width, height int) (string, error) {
	if state.Type == ModeSplit {
		return r.renderSplit(state, lookup, loaded, width, height)
	}
	return r.backend.Render(state, lookup, width, height), nil
}

// renderSplit draws the master pane and the visibility-gated detail region.
func (r *LayoutRenderer) renderSplit(state NavigationState, lookup DescriptorLookup, loaded *LoadedSet, width, height int) (string, error) {
	mainIdx := state.MainIndex()
	if mainIdx < 0 {
		return "", fmt.Errorf("rendering split layout: %w", ErrMissingMainScreen)
	}

	mainRoute := state.Routes[mainIdx]
	mainDesc, ok := lookup(mainRoute.Key)
	if !ok {
		return "", fmt.Errorf("rendering split layout: no descriptor for %q", mainRoute.Key)
	}

	styles := r.styles
	if mainDesc.Options.SplitStyles != nil {
		styles = *mainDesc.Options.SplitStyles
	}

	mainWidth := r.mainWidth
	if mainWidth >= width {
		mainWidth = width / 2
	}
	detailWidth := width - mainWidth - styles.Main.GetHorizontalFrameSize()

	// The main route is always mounted, never visibility-gated.
	master := styles.Main.
		Height(height).
		MaxHeight(height).
		Render(mainDesc.Scene().View(mainWidth, height))

	var detailView string
	for _, frame := range r.DetailFrames(state, loaded) {
		if !frame.Visible {
			// Mounted but hidden: the scene stays alive, nothing is drawn.
			continue
		}
		desc, ok := lookup(frame.Key)
		if !ok {
			return "", fmt.Errorf("rendering split layout: no descriptor for %q", frame.Key)
		}
		detailView = desc.Scene().View(detailWidth, height)
	}
	if detailView == "" {
		detailView = renderPlaceholder("select an item", detailWidth, height)
	}

	detail := styles.Detail.
		Height(height).
		MaxHeight(height).
		Render(detailView)

	return styles.Body.Render(lipgloss.JoinHorizontal(lipgloss.Top, master, detail)), nil
}

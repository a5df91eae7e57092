package surf

import (
	"errors"
	"strings"
	"testing"
)

// splitFixture builds a store in split mode over main/alpha/beta.
func splitFixture(t *testing.T) (*screenFixture, *Store) {
	t.Helper()
	f := newScreenFixture()
	s, err := NewStore(f.screens(MainScreenName, "alpha", "beta"), "")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := s.SetMode(true, MainScreenName); err != nil {
		t.Fatalf("SetMode(split): %v", err)
	}
	return f, s
}

func newTestRenderer() *LayoutRenderer {
	return NewLayoutRenderer(30, DefaultSplitStyles(), NewStackBackend(Capabilities{Surface: false}))
}

func TestDetailFrames_NeverLoadedRoutesAreAbsent(t *testing.T) {
	t.Parallel()

	_, s := splitFixture(t)
	if err := s.Navigate("alpha", nil); err != nil {
		t.Fatalf("Navigate(alpha): %v", err)
	}
	if err := s.Navigate("beta", nil); err != nil {
		t.Fatalf("Navigate(beta): %v", err)
	}

	r := newTestRenderer()
	loaded := NewLoadedSet()

	// beta (index 2) focused, alpha never focused: only beta in the tree.
	frames := r.DetailFrames(s.State(), loaded)
	if len(frames) != 1 {
		t.Fatalf("frames = %d, want 1", len(frames))
	}
	if frames[0].Index != 2 || !frames[0].Visible {
		t.Fatalf("frames[0] = %+v, want index 2 visible", frames[0])
	}
}

func TestDetailFrames_PreviouslyFocusedStaysMountedHidden(t *testing.T) {
	t.Parallel()

	_, s := splitFixture(t)
	if err := s.Navigate("alpha", nil); err != nil {
		t.Fatalf("Navigate(alpha): %v", err)
	}
	if err := s.Navigate("beta", nil); err != nil {
		t.Fatalf("Navigate(beta): %v", err)
	}

	r := newTestRenderer()
	loaded := NewLoadedSet()
	loaded.Mark(2) // beta was focused earlier

	if err := s.Navigate("alpha", nil); err != nil {
		t.Fatalf("Navigate(alpha) again: %v", err)
	}

	frames := r.DetailFrames(s.State(), loaded)
	if len(frames) != 2 {
		t.Fatalf("frames = %d, want 2 (alpha visible, beta hidden)", len(frames))
	}

	byIndex := make(map[int]SceneFrame, len(frames))
	for _, fr := range frames {
		byIndex[fr.Index] = fr
	}
	if fr := byIndex[1]; !fr.Visible {
		t.Fatalf("alpha frame = %+v, want visible", fr)
	}
	if fr := byIndex[2]; fr.Visible {
		t.Fatalf("beta frame = %+v, want mounted but hidden", fr)
	}
}

func TestDetailFrames_MainRouteIsExempt(t *testing.T) {
	t.Parallel()

	_, s := splitFixture(t)

	r := newTestRenderer()
	loaded := NewLoadedSet()
	loaded.Mark(0) // even if marked by mistake, main never appears

	frames := r.DetailFrames(s.State(), loaded)
	for _, fr := range frames {
		if fr.Index == s.State().MainIndex() {
			t.Fatalf("main route appeared in detail frames: %+v", fr)
		}
	}
}

func TestRenderSplit_MasterPaneAndEmptyDetail(t *testing.T) {
	t.Parallel()

	f, s := splitFixture(t)
	r := newTestRenderer()

	out, err := r.Render(s.State(), s.Descriptor, NewLoadedSet(), 100, 20)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "main content") {
		t.Fatal("split render should contain the master pane content")
	}
	if !strings.Contains(out, "select an item") {
		t.Fatal("split render with no focused detail should show the empty placeholder")
	}
	if f.builds["alpha"] != 0 || f.builds["beta"] != 0 {
		t.Fatal("never-focused detail scenes must not be built")
	}
}

func TestRenderSplit_VisibleDetailOnly(t *testing.T) {
	t.Parallel()

	f, s := splitFixture(t)
	if err := s.Navigate("alpha", nil); err != nil {
		t.Fatalf("Navigate(alpha): %v", err)
	}
	if err := s.Navigate("beta", nil); err != nil {
		t.Fatalf("Navigate(beta): %v", err)
	}

	r := newTestRenderer()
	loaded := NewLoadedSet()
	loaded.Mark(2)
	if err := s.Navigate("alpha", nil); err != nil {
		t.Fatalf("Navigate(alpha) again: %v", err)
	}
	loaded.Mark(1)

	out, err := r.Render(s.State(), s.Descriptor, loaded, 100, 20)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(out, "alpha content") {
		t.Fatal("focused detail should be drawn")
	}
	if strings.Contains(out, "beta content") {
		t.Fatal("hidden detail must not be drawn")
	}
	if f.scenes["beta"] == nil {
		t.Fatal("hidden detail scene should remain mounted")
	}
}

func TestRenderSplit_MissingMainScreenIsFatal(t *testing.T) {
	t.Parallel()

	f := newScreenFixture()
	spec := f.spec("alpha", ScreenOptions{})
	route := Route{Key: "alpha-0", Name: "alpha"}
	descs := map[string]*Descriptor{
		route.Key: {Route: route, build: spec.Build},
	}
	lookup := func(key string) (*Descriptor, bool) {
		d, ok := descs[key]
		return d, ok
	}

	state := NavigationState{Routes: []Route{route}, Index: 0, Type: ModeSplit}
	r := newTestRenderer()

	_, err := r.Render(state, lookup, NewLoadedSet(), 100, 20)
	if !errors.Is(err, ErrMissingMainScreen) {
		t.Fatalf("err = %v, want ErrMissingMainScreen", err)
	}
}

func TestRender_StackModeDelegatesToBackend(t *testing.T) {
	t.Parallel()

	f := newScreenFixture()
	s, err := NewStore(f.screens(MainScreenName, "alpha"), "")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := s.Navigate("alpha", nil); err != nil {
		t.Fatalf("Navigate: %v", err)
	}

	r := newTestRenderer()
	out, renderErr := r.Render(s.State(), s.Descriptor, NewLoadedSet(), 80, 20)
	if renderErr != nil {
		t.Fatalf("Render: %v", renderErr)
	}
	// The card backend draws the breadcrumb trail of the whole stack.
	if !strings.Contains(out, MainScreenName) || !strings.Contains(out, "alpha content") {
		t.Fatal("stack render should show the breadcrumb trail and the top scene")
	}
}

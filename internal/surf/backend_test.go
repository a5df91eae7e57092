package surf

import (
	"strings"
	"testing"
)

func TestNewStackBackend_Selection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		caps Capabilities
		want string
	}{
		{"surface on linux", Capabilities{Surface: true, Platform: "linux"}, "surface"},
		{"surface on darwin", Capabilities{Surface: true, Platform: "darwin"}, "surface"},
		{"windows falls back to card", Capabilities{Surface: true, Platform: "windows"}, "card"},
		{"no surface support", Capabilities{Surface: false, Platform: "linux"}, "card"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NewStackBackend(tt.caps).Name(); got != tt.want {
				t.Fatalf("backend = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSurfaceStack_RendersHeaderWhenShown(t *testing.T) {
	t.Parallel()

	f := newScreenFixture()
	specs := []ScreenSpec{
		f.spec(MainScreenName, ScreenOptions{Title: "Inbox", HeaderShown: true}),
	}
	s, err := NewStore(specs, "")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	b := NewStackBackend(Capabilities{Surface: true, Platform: "linux"})
	out := b.Render(s.State(), s.Descriptor, 80, 20)

	if !strings.Contains(out, "Inbox") {
		t.Fatal("surface backend should render the header title")
	}
	if !strings.Contains(out, MainScreenName+" content") {
		t.Fatal("surface backend should render the top scene")
	}
}

func TestSurfaceStack_NoHeaderByDefault(t *testing.T) {
	t.Parallel()

	f := newScreenFixture()
	s, err := NewStore(f.screens(MainScreenName), "")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	b := NewStackBackend(Capabilities{Surface: true, Platform: "linux"})
	out := b.Render(s.State(), s.Descriptor, 80, 20)

	if out != f.scenes[MainScreenName].label {
		t.Fatalf("headerless surface render = %q, want bare scene output", out)
	}
}

func TestCardStack_BreadcrumbMarksActiveRoute(t *testing.T) {
	t.Parallel()

	f := newScreenFixture()
	s, err := NewStore(f.screens(MainScreenName, "alpha"), "")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if err := s.Navigate("alpha", nil); err != nil {
		t.Fatalf("Navigate: %v", err)
	}

	b := &cardStack{}
	out := b.Render(s.State(), s.Descriptor, 80, 20)

	if !strings.Contains(out, MainScreenName) || !strings.Contains(out, "alpha") {
		t.Fatal("breadcrumb should list every stack entry")
	}
	if !strings.Contains(out, "alpha content") {
		t.Fatal("card backend should render the top scene")
	}
}

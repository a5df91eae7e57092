package surf

import "testing"

func TestIsSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		viewportWidth int
		mainWidth     int
		want          bool
	}{
		{"wider than threshold", 400, 300, true},
		{"narrower than threshold", 200, 300, false},
		{"exactly at threshold", 300, 300, false},
		{"one past threshold", 301, 300, true},
		{"zero viewport", 0, 300, false},
		{"zero threshold", 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsSplit(tt.viewportWidth, tt.mainWidth); got != tt.want {
				t.Fatalf("IsSplit(%d, %d) = %v, want %v", tt.viewportWidth, tt.mainWidth, got, tt.want)
			}
		})
	}
}

package surf

// IsSplit reports whether the viewport is wide enough for the two-pane
// layout. Hard threshold, no hysteresis: recomputed on every dimension
// update, and a viewport exactly as wide as the master pane stays in
// stack mode.
func IsSplit(viewportWidth, mainWidth int) bool {
	return viewportWidth > mainWidth
}

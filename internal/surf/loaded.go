package surf

// LoadedSet records which route positions have ever been focused since the
// container mounted. It only grows: once a detail scene has been mounted it
// stays mounted (merely hidden) for the rest of the container's lifetime,
// so scenes keep their internal state across focus changes.
//
// The main route never appears here; it is mounted unconditionally.
type LoadedSet struct {
	indices map[int]struct{}
}

// NewLoadedSet returns an empty set.
func NewLoadedSet() *LoadedSet {
	return &LoadedSet{indices: make(map[int]struct{})}
}

// Mark records that the index is (or was) focused.
func (s *LoadedSet) Mark(index int) {
	s.indices[index] = struct{}{}
}

// Contains reports whether the index was ever focused.
func (s *LoadedSet) Contains(index int) bool {
	_, ok := s.indices[index]
	return ok
}

// Len returns the number of recorded indices.
func (s *LoadedSet) Len() int {
	return len(s.indices)
}

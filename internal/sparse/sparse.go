// Package sparse provides a sparse set of NFA state IDs.
//
// During simulation (see nfa.step), the same generation of live states is
// probed for membership many times per input byte while it's being built via
// epsilon-closure, then iterated once to advance every thread. A sparse set
// gives O(1) Contains/Insert for the probing phase and a dense, allocation-free
// Values() slice for the iteration phase, without the Clear cost a plain
// bool-per-state map would pay between bytes.
package sparse

// SparseSet is a set of uint32 state IDs backed by a sparse/dense array pair
// (Briggs & Torczon): sparse maps a value to its slot in dense, and dense
// holds the live values contiguously for fast iteration. A slot in sparse is
// only meaningful when it round-trips back through dense to the same value —
// stale entries from before a Clear are never read because size bounds the
// valid region of dense.
type SparseSet struct {
	sparse []uint32 // value -> index into dense
	dense  []uint32 // live values, dense[:size] valid
	size   uint32
}

// NewSparseSet creates a sparse set over the state ID range [0, capacity).
// capacity is normally the NFA's total state count, so every reachable
// StateID fits without reallocation.
func NewSparseSet(capacity uint32) *SparseSet {
	return &SparseSet{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
		size:   0,
	}
}

// Insert adds a state ID to the set. A no-op if already present. Panics if
// value is outside the capacity the set was constructed with.
func (s *SparseSet) Insert(value uint32) {
	if s.Contains(value) {
		return
	}
	s.dense = append(s.dense, value)
	s.sparse[value] = s.size
	s.size++
}

// Contains reports whether a state ID is in the current frontier.
func (s *SparseSet) Contains(value uint32) bool {
	if len(s.sparse) > 0x7FFFFFFF {
		return false // len too large for safe conversion
	}
	//nolint:gosec // G115: len is checked above for safe conversion to uint32
	sparseLen := uint32(len(s.sparse))
	if value >= sparseLen {
		return false
	}
	idx := s.sparse[value]
	return idx < s.size && s.dense[idx] == value
}

// Clear empties the set in O(1), ready for the next input byte's frontier.
func (s *SparseSet) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// IsEmpty reports whether no NFA threads are alive in this frontier —
// simulation can stop early once this is true and no more matches are open.
func (s *SparseSet) IsEmpty() bool {
	return s.size == 0
}

// Values returns the live state IDs in insertion order. The slice aliases
// the set's internal storage and is only valid until the next Insert or
// Clear.
func (s *SparseSet) Values() []uint32 {
	return s.dense[:s.size]
}

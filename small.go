package contig

// smallCap is the inline capacity of Small.
const smallCap = 8

// Small is a growable vector that stores up to 8 elements inline,
// avoiding heap allocation for short runs.
//
// Past 8 elements it spills to a heap slice and behaves like Vec from
// then on. Use by pointer after first Push: inline elements live in the
// struct itself, so copying a Small copies its data.
type Small[T any] struct {
	inline [smallCap]T
	n      int
	heap   []T
}

// Spilled reports whether elements live on the heap.
func (s *Small[T]) Spilled() bool { return s.heap != nil }

// Push appends e to the end of the vector.
func (s *Small[T]) Push(e T) {
	if s.heap == nil && s.n < smallCap {
		s.inline[s.n] = e
		s.n++
		return
	}
	s.spill()
	s.heap = append(s.heap, e)
}

// spill moves inline elements to the heap. Element order is preserved.
func (s *Small[T]) spill() {
	if s.heap != nil {
		return
	}
	s.heap = make([]T, s.n, smallCap*2)
	copy(s.heap, s.inline[:s.n])
	var zero T
	for i := range s.inline {
		s.inline[i] = zero
	}
	s.n = 0
}

// Pop removes and returns the last element.
func (s *Small[T]) Pop() (T, bool) {
	var zero T
	if s.heap != nil {
		if len(s.heap) == 0 {
			return zero, false
		}
		e := s.heap[len(s.heap)-1]
		s.heap[len(s.heap)-1] = zero
		s.heap = s.heap[:len(s.heap)-1]
		return e, true
	}
	if s.n == 0 {
		return zero, false
	}
	s.n--
	e := s.inline[s.n]
	s.inline[s.n] = zero
	return e, true
}

// Len returns count of elements.
func (s *Small[T]) Len() int {
	if s.heap != nil {
		return len(s.heap)
	}
	return s.n
}

// Cap returns current capacity: smallCap while inline, the heap slice
// capacity after spilling.
func (s *Small[T]) Cap() int {
	if s.heap != nil {
		return cap(s.heap)
	}
	return smallCap
}

// At returns element at i.
func (s *Small[T]) At(i int) T { return s.Slice()[i] }

// Set replaces element at i with e.
func (s *Small[T]) Set(i int, e T) { s.Slice()[i] = e }

// Truncate shortens the vector to n elements. No-op if n >= Len().
//
// Truncating a spilled vector keeps it spilled: heap capacity is
// preserved for reuse.
func (s *Small[T]) Truncate(n int) {
	if n >= s.Len() {
		return
	}
	var zero T
	if s.heap != nil {
		for i := n; i < len(s.heap); i++ {
			s.heap[i] = zero
		}
		s.heap = s.heap[:n]
		return
	}
	for i := n; i < s.n; i++ {
		s.inline[i] = zero
	}
	s.n = n
}

// Clear removes all elements, preserving storage.
func (s *Small[T]) Clear() { s.Truncate(0) }

// Reset returns the vector to its initial inline state, releasing any
// heap backing.
func (s *Small[T]) Reset() {
	s.Truncate(0)
	s.heap = nil
}

// Slice returns the current elements.
//
// While inline, the result aliases the struct itself; it is invalidated
// by the spill on the 9th Push.
func (s *Small[T]) Slice() []T {
	if s.heap != nil {
		return s.heap
	}
	return s.inline[:s.n]
}

// Clone returns a deep copy. The copy is inline if it fits.
func (s *Small[T]) Clone() *Small[T] {
	c := &Small[T]{}
	for _, e := range s.Slice() {
		c.Push(e)
	}
	return c
}

// ForEach calls f on each element.
func (s *Small[T]) ForEach(f func(i int, e T) error) error {
	for i, e := range s.Slice() {
		if err := f(i, e); err != nil {
			return err
		}
	}
	return nil
}

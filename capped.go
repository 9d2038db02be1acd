package contig

import "github.com/go-faster/errors"

// ErrFull means that a Capped vector is at capacity and refused a push.
var ErrFull = errors.New("full")

// Capped is a vector backed by storage allocated once at construction.
//
// It never reallocates: a push past capacity fails with ErrFull instead.
// The backing array address is stable for the lifetime of the container,
// which makes it safe to retain Slice() results across pushes.
type Capped[T any] struct {
	data []T
}

// NewCapped returns Capped with capacity for n elements.
//
// A zero-capacity container is permanently full.
func NewCapped[T any](n int) *Capped[T] {
	return &Capped[T]{data: make([]T, 0, n)}
}

// Push appends e, failing with ErrFull at capacity.
//
// The container is unchanged on failure.
func (c *Capped[T]) Push(e T) error {
	if len(c.data) == cap(c.data) {
		return errors.Wrap(ErrFull, "push")
	}
	c.data = append(c.data, e)
	return nil
}

// TryPush appends e, reporting whether it fit.
func (c *Capped[T]) TryPush(e T) bool {
	if len(c.data) == cap(c.data) {
		return false
	}
	c.data = append(c.data, e)
	return true
}

// Pop removes and returns the last element.
func (c *Capped[T]) Pop() (T, bool) {
	var zero T
	if len(c.data) == 0 {
		return zero, false
	}
	e := c.data[len(c.data)-1]
	c.data[len(c.data)-1] = zero
	c.data = c.data[:len(c.data)-1]
	return e, true
}

// Full reports whether the next Push would fail.
func (c *Capped[T]) Full() bool { return len(c.data) == cap(c.data) }

// Remaining returns count of elements that can still be pushed.
func (c *Capped[T]) Remaining() int { return cap(c.data) - len(c.data) }

// Len returns count of elements.
func (c *Capped[T]) Len() int { return len(c.data) }

// Cap returns fixed capacity.
func (c *Capped[T]) Cap() int { return cap(c.data) }

// At returns element at i.
func (c *Capped[T]) At(i int) T { return c.data[i] }

// Set replaces element at i with e.
func (c *Capped[T]) Set(i int, e T) { c.data[i] = e }

// Truncate shortens the vector to n elements. No-op if n >= Len().
func (c *Capped[T]) Truncate(n int) {
	if n >= len(c.data) {
		return
	}
	var zero T
	for i := n; i < len(c.data); i++ {
		c.data[i] = zero
	}
	c.data = c.data[:n]
}

// Clear removes all elements, keeping the backing storage.
func (c *Capped[T]) Clear() { c.Truncate(0) }

// Slice returns the backing slice.
//
// Unlike Vec, the result stays valid across pushes: the backing array
// never moves.
func (c *Capped[T]) Slice() []T { return c.data }

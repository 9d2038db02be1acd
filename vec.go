package contig

// Vec is a growable vector of T backed by a flat slice.
//
// The zero value is ready to use. Growth is amortized: pushing n elements
// performs O(log n) reallocations.
type Vec[T any] struct {
	data []T
}

// VecOf returns Vec with vs as initial elements.
func VecOf[T any](vs ...T) *Vec[T] {
	v := &Vec[T]{}
	v.PushN(vs)
	return v
}

// Push appends v to the end of the vector.
func (v *Vec[T]) Push(e T) {
	v.data = append(v.data, e)
}

// PushN appends all elements of vs.
func (v *Vec[T]) PushN(vs []T) {
	v.data = append(v.data, vs...)
}

// Pop removes and returns the last element.
//
// Returns zero value and false if the vector is empty.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if len(v.data) == 0 {
		return zero, false
	}
	e := v.data[len(v.data)-1]
	v.data[len(v.data)-1] = zero
	v.data = v.data[:len(v.data)-1]
	return e, true
}

// Insert inserts e before position i, shifting the tail right.
//
// Insert at Len() is equivalent to Push.
func (v *Vec[T]) Insert(i int, e T) {
	var zero T
	v.data = append(v.data, zero)
	copy(v.data[i+1:], v.data[i:])
	v.data[i] = e
}

// Remove removes and returns the element at i, shifting the tail left.
func (v *Vec[T]) Remove(i int) T {
	e := v.data[i]
	var zero T
	copy(v.data[i:], v.data[i+1:])
	v.data[len(v.data)-1] = zero
	v.data = v.data[:len(v.data)-1]
	return e
}

// SwapRemove removes and returns the element at i by moving the last
// element into its place. O(1), does not preserve order.
func (v *Vec[T]) SwapRemove(i int) T {
	e := v.data[i]
	var zero T
	v.data[i] = v.data[len(v.data)-1]
	v.data[len(v.data)-1] = zero
	v.data = v.data[:len(v.data)-1]
	return e
}

// Retain keeps only elements for which keep returns true, preserving
// order and capacity.
func (v *Vec[T]) Retain(keep func(e T) bool) {
	var zero T
	kept := v.data[:0]
	for _, e := range v.data {
		if keep(e) {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(v.data); i++ {
		v.data[i] = zero
	}
	v.data = kept
}

// Truncate shortens the vector to n elements, preserving capacity.
//
// No-op if n >= Len().
func (v *Vec[T]) Truncate(n int) {
	if n >= len(v.data) {
		return
	}
	var zero T
	for i := n; i < len(v.data); i++ {
		v.data[i] = zero
	}
	v.data = v.data[:n]
}

// Clear removes all elements, preserving capacity.
func (v *Vec[T]) Clear() {
	v.Truncate(0)
}

// Reserve ensures that n more elements can be pushed without
// reallocation.
func (v *Vec[T]) Reserve(n int) {
	if cap(v.data)-len(v.data) >= n {
		return
	}
	data := make([]T, len(v.data), len(v.data)+n)
	copy(data, v.data)
	v.data = data
}

// Clip removes unused capacity.
func (v *Vec[T]) Clip() {
	if len(v.data) == cap(v.data) {
		return
	}
	data := make([]T, len(v.data))
	copy(data, v.data)
	v.data = data
}

// Len returns count of elements.
func (v *Vec[T]) Len() int { return len(v.data) }

// Cap returns current capacity of the backing slice.
func (v *Vec[T]) Cap() int { return cap(v.data) }

// At returns element at i.
func (v *Vec[T]) At(i int) T { return v.data[i] }

// Set replaces element at i with e.
func (v *Vec[T]) Set(i int, e T) { v.data[i] = e }

// First returns the first element.
func (v *Vec[T]) First() T { return v.data[0] }

// Last returns the last element.
func (v *Vec[T]) Last() T { return v.data[len(v.data)-1] }

// Slice returns the backing slice.
//
// The returned slice aliases the vector until its next reallocation; do
// not retain it across Push.
func (v *Vec[T]) Slice() []T { return v.data }

// Clone returns a deep copy with exact capacity.
func (v *Vec[T]) Clone() *Vec[T] {
	data := make([]T, len(v.data))
	copy(data, v.data)
	return &Vec[T]{data: data}
}

// ForEach calls f on each element.
func (v *Vec[T]) ForEach(f func(i int, e T) error) error {
	for i, e := range v.data {
		if err := f(i, e); err != nil {
			return err
		}
	}
	return nil
}

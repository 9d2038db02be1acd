// Package contig implements containers for contiguous data: runs of
// same-typed elements stored back-to-back in memory.
//
// Three vector flavors cover the space between a plain slice and a fixed
// array:
//
//   - Vec is a growable vector, a thin discipline over append.
//   - Capped is backed by storage allocated once and refuses to grow.
//   - Small keeps up to 8 elements inline before touching the heap.
//
// For byte-only data with zero-copy splitting see the zbytes package.
package contig

// List is the operation set shared by all vector flavors.
type List[T any] interface {
	Push(v T)
	Pop() (T, bool)
	Len() int
	Cap() int
	At(i int) T
	Set(i int, v T)
	Truncate(n int)
	Clear()
	Slice() []T
}

// Compile-time assertions for vector flavors.
var (
	_ List[int] = (*Vec[int])(nil)
	_ List[int] = (*Small[int])(nil)
)

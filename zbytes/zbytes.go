// Package zbytes implements byte buffers with zero-copy splitting.
//
// Buffer accumulates writes; Split hands out regions of the written data
// as Bytes (immutable views) or Mut (writable halves) without copying the
// underlying array. Disjoint regions never alias each other and are safe
// to mutate from different goroutines.
package zbytes

import "encoding/binary"

var bin = binary.LittleEndian

const (
	boolTrue  = 1
	boolFalse = 0
)

package zbytes

import "bytes"

// Bytes is an immutable view of a shared backing array.
//
// Copying a Bytes copies the view, never the data. Sub-views created by
// Slice and Split alias the same backing array; immutability is what
// makes that sharing safe.
type Bytes struct {
	b []byte
}

// From wraps b without copying.
//
// The caller must not mutate b afterwards.
func From(b []byte) Bytes {
	return Bytes{b: b[:len(b):len(b)]}
}

// FromString returns view of the bytes of s.
func FromString(s string) Bytes {
	return Bytes{b: []byte(s)}
}

// Len returns count of bytes in view.
func (v Bytes) Len() int { return len(v.b) }

// At returns byte at i.
func (v Bytes) At(i int) byte { return v.b[i] }

// String returns contents as string, copying.
func (v Bytes) String() string { return string(v.b) }

// Slice returns sub-view of [lo, hi) without copying.
func (v Bytes) Slice(lo, hi int) Bytes {
	return Bytes{b: v.b[lo:hi:hi]}
}

// Split returns two disjoint views, [0, n) and [n, Len()), without
// copying.
func (v Bytes) Split(n int) (Bytes, Bytes) {
	return v.Slice(0, n), v.Slice(n, len(v.b))
}

// Copy returns a fresh copy of the viewed bytes.
//
// This is the only way to get a mutable []byte out of a view.
func (v Bytes) Copy() []byte {
	c := make([]byte, len(v.b))
	copy(c, v.b)
	return c
}

// Equal reports whether two views hold the same bytes.
func (v Bytes) Equal(o Bytes) bool {
	return bytes.Equal(v.b, o.b)
}

// Reader returns new *Reader decoding from the view.
func (v Bytes) Reader() *Reader {
	return NewReader(bytes.NewReader(v.b))
}

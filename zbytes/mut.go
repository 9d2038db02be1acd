package zbytes

// Mut is a writable fixed-size region detached from a Buffer.
//
// Its backing range is disjoint from the buffer that produced it and
// from any other Mut, so concurrent mutation of different halves needs
// no locking.
type Mut struct {
	b []byte
}

// Len returns count of bytes in the region.
func (m Mut) Len() int { return len(m.b) }

// At returns byte at i.
func (m Mut) At(i int) byte { return m.b[i] }

// Set replaces byte at i with x.
func (m Mut) Set(i int, x byte) { m.b[i] = x }

// Fill sets every byte of the region to x.
func (m Mut) Fill(x byte) {
	for i := range m.b {
		m.b[i] = x
	}
}

// CopyFrom copies p into the region starting at off, returning count of
// bytes copied.
func (m Mut) CopyFrom(off int, p []byte) int {
	return copy(m.b[off:], p)
}

// Split returns two disjoint writable halves, [0, n) and [n, Len()),
// without copying.
func (m Mut) Split(n int) (Mut, Mut) {
	return Mut{b: m.b[:n:n]}, Mut{b: m.b[n:len(m.b):len(m.b)]}
}

// Raw returns the backing slice of the region.
//
// The result aliases the region itself.
func (m Mut) Raw() []byte { return m.b }

// Freeze converts the region into an immutable view without copying.
//
// The Mut must not be used afterwards.
func (m Mut) Freeze() Bytes {
	return Bytes{b: m.b}
}

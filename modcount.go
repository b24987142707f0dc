package gocoll

// ModCount is the structural modification counter every container embeds.
// It is incremented exactly once per structural modification, i.e. a change in
// element count or topology. Replacing a value in place does not count.
//
// Cursors and views capture the count and compare it with the live value before
// every operation. The zero value is ready to use.
type ModCount struct {
	n int
}

// Count returns the current count.
func (m *ModCount) Count() int {
	return m.n
}

// Bump records one structural modification.
func (m *ModCount) Bump() {
	m.n++
}

// Verify returns a consistency fault if the live count differs from expected.
func (m *ModCount) Verify(expected int) error {
	if m.n != expected {
		return Comodification(expected, m.n)
	}
	return nil
}

// Tracked is implemented by every container owning a ModCount.
type Tracked interface {
	ModCount() int
}

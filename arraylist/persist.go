package arraylist

import (
	"github.com/npillmayer/gocoll"
)

// Kind is the kind tag of a saved List.
const Kind = "arraylist"

var _ gocoll.Saver[int] = (*List[int])(nil)

// SaveTo writes the size and capacity of the list, followed by its elements,
// first to last.
func (l *List[E]) SaveTo(sink gocoll.Sink[E]) error {
	expected := l.mods.Count()
	h := gocoll.Header{Kind: Kind, Size: l.size, Capacity: len(l.elementData)}
	if err := sink.WriteHeader(h); err != nil {
		return err
	}
	for i := 0; i < l.size; i++ {
		if err := sink.WriteElement(l.elementData[i]); err != nil {
			return err
		}
	}
	return l.mods.Verify(expected)
}

// Restore rebuilds a list from a saved state. The capacity of the new list is the
// saved size; the saved capacity is validated but not re-established.
func Restore[E any](src gocoll.Source[E], opts ...Option[E]) (*List[E], error) {
	h, err := src.ReadHeader()
	if err != nil {
		return nil, &gocoll.RestoreError{Kind: Kind, Reason: "reading header", Err: err}
	}
	if err = gocoll.ValidateHeader(Kind, h, true); err != nil {
		return nil, err
	}
	if h.Size > MaxArraySize {
		return nil, &gocoll.RestoreError{Kind: Kind, Reason: "size too large",
			Err: &gocoll.CapacityError{Required: h.Size, Max: MaxArraySize}}
	}
	l, err := NewWithCapacity[E](h.Size, opts...)
	if err != nil {
		return nil, err
	}
	err = gocoll.ReadElements(Kind, h, src, l.Append)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("restored list of size %d", l.size)
	return l, nil
}

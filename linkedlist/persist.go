package linkedlist

import (
	"github.com/npillmayer/gocoll"
)

// Kind is the kind tag of a saved List.
const Kind = "linkedlist"

var _ gocoll.Saver[int] = (*List[int])(nil)

// SaveTo writes the size of the list, followed by its elements, first to last.
func (l *List[E]) SaveTo(sink gocoll.Sink[E]) error {
	expected := l.mods.Count()
	if err := sink.WriteHeader(gocoll.Header{Kind: Kind, Size: l.size}); err != nil {
		return err
	}
	for x := l.first; x != nil; x = x.next {
		if err := sink.WriteElement(x.item); err != nil {
			return err
		}
	}
	return l.mods.Verify(expected)
}

// Restore rebuilds a list from a saved state.
func Restore[E any](src gocoll.Source[E], opts ...Option[E]) (*List[E], error) {
	h, err := src.ReadHeader()
	if err != nil {
		return nil, &gocoll.RestoreError{Kind: Kind, Reason: "reading header", Err: err}
	}
	if err = gocoll.ValidateHeader(Kind, h, false); err != nil {
		return nil, err
	}
	l := New[E](opts...)
	err = gocoll.ReadElements(Kind, h, src, func(e E) error {
		l.linkLast(e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	tracer().Debugf("restored list of size %d", l.size)
	return l, nil
}

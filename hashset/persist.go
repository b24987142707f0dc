package hashset

import (
	"github.com/npillmayer/gocoll"
)

// Kind is the kind tag of a saved Set.
const Kind = "hashset"

var _ gocoll.Saver[int] = (*Set[int])(nil)

// SaveTo writes the size of the set, followed by its elements in the order of the
// collaborator.
func (s *Set[E]) SaveTo(sink gocoll.Sink[E]) error {
	expected := s.mods.Count()
	keys := s.m.Keys()
	if err := sink.WriteHeader(gocoll.Header{Kind: Kind, Size: len(keys)}); err != nil {
		return err
	}
	for _, e := range keys {
		if err := sink.WriteElement(e); err != nil {
			return err
		}
	}
	return s.mods.Verify(expected)
}

// Restore rebuilds a set from a saved state into the empty collaborator m.
// Duplicate elements in the saved state are rejected.
func Restore[E any](src gocoll.Source[E], m Map[E, struct{}]) (*Set[E], error) {
	h, err := src.ReadHeader()
	if err != nil {
		return nil, &gocoll.RestoreError{Kind: Kind, Reason: "reading header", Err: err}
	}
	if err = gocoll.ValidateHeader(Kind, h, false); err != nil {
		return nil, err
	}
	s := NewWith(m)
	err = gocoll.ReadElements(Kind, h, src, func(e E) error {
		if added, _ := s.Add(e); !added {
			return &gocoll.RestoreError{Kind: Kind, Reason: "duplicate element"}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	tracer().Debugf("restored set of size %d", s.Size())
	return s, nil
}

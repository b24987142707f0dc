package gocoll

// --- Save/restore contract -------------------------------------------------

// Containers do not own a persistence format. They write their structural
// metadata and their elements (in iteration order) to a Sink, and rebuild
// themselves from a Source. Formats are provided by collaborators, e.g. package codec.

// Header is the structural metadata of a saved container.
type Header struct {
	Kind     string // kind of container, e.g. "arraylist"
	Size     int    // number of elements which follow
	Capacity int    // capacity of the backing array, if the container has one
}

// Sink receives the saved state of a container.
type Sink[E any] interface {
	WriteHeader(h Header) error
	WriteElement(e E) error
}

// Source delivers a saved state to a container.
type Source[E any] interface {
	ReadHeader() (Header, error)
	ReadElement() (E, error)
}

// Saver is implemented by containers which are able to save themselves.
type Saver[E any] interface {
	SaveTo(sink Sink[E]) error
}

// ValidateHeader checks the metadata of a saved container of a given kind.
// Negative sizes or capacities and a capacity smaller than the size are
// rejected. withCapacity tells if the kind records a capacity at all.
func ValidateHeader(kind string, h Header, withCapacity bool) error {
	if h.Kind != "" && h.Kind != kind {
		return &RestoreError{Kind: kind, Reason: "saved state is of kind " + h.Kind}
	}
	if h.Size < 0 {
		return &RestoreError{Kind: kind, Reason: "negative size"}
	}
	if withCapacity {
		if h.Capacity < 0 {
			return &RestoreError{Kind: kind, Reason: "negative capacity"}
		}
		if h.Capacity < h.Size {
			return &RestoreError{Kind: kind, Reason: "capacity smaller than size"}
		}
	}
	return nil
}

// ReadElements reads h.Size elements from a source and hands them to add.
func ReadElements[E any](kind string, h Header, src Source[E], add func(E) error) error {
	for i := 0; i < h.Size; i++ {
		e, err := src.ReadElement()
		if err != nil {
			return &RestoreError{Kind: kind, Reason: "reading element", Err: err}
		}
		if err = add(e); err != nil {
			return err
		}
	}
	return nil
}

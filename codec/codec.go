/*
Package codec saves containers as YAML documents and restores them.

A saved container is a document of the form

	kind: arraylist
	size: 3
	capacity: 10
	elements: [1, 2, 3]

Encoder is a gocoll.Sink and Decoder a gocoll.Source, so every container able
to save itself may be written, and every container with a Restore function may be
read:

	data, err := codec.Marshal[int](l)
	…
	dec, err := codec.NewDecoder[int](data)
	l2, err := arraylist.Restore[int](dec)

Element types have to be (un)marshallable by gopkg.in/yaml.v3.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/npillmayer/gocoll"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer traces with key 'gocoll.codec'.
func tracer() tracing.Trace {
	return tracing.Select("gocoll.codec")
}

// Document is the YAML representation of a saved container.
type Document[E any] struct {
	Kind     string `yaml:"kind"`
	Size     int    `yaml:"size"`
	Capacity int    `yaml:"capacity,omitempty"`
	Elements []E    `yaml:"elements"`
}

// --- Encoding --------------------------------------------------------------

// Encoder collects the saved state of a container.
type Encoder[E any] struct {
	doc    Document[E]
	header bool
}

var _ gocoll.Sink[int] = (*Encoder[int])(nil)

// WriteHeader is part of interface gocoll.Sink.
func (enc *Encoder[E]) WriteHeader(h gocoll.Header) error {
	if enc.header {
		return fmt.Errorf("%w: header written twice", gocoll.ErrIllegalState)
	}
	enc.doc = Document[E]{
		Kind:     h.Kind,
		Size:     h.Size,
		Capacity: h.Capacity,
		Elements: make([]E, 0, max(h.Size, 0)),
	}
	enc.header = true
	return nil
}

// WriteElement is part of interface gocoll.Sink.
func (enc *Encoder[E]) WriteElement(e E) error {
	if !enc.header {
		return fmt.Errorf("%w: element written before header", gocoll.ErrIllegalState)
	}
	enc.doc.Elements = append(enc.doc.Elements, e)
	return nil
}

// Document returns the collected state.
func (enc *Encoder[E]) Document() Document[E] {
	return enc.doc
}

// Encode writes the collected state to w.
func (enc *Encoder[E]) Encode(w io.Writer) error {
	if len(enc.doc.Elements) != enc.doc.Size {
		return fmt.Errorf("%w: %d elements written, header says %d", gocoll.ErrIllegalState,
			len(enc.doc.Elements), enc.doc.Size)
	}
	ye := yaml.NewEncoder(w)
	ye.SetIndent(2)
	if err := ye.Encode(enc.doc); err != nil {
		return err
	}
	return ye.Close()
}

// Marshal saves a container into a YAML document.
func Marshal[E any](s gocoll.Saver[E]) ([]byte, error) {
	enc := &Encoder[E]{}
	if err := s.SaveTo(enc); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := enc.Encode(&buf); err != nil {
		return nil, err
	}
	tracer().Debugf("marshalled %s of size %d", enc.doc.Kind, enc.doc.Size)
	return buf.Bytes(), nil
}

// --- Decoding --------------------------------------------------------------

// Decoder delivers the saved state of a container from a YAML document.
type Decoder[E any] struct {
	doc  Document[E]
	next int
}

var _ gocoll.Source[int] = (*Decoder[int])(nil)

// NewDecoder parses a YAML document.
func NewDecoder[E any](data []byte) (*Decoder[E], error) {
	return Decode[E](bytes.NewReader(data))
}

// Decode parses a YAML document from r.
func Decode[E any](r io.Reader) (*Decoder[E], error) {
	dec := &Decoder[E]{}
	if err := yaml.NewDecoder(r).Decode(&dec.doc); err != nil {
		return nil, fmt.Errorf("%w: malformed document: %w", gocoll.ErrIllegalArgument, err)
	}
	return dec, nil
}

// ReadHeader is part of interface gocoll.Source. A document whose number of
// elements disagrees with its recorded size is rejected.
func (dec *Decoder[E]) ReadHeader() (gocoll.Header, error) {
	h := gocoll.Header{Kind: dec.doc.Kind, Size: dec.doc.Size, Capacity: dec.doc.Capacity}
	if h.Size >= 0 && len(dec.doc.Elements) != h.Size {
		return h, fmt.Errorf("%w: document has %d elements, size is %d",
			gocoll.ErrIllegalArgument, len(dec.doc.Elements), h.Size)
	}
	return h, nil
}

// ReadElement is part of interface gocoll.Source.
func (dec *Decoder[E]) ReadElement() (E, error) {
	if dec.next >= len(dec.doc.Elements) {
		var zero E
		return zero, gocoll.ErrNoSuchElement
	}
	e := dec.doc.Elements[dec.next]
	dec.next++
	return e, nil
}

package pairing

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Kind tags the variant held by an [Element].
type Kind int

const (
	// KindInvalid marks an element without a payload.
	KindInvalid Kind = iota
	KindString
	KindZR
	KindG1
	KindG2
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "str"
	case KindZR:
		return "ZR"
	case KindG1:
		return "G1"
	case KindG2:
		return "G2"
	default:
		return "invalid type"
	}
}

// Element is one value of a [List]: a [Text], *[ZR], *[G1] or *[G2]. The
// set of variants is closed. The kind follows from the Go type, so tag
// and payload cannot disagree.
type Element interface {
	// Kind returns the variant tag, or KindInvalid for a nil payload.
	Kind() Kind
	String() string
	clone() Element
}

// Text is a string element.
type Text string

// Kind returns KindString.
func (t Text) Kind() Kind { return KindString }

func (t Text) String() string { return string(t) }

func (t Text) clone() Element { return t }

// Kind returns KindZR, or KindInvalid if z carries no scalar.
func (z *ZR) Kind() Kind {
	if z == nil || z.s == nil {
		return KindInvalid
	}
	return KindZR
}

func (z *ZR) clone() Element {
	if z.Kind() == KindInvalid {
		return z
	}
	return z.g.wrapZR(z.g.curve.NewScalar().Set(z.s))
}

// Kind returns KindG1, or KindInvalid if g carries no point.
func (g *G1) Kind() Kind {
	if g == nil || g.p == nil {
		return KindInvalid
	}
	return KindG1
}

func (g *G1) clone() Element {
	if g.Kind() == KindInvalid {
		return g
	}
	return g.g.wrapG1(g.g.curve.NewG1().Set(g.p))
}

// Kind returns KindG2, or KindInvalid if g carries no point.
func (g *G2) Kind() Kind {
	if g == nil || g.p == nil {
		return KindInvalid
	}
	return KindG2
}

func (g *G2) clone() Element {
	if g.Kind() == KindInvalid {
		return g
	}
	return g.g.wrapG2(g.g.newG2().Set(g.p))
}

// List is an ordered, append-only sequence of elements, used to pass
// heterogeneous argument lists around. Appending copies the value, so a
// List never shares a payload with its caller.
//
// The zero List is empty and ready to use. A List is not safe for
// concurrent mutation.
type List struct {
	elems []Element
}

// NewList returns an empty List with room for capacity elements.
func NewList(capacity int) *List {
	return &List{elems: make([]Element, 0, max(capacity, 0))}
}

// Append adds a copy of e at the end of l.
func (l *List) Append(e Element) {
	if e != nil {
		e = e.clone()
	}
	l.elems = append(l.elems, e)
}

// AppendString appends a string element.
func (l *List) AppendString(s string) { l.Append(Text(s)) }

// AppendZR appends a copy of z.
func (l *List) AppendZR(z *ZR) { l.Append(z) }

// AppendG1 appends a copy of g.
func (l *List) AppendG1(g *G1) { l.Append(g) }

// AppendG2 appends a copy of g.
func (l *List) AppendG2(g *G2) { l.Append(g) }

// Len returns the number of elements in l.
func (l *List) Len() int { return len(l.elems) }

// Cap returns the number of elements l can hold before growing.
func (l *List) Cap() int { return cap(l.elems) }

// Get returns the element at index i. An index outside [0, Len()) returns
// an error wrapping [ErrIndexOutOfRange].
func (l *List) Get(i int) (Element, error) {
	if i < 0 || i >= len(l.elems) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(l.elems))
	}
	return l.elems[i], nil
}

// All iterates over the index and element of every populated slot.
func (l *List) All() iter.Seq2[int, Element] {
	return func(yield func(int, Element) bool) {
		for i, e := range l.elems {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Reset removes every element, keeping the allocated capacity.
func (l *List) Reset() {
	clear(l.elems)
	l.elems = l.elems[:0]
}

// Dump writes one line per element, "<index>: <value>". An element
// without a payload is written as "invalid type".
func (l *List) Dump(w io.Writer) error {
	for i, e := range l.elems {
		if _, err := fmt.Fprintf(w, "%d: %s\n", i, render(e)); err != nil {
			return err
		}
	}
	return nil
}

// String returns the output of Dump.
func (l *List) String() string {
	var sb strings.Builder
	_ = l.Dump(&sb)
	return sb.String()
}

func render(e Element) string {
	if e == nil || e.Kind() == KindInvalid {
		return KindInvalid.String()
	}
	return e.String()
}

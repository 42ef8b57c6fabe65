// Package jsonast is a location-annotated syntax tree for JSON documents.
//
// Every node except the Document wrapper carries a Span. Lines and columns are
// 1-indexed; columns and offsets count bytes. Character is the 0-indexed column
// in UTF-16 code units, the unit LSP clients use. A span's End is exclusive,
// and the span of a string literal includes its quotes.
package jsonast

type Kind int

const (
	KindObject Kind = iota
	KindArray
	KindLiteral
	KindProperty
	KindIdentifier
)

func (k Kind) String() string {
	switch k {
	case KindObject:
		return "Object"
	case KindArray:
		return "Array"
	case KindLiteral:
		return "Literal"
	case KindProperty:
		return "Property"
	case KindIdentifier:
		return "Identifier"
	default:
		return "Unknown"
	}
}

// Position is a point in the source text.
type Position struct {
	Line      int
	Column    int
	Offset    int
	Character int
}

// Span is the source extent of a node.
type Span struct {
	Start Position
	End   Position
}

// IsZero reports whether the span carries no location, which happens for
// nodes synthesized by the parser rather than read from the text.
func (s Span) IsZero() bool {
	return s.Start.Line == 0 && s.End.Line == 0
}

// SingleLine reports whether the span starts and ends on the same line.
func (s Span) SingleLine() bool {
	return s.Start.Line == s.End.Line
}

type Node interface {
	Kind() Kind
	Span() Span
}

// Document wraps the root value of a parsed text.
type Document struct {
	Root Node
}

type Object struct {
	Children []*Property
	Loc      Span
}

func (o *Object) Kind() Kind { return KindObject }
func (o *Object) Span() Span { return o.Loc }

// Property returns the first property named key, in document order.
func (o *Object) Property(key string) (*Property, bool) {
	for _, child := range o.Children {
		if child.Key != nil && child.Key.Value == key {
			return child, true
		}
	}
	return nil, false
}

type Array struct {
	Children []Node
	Loc      Span
}

func (a *Array) Kind() Kind { return KindArray }
func (a *Array) Span() Span { return a.Loc }

type Property struct {
	Key   *Identifier
	Value Node
	Loc   Span
}

func (p *Property) Kind() Kind { return KindProperty }
func (p *Property) Span() Span { return p.Loc }

// Identifier is an object key.
type Identifier struct {
	Value string
	Raw   string
	Loc   Span
}

func (i *Identifier) Kind() Kind { return KindIdentifier }
func (i *Identifier) Span() Span { return i.Loc }

// Literal is a scalar. Value holds a string, float64, bool, or nil. Raw is the
// exact source text, or empty when the location was unavailable.
type Literal struct {
	Value any
	Raw   string
	Loc   Span
}

func (l *Literal) Kind() Kind { return KindLiteral }
func (l *Literal) Span() Span { return l.Loc }

// String returns the literal's value when it is a string.
func (l *Literal) String() (string, bool) {
	s, ok := l.Value.(string)
	return s, ok
}

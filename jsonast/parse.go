package jsonast

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrParse wraps every failure returned by Parse.
var ErrParse = errors.New("json parse failed")

// Parse converts JSON text into a location-annotated tree. The text must be
// strict JSON; Jsonnet and JSON5 extensions are rejected. Duplicate keys are
// kept in document order.
func Parse(text string) (*Document, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty document", ErrParse)
	}
	if !json.Valid([]byte(text)) {
		return nil, fmt.Errorf("%w: invalid json", ErrParse)
	}

	decoder := json.NewDecoder(strings.NewReader(text))
	decoder.UseNumber()
	p := parser{text: text, lines: lineStarts(text), decoder: decoder}

	root, err := p.value()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after document", ErrParse)
	}
	return &Document{Root: root}, nil
}

type parser struct {
	text    string
	lines   []int
	decoder *json.Decoder
}

// next reads one token and returns it with its byte extent. The decoder
// consumes separators while looking for the next token, so the start is found
// by skipping them from the offset where the previous token ended.
func (p *parser) next() (json.Token, int, int, error) {
	start := p.skipSeparators(int(p.decoder.InputOffset()))
	token, err := p.decoder.Token()
	if err != nil {
		return nil, 0, 0, err
	}
	return token, start, int(p.decoder.InputOffset()), nil
}

func (p *parser) skipSeparators(offset int) int {
	for offset < len(p.text) {
		switch p.text[offset] {
		case ' ', '\t', '\n', '\r', ',', ':':
			offset++
		default:
			return offset
		}
	}
	return offset
}

func (p *parser) value() (Node, error) {
	token, start, end, err := p.next()
	if err != nil {
		return nil, err
	}

	switch t := token.(type) {
	case json.Delim:
		switch t {
		case '{':
			return p.object(start)
		case '[':
			return p.array(start)
		default:
			return nil, fmt.Errorf("unexpected %q at offset %d", t, start)
		}
	case json.Number:
		// Out-of-range numbers are still valid JSON; they become infinities.
		value, _ := strconv.ParseFloat(t.String(), 64)
		return p.literal(value, start, end), nil
	case string, bool, nil:
		return p.literal(t, start, end), nil
	default:
		return nil, fmt.Errorf("unexpected token %T at offset %d", token, start)
	}
}

func (p *parser) object(start int) (*Object, error) {
	object := &Object{}
	for p.decoder.More() {
		token, keyStart, keyEnd, err := p.next()
		if err != nil {
			return nil, err
		}
		key, ok := token.(string)
		if !ok {
			return nil, fmt.Errorf("expected key at offset %d", keyStart)
		}
		value, err := p.value()
		if err != nil {
			return nil, err
		}
		keySpan := p.span(keyStart, keyEnd)
		object.Children = append(object.Children, &Property{
			Key:   &Identifier{Value: key, Raw: p.raw(keySpan), Loc: keySpan},
			Value: value,
			Loc:   p.span(keyStart, value.Span().End.Offset),
		})
	}

	end, err := p.closing('}')
	if err != nil {
		return nil, err
	}
	object.Loc = p.span(start, end)
	return object, nil
}

func (p *parser) array(start int) (*Array, error) {
	array := &Array{}
	for p.decoder.More() {
		child, err := p.value()
		if err != nil {
			return nil, err
		}
		array.Children = append(array.Children, child)
	}

	end, err := p.closing(']')
	if err != nil {
		return nil, err
	}
	array.Loc = p.span(start, end)
	return array, nil
}

func (p *parser) closing(delim json.Delim) (int, error) {
	token, start, end, err := p.next()
	if err != nil {
		return 0, err
	}
	if token != delim {
		return 0, fmt.Errorf("expected %q at offset %d", delim, start)
	}
	return end, nil
}

func (p *parser) literal(value any, start int, end int) *Literal {
	span := p.span(start, end)
	return &Literal{Value: value, Raw: p.raw(span), Loc: span}
}

func (p *parser) span(start int, end int) Span {
	return Span{
		Start: p.position(start),
		End:   p.position(end),
	}
}

func (p *parser) position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(p.text) {
		offset = len(p.text)
	}
	line := sort.Search(len(p.lines), func(i int) bool {
		return p.lines[i] > offset
	}) - 1
	lineStart := p.lines[line]
	return Position{
		Line:      line + 1,
		Column:    offset - lineStart + 1,
		Offset:    offset,
		Character: utf16Len(p.text[lineStart:offset]),
	}
}

func (p *parser) raw(span Span) string {
	if span.IsZero() || span.End.Offset < span.Start.Offset {
		return ""
	}
	return p.text[span.Start.Offset:span.End.Offset]
}

// utf16Len counts s in UTF-16 code units.
func utf16Len(s string) int {
	units := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
		i += size
	}
	return units
}

// lineStarts returns the byte offset at which each line begins.
func lineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

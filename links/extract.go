// Package links derives question links from infoAssessment.json documents.
package links

import (
	"strings"

	"github.com/op/go-logging"

	"github.com/PrairieLearn/vscode-prairielearn/course"
	"github.com/PrairieLearn/vscode-prairielearn/jsonast"
)

var log = logging.MustGetLogger("links")

// Point is a 0-indexed line and character.
type Point struct {
	Line      int
	Character int
}

// Range is half-open: Start is inclusive, End is exclusive.
type Range struct {
	Start Point
	End   Point
}

func (r Range) Contains(p Point) bool {
	if p.Line < r.Start.Line || p.Line > r.End.Line {
		return false
	}
	if p.Line == r.Start.Line && p.Character < r.Start.Character {
		return false
	}
	if p.Line == r.End.Line && p.Character >= r.End.Character {
		return false
	}
	return true
}

// Touches is Contains with an inclusive end, so a caret sitting just after the
// last character still counts.
func (r Range) Touches(p Point) bool {
	return r.Contains(p) || p == r.End
}

// Link points the text of a question id at the question's file.
type Link struct {
	Range  Range
	Target string
	QID    string
}

// Extract walks zones[*].questions[*].id and returns one link per usable id,
// in document order. Entries of the wrong shape are skipped at the smallest
// enclosing scope.
func Extract(root *jsonast.Object, projectRoot string) []Link {
	zones, ok := arrayProperty(root, "zones")
	if !ok {
		log.Debug("document has no zones array")
		return nil
	}

	var links []Link
	for _, zone := range zones.Children {
		zoneObject, ok := zone.(*jsonast.Object)
		if !ok {
			continue
		}
		questions, ok := arrayProperty(zoneObject, "questions")
		if !ok {
			continue
		}
		links = append(links, questionLinks(questions, projectRoot)...)
	}
	return links
}

func questionLinks(questions *jsonast.Array, projectRoot string) []Link {
	var links []Link
	for _, question := range questions.Children {
		questionObject, ok := question.(*jsonast.Object)
		if !ok {
			continue
		}
		property, ok := questionObject.Property("id")
		if !ok {
			continue
		}
		literal, ok := property.Value.(*jsonast.Literal)
		if !ok {
			continue
		}
		if link, ok := linkFor(literal, projectRoot); ok {
			links = append(links, link)
		}
	}
	return links
}

func arrayProperty(object *jsonast.Object, key string) (*jsonast.Array, bool) {
	property, ok := object.Property(key)
	if !ok {
		return nil, false
	}
	array, ok := property.Value.(*jsonast.Array)
	return array, ok
}

// linkFor handles single-line, double-quoted ids without escapes; anything
// else yields no link because its display range cannot be derived from the
// literal's columns.
func linkFor(literal *jsonast.Literal, projectRoot string) (Link, bool) {
	qid, ok := literal.String()
	if !ok {
		log.Debugf("skipping non-string id %s", literal.Raw)
		return Link{}, false
	}
	span := literal.Span()
	if span.IsZero() || !span.SingleLine() || !plainQuoted(literal.Raw, qid) {
		log.Debugf("skipping unsupported id literal %q", literal.Raw)
		return Link{}, false
	}

	// The literal's span covers both quotes, each one UTF-16 unit wide.
	start := Point{Line: span.Start.Line - 1, Character: span.Start.Character + 1}
	end := Point{Line: span.End.Line - 1, Character: span.End.Character - 1}

	return Link{
		Range:  Range{Start: start, End: end},
		Target: course.QuestionPath(projectRoot, qid),
		QID:    qid,
	}, true
}

func plainQuoted(raw string, value string) bool {
	return len(raw) == len(value)+2 &&
		strings.HasPrefix(raw, `"`) &&
		strings.HasSuffix(raw, `"`) &&
		raw[1:len(raw)-1] == value
}

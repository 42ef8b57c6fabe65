package links

import (
	contextpkg "context"

	"github.com/PrairieLearn/vscode-prairielearn/course"
	"github.com/PrairieLearn/vscode-prairielearn/jsonast"
)

// Status says why a Result carries the links it does.
type Status int

const (
	// StatusLinked means the document was eligible; Links may still be empty.
	StatusLinked Status = iota
	StatusNotAssessment
	StatusNoCourse
	StatusParseFailed
	StatusNotObject
)

func (s Status) String() string {
	switch s {
	case StatusLinked:
		return "linked"
	case StatusNotAssessment:
		return "not an assessment"
	case StatusNoCourse:
		return "no course root"
	case StatusParseFailed:
		return "parse failed"
	case StatusNotObject:
		return "root is not an object"
	default:
		return "unknown"
	}
}

type Result struct {
	Status Status
	Links  []Link
}

// Document is one link request: the file path, the workspace folder bounding
// the root search, and the current text.
type Document struct {
	Path     string
	Boundary string
	Text     string
}

// Provider runs the link pipeline. It keeps no per-request state.
type Provider struct {
	locator *course.Locator
}

func NewProvider(locator *course.Locator) *Provider {
	return &Provider{locator: locator}
}

func (self *Provider) Locator() *course.Locator {
	return self.locator
}

// DocumentLinks returns the question links of document. It never fails;
// every problem degrades to fewer links and is reported through Status.
func (self *Provider) DocumentLinks(context contextpkg.Context, document Document) Result {
	if !course.IsAssessmentFile(document.Path) {
		return Result{Status: StatusNotAssessment}
	}
	if document.Boundary == "" {
		log.Debugf("no workspace boundary for %s", document.Path)
		return Result{Status: StatusNoCourse}
	}

	root, ok := self.locator.FindRootForFile(context, document.Boundary, document.Path)
	if !ok {
		return Result{Status: StatusNoCourse}
	}

	parsed, err := jsonast.Parse(document.Text)
	if err != nil {
		log.Debugf("%s: %s", document.Path, err.Error())
		return Result{Status: StatusParseFailed}
	}

	object, ok := parsed.Root.(*jsonast.Object)
	if !ok {
		return Result{Status: StatusNotObject}
	}

	links := Extract(object, root)
	log.Debugf("%s: %d question links", document.Path, len(links))
	return Result{Status: StatusLinked, Links: links}
}

// LinkAt returns the link whose range touches point. Point is in the same
// UTF-16 units as link ranges.
func (self *Provider) LinkAt(context contextpkg.Context, document Document, point Point) (Link, bool) {
	for _, link := range self.DocumentLinks(context, document).Links {
		if link.Range.Touches(point) {
			return link, true
		}
	}
	return Link{}, false
}

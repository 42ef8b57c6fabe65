package implementation

import (
	contextpkg "context"
	"fmt"

	"fortio.org/safecast"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/PrairieLearn/vscode-prairielearn/links"
)

// TextDocumentDocumentLink implements protocol.TextDocumentDocumentLinkFunc
func TextDocumentDocumentLink(context *glsp.Context, params *protocol.DocumentLinkParams) ([]protocol.DocumentLink, error) {
	documentLinks := []protocol.DocumentLink{}

	doc, ok := resolveDocument(params.TextDocument.URI)
	if !ok {
		return documentLinks, nil
	}

	result := linkProvider.DocumentLinks(contextpkg.Background(), doc.linkDocument())
	if result.Status != links.StatusLinked {
		log.Debugf("%s: %s", doc.Path, result.Status)
		return documentLinks, nil
	}

	for _, link := range result.Links {
		target := pathToURI(link.Target)
		tooltip := fmt.Sprintf("Open question %s", link.QID)
		documentLinks = append(documentLinks, protocol.DocumentLink{
			Range:   toProtocolRange(link.Range),
			Target:  &target,
			Tooltip: &tooltip,
		})
	}
	return documentLinks, nil
}

// TextDocumentDefinition implements protocol.TextDocumentDefinitionFunc
func TextDocumentDefinition(context *glsp.Context, params *protocol.DefinitionParams) (any, error) {
	doc, ok := resolveDocument(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	point := links.Point{
		Line:      int(params.Position.Line),
		Character: int(params.Position.Character),
	}
	link, ok := linkProvider.LinkAt(contextpkg.Background(), doc.linkDocument(), point)
	if !ok {
		return nil, nil
	}

	return protocol.Location{
		URI:   pathToURI(link.Target),
		Range: protocol.Range{},
	}, nil
}

func toProtocolRange(r links.Range) protocol.Range {
	return protocol.Range{
		Start: toProtocolPosition(r.Start),
		End:   toProtocolPosition(r.End),
	}
}

func toProtocolPosition(p links.Point) protocol.Position {
	return protocol.Position{
		Line:      uinteger(p.Line),
		Character: uinteger(p.Character),
	}
}

// uinteger clamps n into protocol.UInteger.
func uinteger(n int) protocol.UInteger {
	if n < 0 {
		return 0
	}
	v, err := safecast.Conv[protocol.UInteger](n)
	if err != nil {
		return ^protocol.UInteger(0)
	}
	return v
}

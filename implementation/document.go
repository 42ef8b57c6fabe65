package implementation

import (
	"github.com/spf13/afero"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/PrairieLearn/vscode-prairielearn/links"
)

// document is a text document as the link pipeline sees it.
type document struct {
	URI      protocol.DocumentUri
	Path     string
	Boundary string
	Content  string
}

// resolveDocument gathers path, workspace boundary, and text for uri. Text
// comes from the open-document store, falling back to the file on disk.
func resolveDocument(uri protocol.DocumentUri) (*document, bool) {
	path := uriToPath(uri)
	if path == "" {
		log.Debugf("ignoring non-file document %s", uri)
		return nil, false
	}

	content, ok := getDocument(uri)
	if !ok {
		data, err := afero.ReadFile(linkProvider.Locator().Fs(), path)
		if err != nil {
			log.Debugf("cannot read %s: %s", path, err.Error())
			return nil, false
		}
		content = string(data)
	}

	return &document{
		URI:      uri,
		Path:     path,
		Boundary: boundaryFor(path),
		Content:  content,
	}, true
}

func (self *document) linkDocument() links.Document {
	return links.Document{
		Path:     self.Path,
		Boundary: self.Boundary,
		Text:     self.Content,
	}
}

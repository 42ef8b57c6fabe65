// Package implementation holds the language server's LSP handlers.
package implementation

import (
	"github.com/op/go-logging"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/PrairieLearn/vscode-prairielearn/course"
	"github.com/PrairieLearn/vscode-prairielearn/links"
)

const Name = "prairielearn-lsp"

var log = logging.MustGetLogger("implementation")

// Version is reported in the initialize response.
var Version = "dev"

// Handler dispatches LSP requests to the functions in this package.
var Handler protocol.Handler

var linkProvider = links.NewProvider(course.NewOSLocator())

func init() {
	Handler = protocol.Handler{
		Initialize:  Initialize,
		Initialized: Initialized,
		Shutdown:    Shutdown,
		SetTrace:    SetTrace,

		WorkspaceDidChangeWorkspaceFolders: WorkspaceDidChangeWorkspaceFolders,

		TextDocumentDidOpen:   TextDocumentDidOpen,
		TextDocumentDidChange: TextDocumentDidChange,
		TextDocumentDidSave:   TextDocumentDidSave,
		TextDocumentDidClose:  TextDocumentDidClose,

		TextDocumentDocumentLink: TextDocumentDocumentLink,
		TextDocumentDefinition:   TextDocumentDefinition,
	}
}

// SetLinkProvider replaces the pipeline used by the link and definition
// handlers.
func SetLinkProvider(provider *links.Provider) {
	linkProvider = provider
}

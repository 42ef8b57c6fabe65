package implementation

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// WorkspaceDidChangeWorkspaceFolders implements protocol.WorkspaceDidChangeWorkspaceFoldersFunc
func WorkspaceDidChangeWorkspaceFolders(context *glsp.Context, params *protocol.DidChangeWorkspaceFoldersParams) error {
	for _, folder := range params.Event.Removed {
		if path := uriToPath(folder.URI); path != "" {
			removeWorkspaceFolder(path)
		}
	}
	for _, folder := range params.Event.Added {
		if path := uriToPath(folder.URI); path != "" {
			addWorkspaceFolder(path)
		}
	}
	log.Debugf("workspace folders now %v", workspaceFolders())
	return nil
}

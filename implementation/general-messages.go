package implementation

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// protocol.InitializeFunc signature
func Initialize(context *glsp.Context, params *protocol.InitializeParams) (any, error) {
	setWorkspaceFolders(initialWorkspaceFolders(params))
	if params.Trace != nil {
		protocol.SetTraceValue(*params.Trace)
	}

	capabilities := Handler.CreateServerCapabilities()
	capabilities.DefinitionProvider = true
	capabilities.Workspace = &protocol.ServerCapabilitiesWorkspace{
		WorkspaceFolders: &protocol.WorkspaceFoldersServerCapabilities{
			Supported:           &protocol.True,
			ChangeNotifications: &protocol.BoolOrString{Value: true},
		},
	}

	version := Version
	return &protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    Name,
			Version: &version,
		},
	}, nil
}

// protocol.InitializedFunc signature
func Initialized(context *glsp.Context, params *protocol.InitializedParams) error {
	log.Infof("initialized with workspace folders %v", workspaceFolders())
	return nil
}

// protocol.ShutdownFunc signature
func Shutdown(context *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

// protocol.SetTraceFunc signature
func SetTrace(context *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// initialWorkspaceFolders prefers workspaceFolders, then rootUri, then the
// deprecated rootPath.
func initialWorkspaceFolders(params *protocol.InitializeParams) []string {
	var folders []string
	for _, folder := range params.WorkspaceFolders {
		if path := uriToPath(folder.URI); path != "" {
			folders = append(folders, path)
		}
	}
	if len(folders) > 0 {
		return folders
	}
	if params.RootURI != nil {
		if path := uriToPath(*params.RootURI); path != "" {
			return []string{path}
		}
	}
	if params.RootPath != nil && *params.RootPath != "" {
		return []string{uriToPath(*params.RootPath)}
	}
	return nil
}

package implementation

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

var documents sync.Map // protocol.DocumentUri to string

func setDocument(uri protocol.DocumentUri, content string) {
	documents.Store(uri, content)
}

func getDocument(uri protocol.DocumentUri) (string, bool) {
	if content, ok := documents.Load(uri); ok {
		return content.(string), true
	}
	return "", false
}

func deleteDocument(uri protocol.DocumentUri) {
	documents.Delete(uri)
}

var folders struct {
	lock  sync.RWMutex
	paths []string
}

func setWorkspaceFolders(paths []string) {
	folders.lock.Lock()
	defer folders.lock.Unlock()
	folders.paths = nil
	for _, path := range paths {
		folders.paths = appendFolder(folders.paths, path)
	}
}

func addWorkspaceFolder(path string) {
	folders.lock.Lock()
	defer folders.lock.Unlock()
	folders.paths = appendFolder(folders.paths, path)
}

func removeWorkspaceFolder(path string) {
	folders.lock.Lock()
	defer folders.lock.Unlock()
	path = filepath.Clean(path)
	kept := folders.paths[:0]
	for _, folder := range folders.paths {
		if folder != path {
			kept = append(kept, folder)
		}
	}
	folders.paths = kept
}

func workspaceFolders() []string {
	folders.lock.RLock()
	defer folders.lock.RUnlock()
	return append([]string(nil), folders.paths...)
}

// boundaryFor returns the deepest workspace folder containing path, or "".
func boundaryFor(path string) string {
	folders.lock.RLock()
	defer folders.lock.RUnlock()
	for _, folder := range folders.paths {
		if isWithin(path, folder) {
			return folder
		}
	}
	return ""
}

// appendFolder keeps folders unique and ordered deepest first.
func appendFolder(paths []string, path string) []string {
	path = filepath.Clean(path)
	for _, existing := range paths {
		if existing == path {
			return paths
		}
	}
	paths = append(paths, path)
	sort.SliceStable(paths, func(i, j int) bool {
		return len(paths[i]) > len(paths[j])
	})
	return paths
}

func isWithin(path string, folder string) bool {
	rel, err := filepath.Rel(folder, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

package course

import (
	contextpkg "context"
	"path/filepath"

	"github.com/spf13/afero"
)

// Locator finds course roots on a filesystem. It holds no state besides the
// filesystem, so one Locator may serve concurrent requests.
type Locator struct {
	fs afero.Fs
}

func NewLocator(fs afero.Fs) *Locator {
	return &Locator{fs: fs}
}

func NewOSLocator() *Locator {
	return NewLocator(afero.NewOsFs())
}

// Fs exposes the filesystem the locator searches.
func (self *Locator) Fs() afero.Fs {
	return self.fs
}

// IsRegularFile reports whether path exists and is a regular file. Any stat
// failure counts as "not a file".
func (self *Locator) IsRegularFile(path string) bool {
	info, err := self.fs.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// FindRoot walks from startDir towards boundaryDir and returns the first
// directory containing MarkerFile. The boundary itself is checked before the
// walk gives up. Callers must pass a boundary that is an ancestor of (or equal
// to) startDir; otherwise the walk stops at the filesystem root.
func (self *Locator) FindRoot(context contextpkg.Context, boundaryDir string, startDir string) (string, bool) {
	boundaryDir = filepath.Clean(boundaryDir)
	dir := filepath.Clean(startDir)

	for {
		if context.Err() != nil {
			log.Debugf("root search cancelled at %s", dir)
			return "", false
		}

		marker := filepath.Join(dir, MarkerFile)
		if self.IsRegularFile(marker) {
			log.Debugf("found course root %s", dir)
			return dir, true
		}

		if dir == boundaryDir {
			log.Debugf("no %s between %s and %s", MarkerFile, startDir, boundaryDir)
			return "", false
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			log.Debugf("reached %s without meeting boundary %s", dir, boundaryDir)
			return "", false
		}
		dir = parent
	}
}

// FindRootForFile starts the walk at the directory containing filePath.
func (self *Locator) FindRootForFile(context contextpkg.Context, boundaryDir string, filePath string) (string, bool) {
	return self.FindRoot(context, boundaryDir, filepath.Dir(filePath))
}

package vault

import (
	"sync"

	"github.com/fbkclanna/vaultdvc/internal/metrics"
)

// Lister lists the files of a vault.
type Lister interface {
	ListFiles() ([]File, error)
}

// Index is the set of marker files found by the last refresh. It is a
// disposable snapshot: every refresh recomputes it from a full file listing.
type Index struct {
	lister Lister

	mu      sync.RWMutex
	markers []MarkerFile
}

// NewIndex creates an empty index backed by lister.
func NewIndex(lister Lister) *Index {
	return &Index{lister: lister}
}

// Refresh lists the vault and rebuilds the index.
func (x *Index) Refresh() error {
	files, err := x.lister.ListFiles()
	if err != nil {
		return err
	}
	x.RefreshFrom(files)
	return nil
}

// RefreshFrom replaces the index with the marker files among all.
func (x *Index) RefreshFrom(all []File) {
	markers := make([]MarkerFile, 0)
	for _, f := range all {
		if f.IsMarker() {
			markers = append(markers, f)
		}
	}
	x.mu.Lock()
	x.markers = markers
	x.mu.Unlock()
	metrics.SetTrackedFiles(len(markers))
}

// Ensure refreshes the index if it is empty. An index that is still empty
// afterwards is valid: the vault tracks nothing yet.
func (x *Index) Ensure() error {
	if x.Len() > 0 {
		return nil
	}
	return x.Refresh()
}

// Current returns a copy of the indexed marker files.
func (x *Index) Current() []MarkerFile {
	x.mu.RLock()
	defer x.mu.RUnlock()
	cp := make([]MarkerFile, len(x.markers))
	copy(cp, x.markers)
	return cp
}

// Len returns the number of indexed marker files.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.markers)
}

// FindByBasename returns the first marker whose basename equals name exactly.
func (x *Index) FindByBasename(name string) (MarkerFile, bool) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	for _, m := range x.markers {
		if m.Basename == name {
			return m, true
		}
	}
	return MarkerFile{}, false
}

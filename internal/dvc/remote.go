package dvc

import (
	"strings"
	"sync"
)

// RemoteRecord is one entry of `dvc remote list`.
type RemoteRecord struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// ParseRemoteList parses tab-delimited remote list output. Each non-empty
// line yields one record split on the first tab; a line without a tab yields
// a record with an empty path.
func ParseRemoteList(out string) []RemoteRecord {
	records := []RemoteRecord{}
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		name, path, _ := strings.Cut(line, "\t")
		records = append(records, RemoteRecord{Name: name, Path: path})
	}
	return records
}

// RemoteRegistry holds the most recently listed remotes.
type RemoteRegistry struct {
	mu      sync.RWMutex
	records []RemoteRecord
}

// Replace discards the held records and stores rs.
func (r *RemoteRegistry) Replace(rs []RemoteRecord) {
	cp := make([]RemoteRecord, len(rs))
	copy(cp, rs)
	r.mu.Lock()
	r.records = cp
	r.mu.Unlock()
}

// List returns a copy of the held records.
func (r *RemoteRegistry) List() []RemoteRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cp := make([]RemoteRecord, len(r.records))
	copy(cp, r.records)
	return cp
}

// Lookup returns the record with the given name.
func (r *RemoteRegistry) Lookup(name string) (RemoteRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.Name == name {
			return rec, true
		}
	}
	return RemoteRecord{}, false
}

package document

import (
	"context"
	"fmt"
)

type InMemorySource struct {
	// relative file path used as source identity
	Path    string
	Content string
}

// InMemoryDiscovery is a test implementation of Discovery that stores data in memory
type InMemoryDiscovery struct {
	metas    map[SourceID]*SourceMetadata
	contents map[SourceID]string
}

// NewInMemoryDiscovery creates a new InMemoryDiscovery instance
func NewInMemoryDiscovery(srcs []InMemorySource) *InMemoryDiscovery {
	discovery := &InMemoryDiscovery{
		metas:    make(map[SourceID]*SourceMetadata),
		contents: make(map[SourceID]string),
	}
	for _, src := range srcs {
		id := SourceID(src.Path)
		discovery.metas[id] = &SourceMetadata{ID: id, FilePath: src.Path}
		discovery.contents[id] = src.Content
	}
	return discovery
}

// ListSources implements Discovery interface
func (d *InMemoryDiscovery) ListSources(ctx context.Context) ([]*SourceMetadata, error) {
	srcs := make([]*SourceMetadata, 0, len(d.metas))
	for _, src := range d.metas {
		srcs = append(srcs, src)
	}
	return srcs, nil
}

// ReadSource implements Discovery interface
func (d *InMemoryDiscovery) ReadSource(ctx context.Context, id SourceID) (string, error) {
	content, exists := d.contents[id]
	if !exists {
		return "", fmt.Errorf("source %q not found", id)
	}
	return content, nil
}

package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileSystemDiscovery implements Discovery for on-disk GraphQL documents
type FileSystemDiscovery struct {
	srcFilePaths map[SourceID]string
	srcMetas     map[SourceID]*SourceMetadata
}

// NewFileSystemDiscovery walks rootDir for .graphql/.gql files. Paths listed
// in ignorePaths (e.g. the schema file living inside the documents root) are
// skipped.
func NewFileSystemDiscovery(ctx context.Context, rootDir string, ignorePaths ...string) (*FileSystemDiscovery, error) {
	ignored := make(map[string]bool, len(ignorePaths))
	for _, p := range ignorePaths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, err
		}
		ignored[abs] = true
	}

	discovery := &FileSystemDiscovery{
		srcFilePaths: make(map[SourceID]string),
		srcMetas:     make(map[SourceID]*SourceMetadata),
	}

	err := filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch filepath.Ext(d.Name()) {
		case ".graphql", ".gql":
		default:
			return nil
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		if ignored[abs] {
			return nil
		}

		relPath, err := filepath.Rel(rootDir, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %q: %w", path, err)
		}

		id := SourceID(relPath)
		discovery.srcFilePaths[id] = path
		discovery.srcMetas[id] = &SourceMetadata{ID: id, FilePath: relPath}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk root directory %q: %w", rootDir, err)
	}
	return discovery, nil
}

// ListSources returns the discovered sources in unspecified order; Collect
// sorts by file path before parsing.
func (d *FileSystemDiscovery) ListSources(ctx context.Context) ([]*SourceMetadata, error) {
	srcs := make([]*SourceMetadata, 0, len(d.srcMetas))
	for _, src := range d.srcMetas {
		srcs = append(srcs, src)
	}
	return srcs, nil
}

// ReadSource reads the GraphQL document content for a given source
func (d *FileSystemDiscovery) ReadSource(ctx context.Context, id SourceID) (string, error) {
	fp, ok := d.srcFilePaths[id]
	if !ok {
		return "", fmt.Errorf("source %q not found", id)
	}
	content, err := os.ReadFile(fp)
	if err != nil {
		return "", fmt.Errorf("failed to read source %q: %w", id, err)
	}
	return string(content), nil
}

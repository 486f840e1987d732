package document

import (
	"context"
)

type SourceID string

type SourceMetadata struct {
	ID       SourceID
	FilePath string
}

// Discovery enumerates the executable GraphQL sources for one compile.
// Sources are parsed and split into documents by Collect.
type Discovery interface {
	ListSources(ctx context.Context) ([]*SourceMetadata, error)
	ReadSource(ctx context.Context, id SourceID) (string, error)
}

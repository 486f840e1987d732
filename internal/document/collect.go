package document

import (
	"context"
	"fmt"
	"sort"

	"github.com/quellgql/quell/internal/language"
)

// Collect parses every discovered source and builds the store the pipeline
// runs over. Sources are processed in file-path order so the store contents
// are deterministic regardless of discovery ordering. Malformed sources and
// unnamed operations reject the compile here; they never reach the passes.
func Collect(ctx context.Context, disc Discovery) (*Store, error) {
	metas, err := disc.ListSources(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(metas, func(i, j int) bool { return metas[i].FilePath < metas[j].FilePath })

	store := NewStore()
	for _, meta := range metas {
		content, err := disc.ReadSource(ctx, meta.ID)
		if err != nil {
			return nil, err
		}
		doc, err := language.ParseQuery(meta.FilePath, content)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", meta.FilePath, err)
		}
		for _, op := range doc.Operations {
			if op.Name == "" {
				return nil, fmt.Errorf("%s: anonymous operations are not supported, name the %s", meta.FilePath, op.Operation)
			}
			err := store.Add(&Document{
				Name:       op.Name,
				Kind:       KindOperation,
				SourceFile: meta.FilePath,
				Operation:  op,
			})
			if err != nil {
				return nil, err
			}
		}
		for _, frag := range doc.Fragments {
			err := store.Add(&Document{
				Name:       frag.Name,
				Kind:       KindFragment,
				SourceFile: meta.FilePath,
				Fragment:   frag,
			})
			if err != nil {
				return nil, err
			}
		}
	}
	return store, nil
}

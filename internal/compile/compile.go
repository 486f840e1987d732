package compile

import (
	"context"
	"time"

	"github.com/quellgql/quell/internal/compileid"
	"github.com/quellgql/quell/internal/document"
	"github.com/quellgql/quell/internal/eventbus"
	"github.com/quellgql/quell/internal/events"
	"github.com/quellgql/quell/internal/schema"
)

// Compile runs the full pass list over the store, mutating its documents in
// place, and returns the aggregated diagnostics. The pass list is constructed
// here so the order is visible at the call site; it is a correctness
// requirement, not a tuning knob (flattening must precede merging, merging
// must precede discriminator injection so merged sets are checked once).
//
// The pipeline is synchronous and owns no state beyond the store it was
// handed; concurrent compiles with separate stores may share s read-only.
func Compile(ctx context.Context, s *schema.Schema, store *document.Store) Diagnostics {
	ctx, _ = compileid.NewContext(ctx)
	passes := []Pass{
		{Name: "resolve-fragments", Run: resolveFragments},
		{Name: "flatten-inline-fragments", Run: flattenInlineFragments},
		{Name: "merge-duplicate-fields", Run: mergeDuplicateFields},
		{Name: "inject-typename", Run: injectTypename},
	}

	eventbus.Publish(ctx, events.CompileStart{Documents: len(store.Documents())})
	start := time.Now()
	diags := (&runner{passes: passes}).run(ctx, s, store)
	eventbus.Publish(ctx, events.CompileFinish{
		Documents:   len(store.Documents()),
		Diagnostics: len(diags),
		Fatal:       diags.HasFatal(),
		Duration:    time.Since(start),
	})
	return diags
}

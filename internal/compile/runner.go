package compile

import (
	"context"
	"time"

	"github.com/quellgql/quell/internal/document"
	"github.com/quellgql/quell/internal/eventbus"
	"github.com/quellgql/quell/internal/events"
	"github.com/quellgql/quell/internal/schema"
)

// Pass is one ordered transformation step over the full document store. Run
// may mutate selection sets in place and returns the diagnostics it produced.
// Every pass must be idempotent: rerunning it on its own output is a no-op.
type Pass struct {
	Name string
	Run  func(*schema.Schema, *document.Store) Diagnostics
}

// runner executes a pass list strictly in order. One runner is scoped to one
// compile; it holds no state across invocations.
type runner struct {
	passes []Pass
}

// run invokes each pass once over the store, appending its diagnostics to the
// aggregate. The first pass that reports a fatal diagnostic truncates the
// list: later passes never observe a store the pipeline could not finish
// transforming.
func (r *runner) run(ctx context.Context, s *schema.Schema, store *document.Store) Diagnostics {
	var all Diagnostics
	for _, p := range r.passes {
		eventbus.Publish(ctx, events.PassStart{Name: p.Name})
		start := time.Now()
		ds := p.Run(s, store)
		eventbus.Publish(ctx, events.PassFinish{
			Name:        p.Name,
			Diagnostics: len(ds),
			Duration:    time.Since(start),
		})
		all = append(all, ds...)
		if ds.HasFatal() {
			break
		}
	}
	return all
}

package compile

import (
	"github.com/quellgql/quell/internal/document"
	"github.com/quellgql/quell/internal/language"
	"github.com/quellgql/quell/internal/schema"
)

// flattenInlineFragments hoists the selections of an inline fragment into the
// enclosing selection set when the fragment cannot narrow anything: its type
// condition is empty or names the enclosing parent type itself, and it
// carries no directives. Downstream passes and generators then see one flat
// set instead of a redundant nesting level.
//
// Hoisting repeats until the set is stable, so a redundant fragment exposed
// by hoisting another one is flattened in the same run. That keeps the pass
// idempotent.
func flattenInlineFragments(s *schema.Schema, store *document.Store) Diagnostics {
	var all Diagnostics
	for _, doc := range store.Documents() {
		w := &Walker{
			Schema: s,
			Store:  store,
			Visit: func(set *language.SelectionSet, parent *schema.Type) {
				flattenSet(set, parent)
			},
		}
		// Resolution advisories are reported once, by the discriminator
		// pass; this pass surfaces only conditions it cannot proceed past.
		for _, d := range w.Walk(doc) {
			if d.Severity == SeverityFatal {
				all = append(all, d)
			}
		}
	}
	return all
}

func flattenSet(set *language.SelectionSet, parent *schema.Type) {
	for changed := true; changed; {
		changed = false
		out := make(language.SelectionSet, 0, len(*set))
		for _, sel := range *set {
			frag, ok := sel.(*language.InlineFragment)
			if ok && len(frag.Directives) == 0 &&
				(frag.TypeCondition == "" || frag.TypeCondition == parent.Name) {
				out = append(out, frag.SelectionSet...)
				changed = true
				continue
			}
			out = append(out, sel)
		}
		*set = out
	}
}

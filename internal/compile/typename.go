package compile

import (
	"github.com/quellgql/quell/internal/document"
	"github.com/quellgql/quell/internal/language"
	"github.com/quellgql/quell/internal/schema"
)

// typenameField is the meta field whose value identifies the concrete type of
// a polymorphic result at runtime.
const typenameField = "__typename"

// injectTypename ensures every selection set whose parent type is an
// interface or union, and which narrows the result with at least one typed
// inline fragment, also selects __typename. Cache normalization and the
// generated union-narrowing code rely on the field being present to decide
// which concrete shape a returned object has.
//
// The field is appended after the existing selections, so nothing is
// reordered or removed. Sets whose parent is a concrete object type are never
// touched, including the bodies of inline fragments narrowing to an object
// type: the discriminator belongs to the polymorphic set, not to the
// fragments inside it. A set that already selects __typename is left as it
// is, which is what makes the pass idempotent.
func injectTypename(s *schema.Schema, store *document.Store) Diagnostics {
	var all Diagnostics
	for _, doc := range store.Documents() {
		w := &Walker{
			Schema: s,
			Store:  store,
			Visit: func(set *language.SelectionSet, parent *schema.Type) {
				if !parent.IsAbstract() {
					return
				}
				if !hasTypedInlineFragment(*set) || hasTypenameField(*set) {
					return
				}
				*set = append(*set, &language.Field{
					Alias: typenameField,
					Name:  typenameField,
				})
			},
		}
		all = append(all, w.Walk(doc)...)
	}
	return all
}

func hasTypedInlineFragment(set language.SelectionSet) bool {
	for _, sel := range set {
		if frag, ok := sel.(*language.InlineFragment); ok && frag.TypeCondition != "" {
			return true
		}
	}
	return false
}

func hasTypenameField(set language.SelectionSet) bool {
	for _, sel := range set {
		if field, ok := sel.(*language.Field); ok && field.Name == typenameField {
			return true
		}
	}
	return false
}

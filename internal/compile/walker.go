package compile

import (
	"fmt"

	"github.com/quellgql/quell/internal/document"
	"github.com/quellgql/quell/internal/language"
	"github.com/quellgql/quell/internal/schema"
)

// Walker visits every selection set of a document depth-first in document
// order, pre-order (a set is visited before its children), resolving the
// schema type each set's parent refers to. The walker never mutates the tree
// itself; mutation is the visitor's responsibility, which is why the visitor
// receives the selection set by pointer.
//
// Fragment spreads are traversed by dereferencing the named fragment through
// the store. There is no visited-fragment set: a fragment reachable via two
// spread paths is walked twice, once per path, each under its own resolved
// type. Passes must therefore be idempotent with respect to re-visits.
type Walker struct {
	Schema *schema.Schema
	Store  *document.Store
	Visit  func(set *language.SelectionSet, parent *schema.Type)

	diags Diagnostics
}

// Walk traverses doc's selection sets and returns the diagnostics produced by
// type resolution. An unresolvable field name is advisory and the walk
// descends under the last-known type; a missing fragment definition is fatal
// and its spread is skipped.
func (w *Walker) Walk(doc *document.Document) Diagnostics {
	w.diags = nil
	switch doc.Kind {
	case document.KindOperation:
		root := w.Schema.RootType(doc.Operation.Operation)
		if root == nil {
			w.diags = append(w.diags, advisory(
				fmt.Sprintf("schema defines no %s root type", doc.Operation.Operation),
				doc.Name, doc.Operation.Position))
			return w.diags
		}
		w.walkSet(doc, &doc.Operation.SelectionSet, root)
	case document.KindFragment:
		cond := w.Schema.Type(doc.Fragment.TypeCondition)
		if cond == nil {
			w.diags = append(w.diags, advisory(
				fmt.Sprintf("fragment %q is conditioned on undefined type %q", doc.Name, doc.Fragment.TypeCondition),
				doc.Name, doc.Fragment.Position))
			return w.diags
		}
		w.walkSet(doc, &doc.Fragment.SelectionSet, cond)
	}
	return w.diags
}

func (w *Walker) walkSet(doc *document.Document, set *language.SelectionSet, parent *schema.Type) {
	if w.Visit != nil {
		w.Visit(set, parent)
	}
	// Iterate after visiting so selections injected at this level take part
	// in the descent.
	for _, sel := range *set {
		switch sel := sel.(type) {
		case *language.Field:
			if len(sel.SelectionSet) == 0 {
				continue
			}
			next := parent
			if fd := parent.Field(sel.Name); fd != nil {
				if t := w.Schema.Type(fd.Type.GetNamedType()); t != nil {
					next = t
				} else {
					w.diags = append(w.diags, advisory(
						fmt.Sprintf("field %q on type %q has undefined type %q", sel.Name, parent.Name, fd.Type.GetNamedType()),
						doc.Name, sel.Position))
				}
			} else {
				w.diags = append(w.diags, advisory(
					fmt.Sprintf("field %q is not defined on type %q", sel.Name, parent.Name),
					doc.Name, sel.Position))
			}
			w.walkSet(doc, &sel.SelectionSet, next)

		case *language.InlineFragment:
			next := parent
			if sel.TypeCondition != "" {
				if t := w.Schema.Type(sel.TypeCondition); t != nil {
					next = t
				} else {
					w.diags = append(w.diags, advisory(
						fmt.Sprintf("inline fragment on undefined type %q", sel.TypeCondition),
						doc.Name, sel.Position))
				}
			}
			w.walkSet(doc, &sel.SelectionSet, next)

		case *language.FragmentSpread:
			frag := w.Store.Fragment(sel.Name)
			if frag == nil {
				w.diags = append(w.diags, fatal(
					fmt.Sprintf("fragment %q is not defined", sel.Name),
					doc.Name, sel.Position))
				continue
			}
			next := parent
			if t := w.Schema.Type(frag.TypeCondition); t != nil {
				next = t
			}
			w.walkSet(doc, &frag.SelectionSet, next)
		}
	}
}

package compile

import (
	"fmt"

	"github.com/quellgql/quell/internal/document"
	"github.com/quellgql/quell/internal/language"
	"github.com/quellgql/quell/internal/schema"
)

// resolveFragments verifies every fragment spread in every document names a
// fragment present in the store, and that the fragment spread graph is
// acyclic. Either failure is fatal: the walker-based passes dereference
// spreads without a visited set, so an unresolvable or cyclic spread makes
// further transformation meaningless. A fragment conditioned on a type the
// schema does not define is advisory only.
func resolveFragments(s *schema.Schema, store *document.Store) Diagnostics {
	var all Diagnostics

	for _, doc := range store.Documents() {
		collectSpreadDiagnostics(s, store, doc, *doc.SelectionSet(), &all)
	}

	for _, doc := range store.Documents() {
		if doc.Kind != document.KindFragment {
			continue
		}
		if t := s.Type(doc.Fragment.TypeCondition); t == nil {
			all = append(all, advisory(
				fmt.Sprintf("fragment %q is conditioned on undefined type %q", doc.Name, doc.Fragment.TypeCondition),
				doc.Name, doc.Fragment.Position))
		}
	}

	all = append(all, findSpreadCycles(store)...)
	return all
}

func collectSpreadDiagnostics(s *schema.Schema, store *document.Store, doc *document.Document, set language.SelectionSet, out *Diagnostics) {
	for _, sel := range set {
		switch sel := sel.(type) {
		case *language.Field:
			collectSpreadDiagnostics(s, store, doc, sel.SelectionSet, out)
		case *language.InlineFragment:
			collectSpreadDiagnostics(s, store, doc, sel.SelectionSet, out)
		case *language.FragmentSpread:
			if store.Fragment(sel.Name) == nil {
				*out = append(*out, fatal(
					fmt.Sprintf("fragment %q is not defined", sel.Name),
					doc.Name, sel.Position))
			}
		}
	}
}

// findSpreadCycles runs a depth-first search over the fragment spread graph.
// Fragments currently on the DFS stack that are reached again close a cycle.
func findSpreadCycles(store *document.Store) Diagnostics {
	var all Diagnostics
	done := map[string]bool{}
	onStack := map[string]bool{}

	var visit func(doc *document.Document)
	visit = func(doc *document.Document) {
		if done[doc.Name] {
			return
		}
		onStack[doc.Name] = true
		for _, name := range spreadNames(*doc.SelectionSet(), nil) {
			target := store.ForName(name)
			if target == nil || target.Kind != document.KindFragment {
				continue // missing fragments already reported
			}
			if onStack[name] {
				all = append(all, fatal(
					fmt.Sprintf("fragment spread cycle through %q", name),
					doc.Name, doc.Fragment.Position))
				continue
			}
			visit(target)
		}
		onStack[doc.Name] = false
		done[doc.Name] = true
	}

	for _, doc := range store.Documents() {
		if doc.Kind == document.KindFragment {
			visit(doc)
		}
	}
	return all
}

func spreadNames(set language.SelectionSet, acc []string) []string {
	for _, sel := range set {
		switch sel := sel.(type) {
		case *language.Field:
			acc = spreadNames(sel.SelectionSet, acc)
		case *language.InlineFragment:
			acc = spreadNames(sel.SelectionSet, acc)
		case *language.FragmentSpread:
			acc = append(acc, sel.Name)
		}
	}
	return acc
}

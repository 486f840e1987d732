package document

import (
	"fmt"

	"github.com/quellgql/quell/internal/language"
)

// Kind distinguishes executable operations from fragment definitions.
type Kind string

const (
	KindOperation Kind = "OPERATION"
	KindFragment  Kind = "FRAGMENT"
)

// Document is one named operation or fragment collected for a compile.
// Exactly one of Operation and Fragment is set, matching Kind. Passes mutate
// selection sets inside the AST in place but never reassign Name or Kind.
type Document struct {
	Name       string
	Kind       Kind
	SourceFile string

	Operation *language.OperationDefinition
	Fragment  *language.FragmentDefinition
}

// SelectionSet returns the document's root selection set. The pointer allows
// passes to append selections in place.
func (d *Document) SelectionSet() *language.SelectionSet {
	switch d.Kind {
	case KindOperation:
		return &d.Operation.SelectionSet
	case KindFragment:
		return &d.Fragment.SelectionSet
	}
	return nil
}

// Store owns the collected documents for one compile, in collection order.
// Operations and fragments share a single name space.
type Store struct {
	docs   []*Document
	byName map[string]*Document
}

func NewStore() *Store {
	return &Store{byName: make(map[string]*Document)}
}

// Add appends d to the store. Document names are unique within a compile.
func (s *Store) Add(d *Document) error {
	if d.Name == "" {
		return fmt.Errorf("document from %s has no name", d.SourceFile)
	}
	if prev, exists := s.byName[d.Name]; exists {
		return fmt.Errorf("duplicate document name %q (defined in %s and %s)", d.Name, prev.SourceFile, d.SourceFile)
	}
	s.docs = append(s.docs, d)
	s.byName[d.Name] = d
	return nil
}

// Documents returns all documents in collection order.
func (s *Store) Documents() []*Document { return s.docs }

// ForName returns the document with the given name, or nil.
func (s *Store) ForName(name string) *Document { return s.byName[name] }

// Fragment resolves a fragment spread target by name, or nil when the store
// holds no fragment under that name.
func (s *Store) Fragment(name string) *language.FragmentDefinition {
	d := s.byName[name]
	if d == nil || d.Kind != KindFragment {
		return nil
	}
	return d.Fragment
}

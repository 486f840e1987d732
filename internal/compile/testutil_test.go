package compile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quellgql/quell/internal/document"
	"github.com/quellgql/quell/internal/language"
	"github.com/quellgql/quell/internal/schema"
)

const testSDL = `
type Query {
  users: [User!]!
  friends: [Friend!]!
  entities: [Entity!]!
  node(id: ID!): Node
}

interface Friend {
  id: ID!
  name: String!
}

type User implements Friend {
  id: ID!
  name: String!
  email: String!
  friends: [Friend!]!
  friendsInterface: [Friend!]!
}

type Bot implements Friend {
  id: ID!
  name: String!
  owner: User!
}

union Entity = User | Bot

interface Node {
  id: ID!
}
`

func buildTestSchema(t *testing.T, sdl string) *schema.Schema {
	t.Helper()
	doc, err := language.ParseSchema("schema.graphql", sdl)
	require.NoError(t, err)
	s, err := schema.BuildFromSDL(doc)
	require.NoError(t, err)
	return s
}

func collectTestDocs(t *testing.T, sources map[string]string) *document.Store {
	t.Helper()
	srcs := make([]document.InMemorySource, 0, len(sources))
	for path, content := range sources {
		srcs = append(srcs, document.InMemorySource{Path: path, Content: content})
	}
	store, err := document.Collect(context.Background(), document.NewInMemoryDiscovery(srcs))
	require.NoError(t, err)
	return store
}

// selectionNames renders the direct children of a selection set for
// assertions: field names, "...Name" for spreads, "on Type" for inline
// fragments.
func selectionNames(set language.SelectionSet) []string {
	var names []string
	for _, sel := range set {
		switch sel := sel.(type) {
		case *language.Field:
			names = append(names, sel.Name)
		case *language.InlineFragment:
			names = append(names, "on "+sel.TypeCondition)
		case *language.FragmentSpread:
			names = append(names, "..."+sel.Name)
		}
	}
	return names
}

// fieldSet returns the nested selection set of the named direct child field.
func fieldSet(t *testing.T, set language.SelectionSet, name string) language.SelectionSet {
	t.Helper()
	for _, sel := range set {
		if f, ok := sel.(*language.Field); ok && f.Name == name {
			return f.SelectionSet
		}
	}
	t.Fatalf("field %q not found in selection set", name)
	return nil
}

// inlineFragmentSet returns the nested set of the inline fragment narrowing
// to the given type.
func inlineFragmentSet(t *testing.T, set language.SelectionSet, typeCondition string) language.SelectionSet {
	t.Helper()
	for _, sel := range set {
		if f, ok := sel.(*language.InlineFragment); ok && f.TypeCondition == typeCondition {
			return f.SelectionSet
		}
	}
	t.Fatalf("inline fragment on %q not found in selection set", typeCondition)
	return nil
}

package compile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/quellgql/quell/internal/language"
	"github.com/quellgql/quell/internal/schema"
)

func TestWalkerPreOrderTypeTracking(t *testing.T) {
	s := buildTestSchema(t, testSDL)
	store := collectTestDocs(t, map[string]string{
		"Q.graphql": `
query Q {
  users {
    friends { id }
  }
}`,
	})

	var visited []string
	w := &Walker{
		Schema: s,
		Store:  store,
		Visit: func(set *language.SelectionSet, parent *schema.Type) {
			visited = append(visited, parent.Name)
		},
	}
	diags := w.Walk(store.ForName("Q"))
	require.Empty(t, diags)

	want := []string{"Query", "User", "Friend"}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Errorf("visit order mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkerUnknownFieldDescendsWithLastKnownType(t *testing.T) {
	s := buildTestSchema(t, testSDL)
	store := collectTestDocs(t, map[string]string{
		"Q.graphql": `
query Q {
  bogus { x }
}`,
	})

	var visited []string
	w := &Walker{
		Schema: s,
		Store:  store,
		Visit: func(set *language.SelectionSet, parent *schema.Type) {
			visited = append(visited, parent.Name)
		},
	}
	diags := w.Walk(store.ForName("Q"))

	require.Len(t, diags, 1)
	require.Equal(t, SeverityAdvisory, diags[0].Severity)
	require.Contains(t, diags[0].Message, `field "bogus" is not defined on type "Query"`)
	require.Equal(t, []string{"Query", "Query"}, visited,
		"walk continues into the nested set under the last-known type")
}

func TestWalkerFragmentWalkedOncePerSpreadPath(t *testing.T) {
	s := buildTestSchema(t, testSDL)
	store := collectTestDocs(t, map[string]string{
		"Q.graphql": `
query Q {
  users { ...IdParts }
  friends { ...IdParts }
}

fragment IdParts on Friend { id }`,
	})

	var fragmentVisits int
	fragSet := store.Fragment("IdParts")
	w := &Walker{
		Schema: s,
		Store:  store,
		Visit: func(set *language.SelectionSet, parent *schema.Type) {
			if set == &fragSet.SelectionSet {
				fragmentVisits++
				require.Equal(t, "Friend", parent.Name)
			}
		},
	}
	require.Empty(t, w.Walk(store.ForName("Q")))

	// no visited-fragment set: one walk per spread path
	require.Equal(t, 2, fragmentVisits)
}

func TestWalkerMissingFragmentIsFatal(t *testing.T) {
	s := buildTestSchema(t, testSDL)
	store := collectTestDocs(t, map[string]string{
		"Q.graphql": `
query Q {
  users { ...Nope }
}`,
	})

	w := &Walker{Schema: s, Store: store}
	diags := w.Walk(store.ForName("Q"))
	require.True(t, diags.HasFatal())
	require.Contains(t, diags[0].Message, `fragment "Nope" is not defined`)
}

func TestWalkerInjectedSelectionsParticipateInDescent(t *testing.T) {
	s := buildTestSchema(t, testSDL)
	store := collectTestDocs(t, map[string]string{
		"Q.graphql": `
query Q {
  users { id }
}`,
	})

	// The visitor appends a selection at the root; pre-order means the
	// appended field's nested set is still walked.
	var visited []string
	w := &Walker{Schema: s, Store: store}
	w.Visit = func(set *language.SelectionSet, parent *schema.Type) {
		visited = append(visited, parent.Name)
		if parent.Name == "Query" && len(*set) == 1 {
			*set = append(*set, &language.Field{
				Alias: "friends",
				Name:  "friends",
				SelectionSet: language.SelectionSet{
					&language.Field{Alias: "name", Name: "name"},
				},
			})
		}
	}
	require.Empty(t, w.Walk(store.ForName("Q")))
	require.Equal(t, []string{"Query", "User", "Friend"}, visited)
}

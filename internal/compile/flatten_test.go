package compile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestFlattenRedundantInlineFragment(t *testing.T) {
	s := buildTestSchema(t, testSDL)
	store := collectTestDocs(t, map[string]string{
		"Q.graphql": `
query Q {
  users {
    ... on User { email }
    id
  }
}`,
	})

	require.Empty(t, flattenInlineFragments(s, store))

	root := *store.ForName("Q").SelectionSet()
	users := fieldSet(t, root, "users")
	want := []string{"email", "id"}
	if diff := cmp.Diff(want, selectionNames(users)); diff != "" {
		t.Errorf("hoisted selections mismatch (-want +got):\n%s", diff)
	}
}

func TestFlattenKeepsNarrowingFragments(t *testing.T) {
	s := buildTestSchema(t, testSDL)
	store := collectTestDocs(t, map[string]string{
		"Q.graphql": `
query Q {
  friends {
    ... on User { email }
  }
}`,
	})

	require.Empty(t, flattenInlineFragments(s, store))

	root := *store.ForName("Q").SelectionSet()
	require.Equal(t, []string{"on User"}, selectionNames(fieldSet(t, root, "friends")),
		"a fragment narrowing an abstract parent must survive")
}

func TestFlattenConditionEqualToAbstractParent(t *testing.T) {
	s := buildTestSchema(t, testSDL)
	store := collectTestDocs(t, map[string]string{
		"Q.graphql": `
query Q {
  friends {
    ... on Friend { id }
  }
}`,
	})

	require.Empty(t, flattenInlineFragments(s, store))

	root := *store.ForName("Q").SelectionSet()
	require.Equal(t, []string{"id"}, selectionNames(fieldSet(t, root, "friends")))
}

func TestFlattenNestedRedundantFragmentsInOneRun(t *testing.T) {
	s := buildTestSchema(t, testSDL)
	store := collectTestDocs(t, map[string]string{
		"Q.graphql": `
query Q {
  users {
    ... on User {
      ... on User { email }
    }
  }
}`,
	})

	require.Empty(t, flattenInlineFragments(s, store))

	root := *store.ForName("Q").SelectionSet()
	require.Equal(t, []string{"email"}, selectionNames(fieldSet(t, root, "users")),
		"hoisting runs to a fixpoint within one pass execution")
}

func TestFlattenPreservesDirectedFragments(t *testing.T) {
	s := buildTestSchema(t, testSDL)
	store := collectTestDocs(t, map[string]string{
		"Q.graphql": `
query Q($withEmail: Boolean!) {
  users {
    ... on User @include(if: $withEmail) { email }
  }
}`,
	})

	require.Empty(t, flattenInlineFragments(s, store))

	root := *store.ForName("Q").SelectionSet()
	require.Equal(t, []string{"on User"}, selectionNames(fieldSet(t, root, "users")),
		"a directive changes the fragment's meaning; it must not be hoisted")
}

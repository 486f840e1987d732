package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/quellgql/quell/internal/language"
)

func buildSchema(t *testing.T, sdl string) *Schema {
	t.Helper()
	doc, err := language.ParseSchema("schema.graphql", sdl)
	require.NoError(t, err)
	s, err := BuildFromSDL(doc)
	require.NoError(t, err)
	return s
}

const testSDL = `
type Query {
  friends: [Friend!]!
  entities: [Entity]
}

interface Friend { id: ID! }

type User implements Friend {
  id: ID!
  email: String!
}

type Bot implements Friend { id: ID! }

union Entity = User | Bot

enum Role { ADMIN MEMBER }
`

func TestBuildFromSDLKinds(t *testing.T) {
	s := buildSchema(t, testSDL)

	require.Equal(t, TypeKindObject, s.Type("Query").Kind)
	require.Equal(t, TypeKindInterface, s.Type("Friend").Kind)
	require.Equal(t, TypeKindUnion, s.Type("Entity").Kind)
	require.Equal(t, TypeKindEnum, s.Type("Role").Kind)
	require.Equal(t, TypeKindScalar, s.Type("String").Kind, "builtin scalars are preregistered")
	require.Nil(t, s.Type("Phantom"))
}

func TestPossibleTypes(t *testing.T) {
	s := buildSchema(t, testSDL)

	if diff := cmp.Diff([]string{"Bot", "User"}, s.Type("Friend").PossibleTypes); diff != "" {
		t.Errorf("interface possible types mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Bot", "User"}, s.Type("Entity").PossibleTypes); diff != "" {
		t.Errorf("union possible types mismatch (-want +got):\n%s", diff)
	}
	require.True(t, s.Type("Friend").IsAbstract())
	require.True(t, s.Type("Entity").IsAbstract())
	require.False(t, s.Type("User").IsAbstract())
}

func TestFieldReturnTypes(t *testing.T) {
	s := buildSchema(t, testSDL)

	friends := s.Type("Query").Field("friends")
	require.NotNil(t, friends)
	require.Equal(t, "Friend", friends.Type.GetNamedType())
	require.True(t, friends.Type.IsNonNull())

	require.Nil(t, s.Type("Query").Field("bogus"))
}

func TestRootTypes(t *testing.T) {
	s := buildSchema(t, testSDL)
	require.Equal(t, "Query", s.RootType(language.Query).Name)
	require.Nil(t, s.RootType(language.Mutation), "no Mutation type defined")
}

func TestSchemaBlockOverridesRootTypes(t *testing.T) {
	s := buildSchema(t, `
schema { query: Root }

type Root { ok: Boolean }
`)
	require.Equal(t, "Root", s.RootType(language.Query).Name)
}

func TestTypeExtensions(t *testing.T) {
	s := buildSchema(t, `
type Query { a: String }

interface Friend { id: ID! }

type User { id: ID! }

extend type Query { b: Int }

extend type User implements Friend { name: String }
`)

	require.NotNil(t, s.Type("Query").Field("a"))
	require.NotNil(t, s.Type("Query").Field("b"))
	require.Equal(t, []string{"User"}, s.Type("Friend").PossibleTypes)
	require.NotNil(t, s.Type("User").Field("name"))
}

func TestBuildErrors(t *testing.T) {
	parse := func(sdl string) *language.SchemaDocument {
		doc, err := language.ParseSchema("schema.graphql", sdl)
		require.NoError(t, err)
		return doc
	}

	_, err := BuildFromSDL(parse(`
type Dup { a: String }
type Dup { b: String }
`))
	require.Error(t, err)
	require.Contains(t, err.Error(), `duplicate type definition "Dup"`)

	_, err = BuildFromSDL(parse(`extend type Ghost { a: String }`))
	require.Error(t, err)
	require.Contains(t, err.Error(), `extension of undefined type "Ghost"`)
}

func TestTypeRefHelpers(t *testing.T) {
	ref := NonNullType(ListType(NonNullType(NamedType("User"))))
	require.True(t, ref.IsNonNull())
	require.Equal(t, "User", ref.GetNamedType())
	require.Equal(t, TypeRefKindList, ref.Unwrap().Kind)
}

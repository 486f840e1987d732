package schema

import (
	"fmt"
	"sort"

	"github.com/quellgql/quell/internal/language"
)

// BuildFromSDL projects a parsed SDL document into a Schema. Type extensions
// are folded into their base definitions; possible types for interfaces are
// computed from the implementing objects' declarations.
func BuildFromSDL(doc *language.SchemaDocument) (*Schema, error) {
	s := &Schema{
		QueryType:        "Query",
		MutationType:     "Mutation",
		SubscriptionType: "Subscription",
		Types:            make(map[string]*Type),
	}
	for _, t := range builtinScalars {
		s.Types[t.Name] = t
	}

	for _, sd := range doc.Schema {
		for _, ot := range sd.OperationTypes {
			switch ot.Operation {
			case language.Query:
				s.QueryType = ot.Type
			case language.Mutation:
				s.MutationType = ot.Type
			case language.Subscription:
				s.SubscriptionType = ot.Type
			}
		}
	}

	for _, def := range doc.Definitions {
		if _, exists := s.Types[def.Name]; exists {
			return nil, fmt.Errorf("duplicate type definition %q", def.Name)
		}
		t, err := buildType(def)
		if err != nil {
			return nil, err
		}
		s.Types[def.Name] = t
	}

	for _, ext := range doc.Extensions {
		base, ok := s.Types[ext.Name]
		if !ok {
			return nil, fmt.Errorf("extension of undefined type %q", ext.Name)
		}
		if err := extendType(base, ext); err != nil {
			return nil, err
		}
	}

	populatePossibleTypes(s)
	return s, nil
}

func buildType(def *language.Definition) (*Type, error) {
	t := &Type{Name: def.Name}
	switch def.Kind {
	case language.Object:
		t.Kind = TypeKindObject
	case language.Interface:
		t.Kind = TypeKindInterface
	case language.Union:
		t.Kind = TypeKindUnion
	case language.Scalar:
		t.Kind = TypeKindScalar
	case language.Enum:
		t.Kind = TypeKindEnum
	case language.InputObject:
		t.Kind = TypeKindInputObject
	default:
		return nil, fmt.Errorf("unsupported definition kind %q for type %q", def.Kind, def.Name)
	}

	t.Interfaces = append(t.Interfaces, def.Interfaces...)
	t.PossibleTypes = append(t.PossibleTypes, def.Types...)
	for _, fd := range def.Fields {
		t.Fields = append(t.Fields, &Field{Name: fd.Name, Type: buildTypeRef(fd.Type)})
	}
	for _, ev := range def.EnumValues {
		t.EnumValues = append(t.EnumValues, ev.Name)
	}
	return t, nil
}

func extendType(base *Type, ext *language.Definition) error {
	extended, err := buildType(ext)
	if err != nil {
		return err
	}
	if extended.Kind != base.Kind {
		return fmt.Errorf("extension of type %q does not match its kind %s", base.Name, base.Kind)
	}
	for _, f := range extended.Fields {
		if base.Field(f.Name) != nil {
			return fmt.Errorf("extension of type %q redefines field %q", base.Name, f.Name)
		}
		base.Fields = append(base.Fields, f)
	}
	base.Interfaces = append(base.Interfaces, extended.Interfaces...)
	base.PossibleTypes = append(base.PossibleTypes, extended.PossibleTypes...)
	base.EnumValues = append(base.EnumValues, extended.EnumValues...)
	return nil
}

func buildTypeRef(t *language.Type) *TypeRef {
	if t == nil {
		return nil
	}
	var ref *TypeRef
	if t.NamedType != "" {
		ref = NamedType(t.NamedType)
	} else {
		ref = ListType(buildTypeRef(t.Elem))
	}
	if t.NonNull {
		ref = NonNullType(ref)
	}
	return ref
}

// populatePossibleTypes derives interface memberships from the objects that
// declare them. Union members come from the union definition itself.
func populatePossibleTypes(s *Schema) {
	for _, t := range s.Types {
		if t.Kind != TypeKindObject {
			continue
		}
		for _, ifaceName := range t.Interfaces {
			iface, ok := s.Types[ifaceName]
			if !ok || iface.Kind != TypeKindInterface {
				continue
			}
			iface.PossibleTypes = append(iface.PossibleTypes, t.Name)
		}
	}
	for _, t := range s.Types {
		if len(t.PossibleTypes) > 1 {
			sort.Strings(t.PossibleTypes)
		}
	}
}

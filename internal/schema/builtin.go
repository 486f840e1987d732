package schema

var builtinScalars = []*Type{
	{Name: "String", Kind: TypeKindScalar},
	{Name: "Int", Kind: TypeKindScalar},
	{Name: "Float", Kind: TypeKindScalar},
	{Name: "Boolean", Kind: TypeKindScalar},
	{Name: "ID", Kind: TypeKindScalar},
}

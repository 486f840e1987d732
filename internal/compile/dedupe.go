package compile

import (
	"strings"

	"github.com/quellgql/quell/internal/document"
	"github.com/quellgql/quell/internal/language"
	"github.com/quellgql/quell/internal/schema"
)

// mergeDuplicateFields merges sibling field selections that ask for the same
// thing: equal response name, equal field name, equal arguments and no
// directives on either side. The surviving field keeps its position in the
// set; the duplicates' nested selections are appended to it and their own
// duplicates are merged when the recursion reaches that level.
//
// Fields that differ in arguments or carry directives are left alone; whether
// such a document is valid is the validator's concern, not this pipeline's.
func mergeDuplicateFields(s *schema.Schema, store *document.Store) Diagnostics {
	for _, doc := range store.Documents() {
		mergeSet(doc.SelectionSet())
	}
	return nil
}

func mergeSet(set *language.SelectionSet) {
	seen := map[string]*language.Field{}
	out := make(language.SelectionSet, 0, len(*set))
	for _, sel := range *set {
		field, ok := sel.(*language.Field)
		if !ok || len(field.Directives) > 0 {
			out = append(out, sel)
			continue
		}
		key := fieldKey(field)
		if prev, exists := seen[key]; exists {
			prev.SelectionSet = append(prev.SelectionSet, field.SelectionSet...)
			continue
		}
		seen[key] = field
		out = append(out, sel)
	}
	*set = out

	for _, sel := range *set {
		switch sel := sel.(type) {
		case *language.Field:
			if len(sel.SelectionSet) > 0 {
				mergeSet(&sel.SelectionSet)
			}
		case *language.InlineFragment:
			mergeSet(&sel.SelectionSet)
		}
	}
}

// fieldKey renders the identity of a field selection: response name, field
// name and printed arguments in document order.
func fieldKey(f *language.Field) string {
	var b strings.Builder
	b.WriteString(f.Alias)
	b.WriteString(":")
	b.WriteString(f.Name)
	for _, arg := range f.Arguments {
		b.WriteString("(")
		b.WriteString(arg.Name)
		b.WriteString("=")
		b.WriteString(arg.Value.String())
		b.WriteString(")")
	}
	return b.String()
}

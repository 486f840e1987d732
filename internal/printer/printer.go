package printer

import (
	"strings"

	"github.com/quellgql/quell/internal/document"
	"github.com/quellgql/quell/internal/language"
)

// Print renders every document in the store, in collection order, separated
// by blank lines. Rendering is deterministic: the same store prints to the
// same bytes, and printing the output of a compile, reparsing and compiling
// it again prints identical text.
func Print(store *document.Store) string {
	var parts []string
	for _, doc := range store.Documents() {
		parts = append(parts, PrintDocument(doc))
	}
	return strings.Join(parts, "\n")
}

// PrintDocument renders a single operation or fragment definition.
func PrintDocument(d *document.Document) string {
	var b strings.Builder
	switch d.Kind {
	case document.KindOperation:
		printOperation(&b, d.Operation)
	case document.KindFragment:
		printFragment(&b, d.Fragment)
	}
	return b.String()
}

func printOperation(b *strings.Builder, op *language.OperationDefinition) {
	b.WriteString(string(op.Operation))
	if op.Name != "" {
		b.WriteString(" ")
		b.WriteString(op.Name)
	}
	printVariableDefinitions(b, op.VariableDefinitions)
	printDirectives(b, op.Directives)
	b.WriteString(" ")
	printSelectionSet(b, op.SelectionSet, 0)
	b.WriteString("\n")
}

func printFragment(b *strings.Builder, frag *language.FragmentDefinition) {
	b.WriteString("fragment ")
	b.WriteString(frag.Name)
	b.WriteString(" on ")
	b.WriteString(frag.TypeCondition)
	printDirectives(b, frag.Directives)
	b.WriteString(" ")
	printSelectionSet(b, frag.SelectionSet, 0)
	b.WriteString("\n")
}

func printVariableDefinitions(b *strings.Builder, vars language.VariableDefinitionList) {
	if len(vars) == 0 {
		return
	}
	b.WriteString("(")
	for i, v := range vars {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("$")
		b.WriteString(v.Variable)
		b.WriteString(": ")
		b.WriteString(v.Type.String())
		if v.DefaultValue != nil {
			b.WriteString(" = ")
			b.WriteString(v.DefaultValue.String())
		}
	}
	b.WriteString(")")
}

func printSelectionSet(b *strings.Builder, set language.SelectionSet, depth int) {
	if len(set) == 0 {
		return
	}
	b.WriteString("{\n")
	inner := strings.Repeat("  ", depth+1)
	for _, sel := range set {
		b.WriteString(inner)
		switch sel := sel.(type) {
		case *language.Field:
			printField(b, sel, depth+1)
		case *language.InlineFragment:
			printInlineFragment(b, sel, depth+1)
		case *language.FragmentSpread:
			b.WriteString("...")
			b.WriteString(sel.Name)
			printDirectives(b, sel.Directives)
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString("}")
}

func printField(b *strings.Builder, f *language.Field, depth int) {
	if f.Alias != "" && f.Alias != f.Name {
		b.WriteString(f.Alias)
		b.WriteString(": ")
	}
	b.WriteString(f.Name)
	printArguments(b, f.Arguments)
	printDirectives(b, f.Directives)
	if len(f.SelectionSet) > 0 {
		b.WriteString(" ")
		printSelectionSet(b, f.SelectionSet, depth)
	}
}

func printInlineFragment(b *strings.Builder, frag *language.InlineFragment, depth int) {
	b.WriteString("...")
	if frag.TypeCondition != "" {
		b.WriteString(" on ")
		b.WriteString(frag.TypeCondition)
	}
	printDirectives(b, frag.Directives)
	b.WriteString(" ")
	printSelectionSet(b, frag.SelectionSet, depth)
}

func printArguments(b *strings.Builder, args language.ArgumentList) {
	if len(args) == 0 {
		return
	}
	b.WriteString("(")
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.Name)
		b.WriteString(": ")
		b.WriteString(arg.Value.String())
	}
	b.WriteString(")")
}

func printDirectives(b *strings.Builder, directives language.DirectiveList) {
	for _, d := range directives {
		b.WriteString(" @")
		b.WriteString(d.Name)
		printArguments(b, d.Arguments)
	}
}

package compile

import (
	"fmt"

	"github.com/quellgql/quell/internal/language"
)

// Severity splits diagnostics into the two classes the pipeline knows:
// advisory issues accumulate across all passes, the first fatal issue stops
// the compile.
type Severity string

const (
	SeverityAdvisory Severity = "ADVISORY"
	SeverityFatal    Severity = "FATAL"
)

type Diagnostic struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Document string   `json:"document,omitempty"`
	File     string   `json:"file,omitempty"`
	Line     int      `json:"line,omitempty"`
	Column   int      `json:"column,omitempty"`
}

func (d *Diagnostic) String() string {
	line := fmt.Sprintf("%s: %s", d.Severity, d.Message)
	if d.Document != "" {
		line += fmt.Sprintf(" (document %s)", d.Document)
	}
	if d.File != "" {
		line += fmt.Sprintf(" %s:%d:%d", d.File, d.Line, d.Column)
	}
	return line
}

type Diagnostics []*Diagnostic

// HasFatal reports whether any diagnostic in the list is fatal.
func (ds Diagnostics) HasFatal() bool {
	for _, d := range ds {
		if d.Severity == SeverityFatal {
			return true
		}
	}
	return false
}

func (ds Diagnostics) Error() string {
	msg := "diagnostics:\n"
	for _, d := range ds {
		msg += "- " + d.String() + "\n"
	}
	return msg
}

// Core primitives used by the walker and the passes.
func advisory(message, documentName string, pos *language.Position) *Diagnostic {
	return diagnosticWithPosition(SeverityAdvisory, message, documentName, pos)
}

func fatal(message, documentName string, pos *language.Position) *Diagnostic {
	return diagnosticWithPosition(SeverityFatal, message, documentName, pos)
}

func diagnosticWithPosition(sev Severity, message, documentName string, pos *language.Position) *Diagnostic {
	d := &Diagnostic{Severity: sev, Message: message, Document: documentName}
	if pos != nil && pos.Src != nil {
		d.File = pos.Src.Name
		d.Line = pos.Line
		d.Column = pos.Column
	}
	return d
}

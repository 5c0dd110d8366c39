// Package errors provides the diagnostic types shared by the parser and
// the class/object runtime: a source location, a stable error-id
// taxonomy, and a renderable error value carrying both.
package errors

import (
	"fmt"
	"strings"
)

// Kind classifies a diagnostic for callers that branch on severity class
// rather than on the specific stable id.
type Kind string

const (
	SyntaxError    Kind = "SyntaxError"
	RuntimeError   Kind = "RuntimeError"
	ConsistencyError Kind = "ConsistencyError"
)

// SourceLocation pinpoints a diagnostic in source text.
type SourceLocation struct {
	File   string
	Line   int
	Column int
}

func (l SourceLocation) String() string {
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// MorphoError is a diagnostic with a stable identifier, a human-readable
// message, a source location, and (optionally) the offending source line.
// It implements the standard error interface.
type MorphoError struct {
	Kind     Kind
	ID       string // stable short tag, e.g. "MssngParen"
	Message  string
	Location SourceLocation
	Source   string
}

func (e *MorphoError) Error() string {
	var sb strings.Builder
	if e.ID != "" {
		sb.WriteString(fmt.Sprintf("%s: %s", e.ID, e.Message))
	} else {
		sb.WriteString(fmt.Sprintf("%s: %s", e.Kind, e.Message))
	}
	if e.Location.Line > 0 {
		sb.WriteString(fmt.Sprintf(" (at %s)", e.Location))
	}
	if e.Source != "" {
		sb.WriteString(fmt.Sprintf("\n  %d | %s", e.Location.Line, e.Source))
		if e.Location.Column > 0 {
			sb.WriteString(fmt.Sprintf("\n  %s^", strings.Repeat(" ", len(fmt.Sprintf("%d | ", e.Location.Line))+e.Location.Column-1)))
		}
	}
	return sb.String()
}

// WithSource attaches the source line the error occurred on.
func (e *MorphoError) WithSource(source string) *MorphoError {
	e.Source = source
	return e
}

// NewParseError builds a diagnostic for a stable parser error id (see ids.go).
func NewParseError(id string, file string, line, column int) *MorphoError {
	return &MorphoError{
		Kind:     SyntaxError,
		ID:       id,
		Message:  messageFor(id),
		Location: SourceLocation{File: file, Line: line, Column: column},
	}
}

// NewRuntimeError builds a runtime diagnostic not tied to a stable parser id.
func NewRuntimeError(message string, file string, line, column int) *MorphoError {
	return &MorphoError{
		Kind:     RuntimeError,
		Message:  message,
		Location: SourceLocation{File: file, Line: line, Column: column},
	}
}

// NewConsistencyError builds a class/object consistency diagnostic
// (spec.md §7 item 2: C3 failure, cyclic inheritance, duplicate class name).
func NewConsistencyError(id, message string) *MorphoError {
	return &MorphoError{Kind: ConsistencyError, ID: id, Message: message}
}

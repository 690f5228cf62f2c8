package parser

import (
	"fmt"

	"github.com/yaklabco/gofluent/pkg/ftl/ast"
)

// ErrorKind classifies a recoverable syntax error.
type ErrorKind uint8

// Syntax error kinds.
const (
	ErrExpectedToken ErrorKind = iota + 1
	ErrExpectedCharRange
	ErrExpectedMessageField
	ErrExpectedTermField
	ErrForbiddenCallee
	ErrMissingDefaultVariant
	ErrMissingValue
	ErrMultipleDefaultVariants
	ErrMessageReferenceAsSelector
	ErrTermReferenceAsSelector
	ErrMessageAttributeAsSelector
	ErrTermAttributeAsPlaceable
	ErrUnterminatedStringLiteral
	ErrPositionalArgumentFollowsNamed
	ErrDuplicatedNamedArgument
	ErrUnknownEscapeSequence
	ErrInvalidUnicodeEscapeSequence
	ErrUnbalancedClosingBrace
	ErrExpectedInlineExpression
	ErrExpectedSimpleExpressionAsSelector
	ErrExpectedLiteral
)

//nolint:gochecknoglobals // Read-only lookup table.
var kindNames = map[ErrorKind]string{
	ErrExpectedToken:                      "expected-token",
	ErrExpectedCharRange:                  "expected-char-range",
	ErrExpectedMessageField:               "expected-message-field",
	ErrExpectedTermField:                  "expected-term-field",
	ErrForbiddenCallee:                    "forbidden-callee",
	ErrMissingDefaultVariant:              "missing-default-variant",
	ErrMissingValue:                       "missing-value",
	ErrMultipleDefaultVariants:            "multiple-default-variants",
	ErrMessageReferenceAsSelector:         "message-reference-as-selector",
	ErrTermReferenceAsSelector:            "term-reference-as-selector",
	ErrMessageAttributeAsSelector:         "message-attribute-as-selector",
	ErrTermAttributeAsPlaceable:           "term-attribute-as-placeable",
	ErrUnterminatedStringLiteral:          "unterminated-string-literal",
	ErrPositionalArgumentFollowsNamed:     "positional-argument-follows-named",
	ErrDuplicatedNamedArgument:            "duplicated-named-argument",
	ErrUnknownEscapeSequence:              "unknown-escape-sequence",
	ErrInvalidUnicodeEscapeSequence:       "invalid-unicode-escape-sequence",
	ErrUnbalancedClosingBrace:             "unbalanced-closing-brace",
	ErrExpectedInlineExpression:           "expected-inline-expression",
	ErrExpectedSimpleExpressionAsSelector: "expected-simple-expression-as-selector",
	ErrExpectedLiteral:                    "expected-literal",
}

// String returns the kebab-case name of the kind, used as a diagnostic code.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Error is a recoverable syntax error found while parsing.
type Error struct {
	// Kind classifies the error.
	Kind ErrorKind

	// Arg carries the kind-specific detail: the expected token, the
	// expected character range, the entry id, the duplicated argument name
	// or the offending escape sequence.
	Arg string

	// Pos is the location of the offending input.
	Pos ast.Span

	// Slice is the region skipped while recovering, from the start of the
	// failed entry to the start of the next one.
	Slice ast.Span
}

// Error implements error.
func (e *Error) Error() string {
	return e.Message()
}

// Message returns the human-readable description of the error.
func (e *Error) Message() string {
	switch e.Kind {
	case ErrExpectedToken:
		return fmt.Sprintf("Expected a token starting with %q", e.Arg)
	case ErrExpectedCharRange:
		return fmt.Sprintf("Expected one of %q", e.Arg)
	case ErrExpectedMessageField:
		return fmt.Sprintf("Expected a message field for %q", e.Arg)
	case ErrExpectedTermField:
		return fmt.Sprintf("Expected a term field for %q", e.Arg)
	case ErrForbiddenCallee:
		return "Callee is not allowed here"
	case ErrMissingDefaultVariant:
		return "The select expression must have a default variant"
	case ErrMissingValue:
		return "Expected a value"
	case ErrMultipleDefaultVariants:
		return "A select expression can only have one default variant"
	case ErrMessageReferenceAsSelector:
		return "Message references can't be used as a selector"
	case ErrTermReferenceAsSelector:
		return "Term references can't be used as a selector"
	case ErrMessageAttributeAsSelector:
		return "Message attributes can't be used as a selector"
	case ErrTermAttributeAsPlaceable:
		return "Term attributes can't be used as a placeable"
	case ErrUnterminatedStringLiteral:
		return "Unterminated string literal"
	case ErrPositionalArgumentFollowsNamed:
		return "Positional arguments must come before named arguments"
	case ErrDuplicatedNamedArgument:
		return fmt.Sprintf("The %q argument appears twice", e.Arg)
	case ErrUnknownEscapeSequence:
		return fmt.Sprintf("Unknown escape sequence \\%s", e.Arg)
	case ErrInvalidUnicodeEscapeSequence:
		return fmt.Sprintf("Invalid unicode escape sequence, %q", e.Arg)
	case ErrUnbalancedClosingBrace:
		return "Unbalanced closing brace"
	case ErrExpectedInlineExpression:
		return "Expected an inline expression"
	case ErrExpectedSimpleExpressionAsSelector:
		return "Expected a simple expression as selector"
	case ErrExpectedLiteral:
		return "Expected a string or number literal"
	default:
		return e.Kind.String()
	}
}

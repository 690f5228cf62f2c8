// Package ast defines the Fluent syntax tree.
//
// The tree is position-only: identifiers, text and literals are stored as
// Spans into the source they were parsed from, so a tree can be copied or
// moved independently of any particular string header and is resolved back
// to text on demand.
package ast

// Resource is the parsed form of a Fluent source.
type Resource struct {
	Body []Entry
}

// Entry is a top-level construct of a resource.
type Entry interface {
	// EntrySpan returns the source range covered by the entry.
	EntrySpan() Span
	entry()
}

// Identifier is a message, term, attribute, variable or function name.
type Identifier struct {
	Name Span
}

// Message is a translatable unit: an identifier with a value and/or attributes.
type Message struct {
	ID         Identifier
	Value      *Pattern
	Attributes []Attribute
	Comment    *Comment
	Span       Span
}

// Term is a private message whose identifier starts with "-".
// Terms always carry a value.
type Term struct {
	ID         Identifier
	Value      Pattern
	Attributes []Attribute
	Comment    *Comment
	Span       Span
}

// CommentLevel distinguishes "#", "##" and "###" comments.
type CommentLevel uint8

// Comment levels.
const (
	CommentRegular CommentLevel = iota + 1
	CommentGroup
	CommentResource
)

// Comment is a run of comment lines of the same level.
// Comments only appear in trees parsed in full mode.
type Comment struct {
	Level   CommentLevel
	Content []Span
	Span    Span
}

// Junk is an unparsable region retained in full mode.
type Junk struct {
	Content Span
}

// EntrySpan implements Entry.
func (m *Message) EntrySpan() Span { return m.Span }

// EntrySpan implements Entry.
func (t *Term) EntrySpan() Span { return t.Span }

// EntrySpan implements Entry.
func (c *Comment) EntrySpan() Span { return c.Span }

// EntrySpan implements Entry.
func (j *Junk) EntrySpan() Span { return j.Content }

func (*Message) entry() {}
func (*Term) entry()    {}
func (*Comment) entry() {}
func (*Junk) entry()    {}

// Attribute is a named sub-pattern of a message or term.
type Attribute struct {
	ID    Identifier
	Value Pattern
	Span  Span
}

// Pattern is a sequence of text and placeables.
type Pattern struct {
	Elements []PatternElement
}

// PatternElement is either a *TextElement or a *Placeable.
type PatternElement interface {
	patternElement()
}

// TextElement is a run of literal text.
type TextElement struct {
	Value Span
}

// Placeable is a "{ ... }" expression. It is both a pattern element and,
// when nested, an inline expression.
type Placeable struct {
	Expression Expression
	Span       Span
}

func (*TextElement) patternElement() {}
func (*Placeable) patternElement()   {}

// Expression is either an InlineExpression or a *SelectExpression.
type Expression interface {
	expression()
}

// InlineExpression is an expression that can appear inside a placeable,
// as a selector, or as a call argument.
type InlineExpression interface {
	Expression
	inlineExpression()
}

// SelectExpression chooses one of its variants based on the selector.
type SelectExpression struct {
	Selector InlineExpression
	Variants []Variant
}

// VariantKeyKind distinguishes identifier keys from number keys.
type VariantKeyKind uint8

// Variant key kinds.
const (
	KeyIdentifier VariantKeyKind = iota
	KeyNumber
)

// VariantKey is the "[key]" of a variant.
type VariantKey struct {
	Kind  VariantKeyKind
	Value Span
}

// Variant is one branch of a select expression.
type Variant struct {
	Key     VariantKey
	Value   Pattern
	Default bool
}

// StringLiteral is a quoted string. Value excludes the quotes and keeps
// escape sequences unprocessed.
type StringLiteral struct {
	Value Span
}

// NumberLiteral is an optionally negative decimal number.
type NumberLiteral struct {
	Value Span
}

// FunctionReference is a call such as NUMBER($n).
type FunctionReference struct {
	ID        Identifier
	Arguments CallArguments
}

// MessageReference refers to a message or one of its attributes.
type MessageReference struct {
	ID        Identifier
	Attribute *Identifier
}

// TermReference refers to a term, optionally parameterized.
type TermReference struct {
	ID        Identifier
	Attribute *Identifier
	Arguments *CallArguments
}

// VariableReference refers to an external argument ($name).
type VariableReference struct {
	ID Identifier
}

// CallArguments are the arguments of a function or term call.
type CallArguments struct {
	Positional []InlineExpression
	Named      []NamedArgument
}

// NamedArgument is a "name: literal" call argument.
type NamedArgument struct {
	Name  Identifier
	Value InlineExpression
}

func (*SelectExpression) expression()  {}
func (*StringLiteral) expression()     {}
func (*NumberLiteral) expression()     {}
func (*FunctionReference) expression() {}
func (*MessageReference) expression()  {}
func (*TermReference) expression()     {}
func (*VariableReference) expression() {}
func (*Placeable) expression()         {}

func (*StringLiteral) inlineExpression()     {}
func (*NumberLiteral) inlineExpression()     {}
func (*FunctionReference) inlineExpression() {}
func (*MessageReference) inlineExpression()  {}
func (*TermReference) inlineExpression()     {}
func (*VariableReference) inlineExpression() {}
func (*Placeable) inlineExpression()         {}

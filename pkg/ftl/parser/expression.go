package parser

import "github.com/yaklabco/gofluent/pkg/ftl/ast"

func (p *parser) getPlaceable() (*ast.Placeable, *Error) {
	start := p.ptr
	if err := p.expectByte('{'); err != nil {
		return nil, err
	}
	p.skipBlank()

	expr, err := p.getExpression()
	if err != nil {
		return nil, err
	}

	p.skipBlank()
	if err := p.expectByte('}'); err != nil {
		return nil, err
	}

	return &ast.Placeable{Expression: expr, Span: ast.Span{Start: start, End: p.ptr}}, nil
}

func (p *parser) getExpression() (ast.Expression, *Error) {
	exprStart := p.ptr
	expr, err := p.getInlineExpression(false)
	if err != nil {
		return nil, err
	}

	p.skipBlank()

	if p.current() != '-' || p.byteAt(p.ptr+1) != '>' {
		if term, ok := expr.(*ast.TermReference); ok && term.Attribute != nil {
			return nil, p.errorAt(ErrTermAttributeAsPlaceable, ast.Span{Start: exprStart, End: p.ptr}, "")
		}
		return expr, nil
	}

	switch sel := expr.(type) {
	case *ast.MessageReference:
		if sel.Attribute == nil {
			return nil, p.errorHere(ErrMessageReferenceAsSelector, "")
		}
		return nil, p.errorHere(ErrMessageAttributeAsSelector, "")
	case *ast.TermReference:
		if sel.Attribute == nil {
			return nil, p.errorHere(ErrTermReferenceAsSelector, "")
		}
	case *ast.Placeable:
		return nil, p.errorHere(ErrExpectedSimpleExpressionAsSelector, "")
	}

	p.ptr += 2 // "->"
	p.skipBlankInline()
	if !p.skipEOL() {
		return nil, p.errorHere(ErrExpectedCharRange, "\n | \r\n")
	}
	p.skipBlank()

	variants, err := p.getVariants()
	if err != nil {
		return nil, err
	}

	return &ast.SelectExpression{Selector: expr, Variants: variants}, nil
}

func (p *parser) getVariants() ([]ast.Variant, *Error) {
	variants := make([]ast.Variant, 0, 2)
	hasDefault := false

	for p.current() == '*' || p.current() == '[' {
		isDefault := p.current() == '*'
		if isDefault {
			if hasDefault {
				return nil, p.errorHere(ErrMultipleDefaultVariants, "")
			}
			hasDefault = true
			p.ptr++
		}

		key, err := p.getVariantKey()
		if err != nil {
			return nil, err
		}

		value, err := p.getPattern()
		if err != nil {
			return nil, err
		}
		if value == nil {
			return nil, p.errorHere(ErrMissingValue, "")
		}

		variants = append(variants, ast.Variant{Key: key, Value: *value, Default: isDefault})
		p.skipBlank()
	}

	if !hasDefault {
		return nil, p.errorHere(ErrMissingDefaultVariant, "")
	}

	return variants, nil
}

func (p *parser) getVariantKey() (ast.VariantKey, *Error) {
	if err := p.expectByte('['); err != nil {
		return ast.VariantKey{}, err
	}
	p.skipBlank()

	var key ast.VariantKey
	if b := p.current(); isDigit(b) || b == '-' {
		num, err := p.getNumberLiteral()
		if err != nil {
			return ast.VariantKey{}, err
		}
		key = ast.VariantKey{Kind: ast.KeyNumber, Value: num}
	} else {
		id, err := p.getIdentifier()
		if err != nil {
			return ast.VariantKey{}, err
		}
		key = ast.VariantKey{Kind: ast.KeyIdentifier, Value: id.Name}
	}

	p.skipBlank()
	if err := p.expectByte(']'); err != nil {
		return ast.VariantKey{}, err
	}

	return key, nil
}

func (p *parser) getInlineExpression(onlyLiteral bool) (ast.InlineExpression, *Error) {
	b := p.current()
	switch {
	case p.ptr >= len(p.src):
		if onlyLiteral {
			return nil, p.errorHere(ErrExpectedLiteral, "")
		}
		return nil, p.errorHere(ErrExpectedInlineExpression, "")

	case b == '"':
		value, err := p.getStringLiteral()
		if err != nil {
			return nil, err
		}
		return &ast.StringLiteral{Value: value}, nil

	case isDigit(b):
		num, err := p.getNumberLiteral()
		if err != nil {
			return nil, err
		}
		return &ast.NumberLiteral{Value: num}, nil

	case b == '-':
		if !onlyLiteral && isAlpha(p.byteAt(p.ptr+1)) {
			p.ptr++ // '-'
			return p.getTermReference()
		}
		num, err := p.getNumberLiteral()
		if err != nil {
			return nil, err
		}
		return &ast.NumberLiteral{Value: num}, nil

	case onlyLiteral:
		return nil, p.errorHere(ErrExpectedLiteral, "")

	case b == '$':
		p.ptr++
		id, err := p.getIdentifier()
		if err != nil {
			return nil, err
		}
		return &ast.VariableReference{ID: id}, nil

	case isAlpha(b):
		return p.getMessageOrFunctionReference()

	case b == '{':
		placeable, err := p.getPlaceable()
		if err != nil {
			return nil, err
		}
		return placeable, nil

	default:
		return nil, p.errorHere(ErrExpectedInlineExpression, "")
	}
}

func (p *parser) getTermReference() (ast.InlineExpression, *Error) {
	id, err := p.getIdentifier()
	if err != nil {
		return nil, err
	}
	attr, err := p.getAttributeAccessor()
	if err != nil {
		return nil, err
	}
	args, err := p.getCallArguments()
	if err != nil {
		return nil, err
	}
	return &ast.TermReference{ID: id, Attribute: attr, Arguments: args}, nil
}

func (p *parser) getMessageOrFunctionReference() (ast.InlineExpression, *Error) {
	id, err := p.getIdentifier()
	if err != nil {
		return nil, err
	}

	args, err := p.getCallArguments()
	if err != nil {
		return nil, err
	}
	if args != nil {
		if !isCallee(id.Name.Text(p.src)) {
			return nil, p.errorHere(ErrForbiddenCallee, "")
		}
		return &ast.FunctionReference{ID: id, Arguments: *args}, nil
	}

	attr, err := p.getAttributeAccessor()
	if err != nil {
		return nil, err
	}
	return &ast.MessageReference{ID: id, Attribute: attr}, nil
}

func (p *parser) getAttributeAccessor() (*ast.Identifier, *Error) {
	if p.current() != '.' {
		return nil, nil
	}
	p.ptr++
	id, err := p.getIdentifier()
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// getCallArguments parses "( ... )" if present. It returns nil arguments
// when the next non-blank byte is not an opening parenthesis.
func (p *parser) getCallArguments() (*ast.CallArguments, *Error) {
	p.skipBlank()
	if p.current() != '(' {
		return nil, nil
	}
	p.ptr++

	args := &ast.CallArguments{}
	seen := make(map[string]struct{})

	p.skipBlank()
	for p.ptr < len(p.src) {
		if p.current() == ')' {
			break
		}

		expr, err := p.getInlineExpression(false)
		if err != nil {
			return nil, err
		}

		ref, isRef := expr.(*ast.MessageReference)
		if isRef && ref.Attribute == nil {
			p.skipBlank()
		}

		if isRef && ref.Attribute == nil && p.current() == ':' {
			name := ref.ID.Name.Text(p.src)
			if _, dup := seen[name]; dup {
				return nil, p.errorHere(ErrDuplicatedNamedArgument, name)
			}
			p.ptr++
			p.skipBlank()

			value, err := p.getInlineExpression(true)
			if err != nil {
				return nil, err
			}
			seen[name] = struct{}{}
			args.Named = append(args.Named, ast.NamedArgument{Name: ref.ID, Value: value})
		} else {
			if len(seen) > 0 {
				return nil, p.errorHere(ErrPositionalArgumentFollowsNamed, "")
			}
			args.Positional = append(args.Positional, expr)
		}

		p.skipBlank()
		if p.current() == ',' {
			p.ptr++
		}
		p.skipBlank()
	}

	if err := p.expectByte(')'); err != nil {
		return nil, err
	}

	return args, nil
}

// getStringLiteral parses a quoted string and returns the span between the
// quotes. Escape sequences are validated but left in place.
func (p *parser) getStringLiteral() (ast.Span, *Error) {
	p.ptr++ // '"'
	start := p.ptr

	for p.ptr < len(p.src) {
		switch p.src[p.ptr] {
		case '\\':
			switch next := p.byteAt(p.ptr + 1); next {
			case '\\', '{', '"':
				p.ptr += 2
			case 'u':
				p.ptr += 2
				if err := p.skipUnicodeEscape(4); err != nil {
					return ast.Span{}, err
				}
			case 'U':
				p.ptr += 2
				if err := p.skipUnicodeEscape(6); err != nil {
					return ast.Span{}, err
				}
			default:
				seq := " "
				if p.ptr+1 < len(p.src) {
					seq = string(next)
				}
				return ast.Span{}, p.errorHere(ErrUnknownEscapeSequence, seq)
			}
		case '"':
			end := p.ptr
			p.ptr++
			return ast.Span{Start: start, End: end}, nil
		case '\n':
			return ast.Span{}, p.errorHere(ErrUnterminatedStringLiteral, "")
		default:
			p.ptr++
		}
	}

	return ast.Span{}, p.errorHere(ErrUnterminatedStringLiteral, "")
}

func (p *parser) skipUnicodeEscape(length int) *Error {
	start := p.ptr
	for p.ptr-start < length && isHexDigit(p.current()) && p.ptr < len(p.src) {
		p.ptr++
	}
	if p.ptr-start == length {
		return nil
	}
	end := p.ptr
	if end < len(p.src) {
		end++
	}
	return p.errorHere(ErrInvalidUnicodeEscapeSequence, p.src[start:end])
}

func (p *parser) getNumberLiteral() (ast.Span, *Error) {
	start := p.ptr
	if p.current() == '-' {
		p.ptr++
	}
	if err := p.skipDigits(); err != nil {
		return ast.Span{}, err
	}
	if p.current() == '.' {
		p.ptr++
		if err := p.skipDigits(); err != nil {
			return ast.Span{}, err
		}
	}
	return ast.Span{Start: start, End: p.ptr}, nil
}

func (p *parser) skipDigits() *Error {
	start := p.ptr
	for p.ptr < len(p.src) && isDigit(p.src[p.ptr]) {
		p.ptr++
	}
	if p.ptr == start {
		return p.errorHere(ErrExpectedCharRange, "0-9")
	}
	return nil
}

// isCallee reports whether name may be called as a function.
func isCallee(name string) bool {
	for i := range len(name) {
		b := name[i]
		if b != '_' && b != '-' && !(b >= 'A' && b <= 'Z') && !isDigit(b) {
			return false
		}
	}
	return true
}

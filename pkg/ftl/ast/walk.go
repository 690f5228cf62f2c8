package ast

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(n any) error

// Walk performs a pre-order traversal of an entry and everything below it.
// Nodes are passed as pointers (*Message, *Attribute, *Pattern,
// *TextElement, *Placeable, *SelectExpression, *Variant, and the inline
// expression types). If walkFunc returns a non-nil error, the walk stops
// immediately and returns that error.
func Walk(entry Entry, walkFunc WalkFunc) error {
	if entry == nil {
		return nil
	}

	switch e := entry.(type) {
	case *Message:
		if err := walkFunc(e); err != nil {
			return err
		}
		if e.Value != nil {
			if err := walkPattern(e.Value, walkFunc); err != nil {
				return err
			}
		}
		return walkAttributes(e.Attributes, walkFunc)
	case *Term:
		if err := walkFunc(e); err != nil {
			return err
		}
		if err := walkPattern(&e.Value, walkFunc); err != nil {
			return err
		}
		return walkAttributes(e.Attributes, walkFunc)
	default:
		return walkFunc(e)
	}
}

func walkAttributes(attrs []Attribute, walkFunc WalkFunc) error {
	for i := range attrs {
		if err := walkFunc(&attrs[i]); err != nil {
			return err
		}
		if err := walkPattern(&attrs[i].Value, walkFunc); err != nil {
			return err
		}
	}
	return nil
}

func walkPattern(p *Pattern, walkFunc WalkFunc) error {
	if err := walkFunc(p); err != nil {
		return err
	}
	for _, elem := range p.Elements {
		switch el := elem.(type) {
		case *TextElement:
			if err := walkFunc(el); err != nil {
				return err
			}
		case *Placeable:
			if err := walkExpression(el, walkFunc); err != nil {
				return err
			}
		}
	}
	return nil
}

func walkExpression(expr Expression, walkFunc WalkFunc) error {
	if expr == nil {
		return nil
	}
	if err := walkFunc(expr); err != nil {
		return err
	}

	switch ex := expr.(type) {
	case *Placeable:
		return walkExpression(ex.Expression, walkFunc)
	case *SelectExpression:
		if err := walkExpression(ex.Selector, walkFunc); err != nil {
			return err
		}
		for i := range ex.Variants {
			if err := walkFunc(&ex.Variants[i]); err != nil {
				return err
			}
			if err := walkPattern(&ex.Variants[i].Value, walkFunc); err != nil {
				return err
			}
		}
	case *FunctionReference:
		return walkArguments(&ex.Arguments, walkFunc)
	case *TermReference:
		if ex.Arguments != nil {
			return walkArguments(ex.Arguments, walkFunc)
		}
	}
	return nil
}

func walkArguments(args *CallArguments, walkFunc WalkFunc) error {
	for _, arg := range args.Positional {
		if err := walkExpression(arg, walkFunc); err != nil {
			return err
		}
	}
	for _, named := range args.Named {
		if err := walkExpression(named.Value, walkFunc); err != nil {
			return err
		}
	}
	return nil
}

// FindAll returns all nodes below entry matching the predicate.
func FindAll(entry Entry, predicate func(n any) bool) []any {
	var result []any

	//nolint:errcheck,revive // Walk only returns nil errors in this usage
	Walk(entry, func(node any) error {
		if predicate(node) {
			result = append(result, node)
		}
		return nil
	})

	return result
}

// Variables returns the variable references used by entry, in source order.
func Variables(entry Entry) []*VariableReference {
	var vars []*VariableReference
	for _, n := range FindAll(entry, func(n any) bool {
		_, ok := n.(*VariableReference)
		return ok
	}) {
		vars = append(vars, n.(*VariableReference))
	}
	return vars
}

// ID returns the identifier of a message or term, and false for other entries.
func ID(entry Entry) (Identifier, bool) {
	switch e := entry.(type) {
	case *Message:
		return e.ID, true
	case *Term:
		return e.ID, true
	default:
		return Identifier{}, false
	}
}

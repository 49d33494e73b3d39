package ast

import (
	"fmt"
	"strings"
)

// String renders a pattern back to roughly the surface syntax it was
// parsed from; used by diagnostics and debug tracing.
func (p *PWildcard) String() string { return "_" }
func (p *PVar) String() string      { return p.Name }

func (p *PLiteral) String() string {
	switch p.Lit.Kind {
	case LitInt:
		return fmt.Sprintf("%d", p.Lit.Int)
	case LitFloat:
		return fmt.Sprintf("%g", p.Lit.Float)
	case LitBool:
		return fmt.Sprintf("%v", p.Lit.Bool)
	default:
		return fmt.Sprintf("%q", p.Lit.Str)
	}
}

func (p *PCtor) String() string {
	if len(p.Args) == 0 {
		return fmt.Sprintf("(%s)", p.Ctor)
	}
	parts := make([]string, len(p.Args))
	for i, a := range p.Args {
		parts[i] = patternString(a)
	}
	return fmt.Sprintf("(%s %s)", p.Ctor, strings.Join(parts, " "))
}

func (p *PList) String() string {
	parts := make([]string, len(p.Elems))
	for i, e := range p.Elems {
		parts[i] = patternString(e)
	}
	return fmt.Sprintf("[%s]", strings.Join(parts, " "))
}

func (p *PCons) String() string {
	return fmt.Sprintf("[%s | %s]", patternString(p.Head), patternString(p.Tail))
}

func (p *PTuple) String() string {
	parts := make([]string, len(p.Elems))
	for i, e := range p.Elems {
		parts[i] = patternString(e)
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, ", "))
}

func patternString(p Pattern) string {
	type stringer interface{ String() string }
	if s, ok := p.(stringer); ok {
		return s.String()
	}
	return "<pattern>"
}

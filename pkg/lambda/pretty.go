package lambda

import "strings"

// Pretty prints t in lambda notation with as few parentheses as the
// grammar allows: λx. λy. x (y x).
func Pretty(t Term) string {
	var b strings.Builder
	pretty(&b, t)
	return b.String()
}

func pretty(b *strings.Builder, t Term) {
	switch t := t.(type) {
	case Var:
		b.WriteString(t.Name)

	case Abs:
		b.WriteString("λ")
		b.WriteString(t.Arg)
		b.WriteString(". ")
		pretty(b, t.Body)

	case App:
		if _, ok := t.Fun.(Abs); ok {
			paren(b, t.Fun)
		} else {
			pretty(b, t.Fun)
		}
		b.WriteString(" ")
		if _, ok := t.Arg.(Var); ok {
			pretty(b, t.Arg)
		} else {
			paren(b, t.Arg)
		}

	default:
		panic(malformed(t))
	}
}

func paren(b *strings.Builder, t Term) {
	b.WriteString("(")
	pretty(b, t)
	b.WriteString(")")
}

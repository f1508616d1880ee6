package lambda

// AlphaEquivalent reports whether a and b are equal up to a consistent
// renaming of bound variables.
func AlphaEquivalent(a, b Term) bool {
	return alphaEq(a, b, newNamer(Names(a), Names(b)))
}

func alphaEq(a, b Term, n *namer) bool {
	switch x := a.(type) {
	case Var:
		y, ok := b.(Var)
		return ok && x.Name == y.Name

	case Abs:
		y, ok := b.(Abs)
		if !ok {
			return false
		}
		// one name for both binders, unused anywhere in a or b
		fresh := n.fresh(x.Arg)
		return alphaEq(
			Rename(x, fresh).Body,
			Rename(y, fresh).Body,
			n,
		)

	case App:
		y, ok := b.(App)
		return ok &&
			alphaEq(x.Fun, y.Fun, n) &&
			alphaEq(x.Arg, y.Arg, n)

	default:
		panic(malformed(a))
	}
}

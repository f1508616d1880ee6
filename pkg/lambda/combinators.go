package lambda

// Standard combinators, built fresh on each call.

// I = λx. x
func I() Term {
	return Lambdas([]string{"x"}, Var{Name: "x"})
}

// K = λx. λy. x
func K() Term {
	return Lambdas([]string{"x", "y"}, Var{Name: "x"})
}

// S = λx. λy. λz. x z (y z)
func S() Term {
	x, y, z := Var{Name: "x"}, Var{Name: "y"}, Var{Name: "z"}
	return Lambdas(
		[]string{"x", "y", "z"},
		Apply(x, z, Apply(y, z)),
	)
}

// Omega = λx. x x. Omega applied to itself has no normal form.
func Omega() Term {
	x := Var{Name: "x"}
	return Abs{Arg: "x", Body: Apply(x, x)}
}

// Y = λf. (λx. f (x x)) (λx. f (x x))
func Y() Term {
	f, x := Var{Name: "f"}, Var{Name: "x"}
	half := Abs{Arg: "x", Body: Apply(f, Apply(x, x))}
	return Abs{Arg: "f", Body: Apply(half, half)}
}

// Church returns the Church numeral λf. λx. f (f ... (f x)) with n
// applications of f.
func Church(n int) Term {
	var body Term = Var{Name: "x"}
	for range n {
		body = App{Fun: Var{Name: "f"}, Arg: body}
	}
	return Lambdas([]string{"f", "x"}, body)
}

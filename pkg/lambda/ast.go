package lambda

import (
	"fmt"

	"github.com/samber/lo"
)

// Term represents a lambda calculus term.
// The set of variants is closed: only Var, Abs and App implement it.
type Term interface {
	String() string
	term()
}

// Var represents a variable usage.
type Var struct {
	Name string
}

func (v Var) String() string {
	return v.Name
}

func (Var) term() {}

// Abs represents an abstraction (lambda).
type Abs struct {
	Arg  string
	Body Term
}

func (a Abs) String() string {
	return fmt.Sprintf("(%s: %s)", a.Arg, a.Body)
}

func (Abs) term() {}

// App represents an application.
type App struct {
	Fun Term
	Arg Term
}

func (a App) String() string {
	return fmt.Sprintf("(%s %s)", a.Fun, a.Arg)
}

func (App) term() {}

// Variable returns a reference to name.
func Variable(name string) Term {
	return Var{Name: name}
}

// Abstraction binds name in body.
func Abstraction(name string, body Term) Term {
	return Abs{Arg: name, Body: body}
}

// Application applies fn to arg.
func Application(fn, arg Term) Term {
	return App{Fun: fn, Arg: arg}
}

// Lambdas nests one abstraction per name around body:
// Lambdas([x y], b) = (x: (y: b)).
func Lambdas(names []string, body Term) Term {
	return lo.ReduceRight(names, func(acc Term, name string, _ int) Term {
		return Abs{Arg: name, Body: acc}
	}, body)
}

// Apply applies fn to args from left to right:
// Apply(f, a, b) = ((f a) b).
func Apply(fn Term, args ...Term) Term {
	return lo.Reduce(args, func(acc Term, arg Term, _ int) Term {
		return App{Fun: acc, Arg: arg}
	}, fn)
}

// Equal reports structural (tree) equality. Bound names matter;
// use AlphaEquivalent to ignore them.
func Equal(a, b Term) bool {
	switch x := a.(type) {
	case Var:
		y, ok := b.(Var)
		return ok && x.Name == y.Name
	case Abs:
		y, ok := b.(Abs)
		return ok && x.Arg == y.Arg && Equal(x.Body, y.Body)
	case App:
		y, ok := b.(App)
		return ok && Equal(x.Fun, y.Fun) && Equal(x.Arg, y.Arg)
	default:
		panic(malformed(a))
	}
}

// Size returns the number of nodes in t.
func Size(t Term) int {
	switch t := t.(type) {
	case Var:
		return 1
	case Abs:
		return 1 + Size(t.Body)
	case App:
		return 1 + Size(t.Fun) + Size(t.Arg)
	default:
		panic(malformed(t))
	}
}

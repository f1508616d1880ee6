package lambda

import (
	"strconv"

	"github.com/hashicorp/go-set/v3"
)

// Uniqueify renames binders so that no two abstractions in t share a
// bound name and no bound name equals a free variable of t. Free
// variables keep their names.
//
// The first binder for a name keeps it; the nth repeat is renamed to the
// name followed by n, skipping any candidate already used in t:
//
//	(x: (x: x))           => (x: (x1: x1))
//	((x: x) (x: x))       => ((x: x) (x1: x1))
func Uniqueify(t Term) Term {
	u := &uniqueifier{
		seen: make(map[string]int),
		used: Names(t),
	}
	for name := range FreeVars(t).Items() {
		u.seen[name] = 0
	}
	return u.walk(t)
}

type uniqueifier struct {
	// original binder name -> number of repeats renamed so far
	seen map[string]int
	used *set.Set[string]
}

func (u *uniqueifier) walk(t Term) Term {
	switch t := t.(type) {
	case Var:
		return t

	case Abs:
		n, ok := u.seen[t.Arg]
		if !ok {
			u.seen[t.Arg] = 0
			return Abs{Arg: t.Arg, Body: u.walk(t.Body)}
		}
		var name string
		for {
			n++
			name = t.Arg + strconv.Itoa(n)
			if u.used.Insert(name) {
				break
			}
		}
		u.seen[t.Arg] = n
		body := renameBound(t.Body, t.Arg, name)
		return Abs{Arg: name, Body: u.walk(body)}

	case App:
		fun := u.walk(t.Fun)
		arg := u.walk(t.Arg)
		return App{Fun: fun, Arg: arg}

	default:
		panic(malformed(t))
	}
}

// renameBound replaces occurrences of from that are bound by the binder
// being renamed. It stops at a nested abstraction that binds from again.
// to must not be bound anywhere inside t.
func renameBound(t Term, from, to string) Term {
	switch t := t.(type) {
	case Var:
		if t.Name == from {
			return Var{Name: to}
		}
		return t
	case Abs:
		if t.Arg == from {
			return t
		}
		return Abs{Arg: t.Arg, Body: renameBound(t.Body, from, to)}
	case App:
		return App{
			Fun: renameBound(t.Fun, from, to),
			Arg: renameBound(t.Arg, from, to),
		}
	default:
		panic(malformed(t))
	}
}

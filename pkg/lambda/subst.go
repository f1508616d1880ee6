package lambda

import "github.com/hashicorp/go-set/v3"

// Substitute replaces every free occurrence of name in t with replacement.
// Binders of t that would capture a free variable of replacement are
// renamed first.
func Substitute(t Term, name string, replacement Term) Term {
	if !OccursFree(name, t) {
		return t
	}
	s := &substituter{
		name:        name,
		replacement: replacement,
		free:        FreeVars(replacement),
		namer:       newNamer(Names(t), Names(replacement)),
	}
	s.namer.used.Insert(name)
	return s.subst(t)
}

type substituter struct {
	name        string
	replacement Term
	free        *set.Set[string]
	namer       *namer
}

func (s *substituter) subst(t Term) Term {
	switch t := t.(type) {
	case Var:
		if t.Name == s.name {
			return s.replacement
		}
		return t

	case Abs:
		if t.Arg == s.name {
			// shadowed
			return t
		}
		if !OccursFree(s.name, t.Body) {
			return t
		}
		if s.free.Contains(t.Arg) {
			fresh := s.namer.fresh(t.Arg)
			// fresh is unused in the whole term, so this rename cannot capture
			body := Substitute(t.Body, t.Arg, Var{Name: fresh})
			return Abs{Arg: fresh, Body: s.subst(body)}
		}
		return Abs{Arg: t.Arg, Body: s.subst(t.Body)}

	case App:
		return App{
			Fun: s.subst(t.Fun),
			Arg: s.subst(t.Arg),
		}

	default:
		panic(malformed(t))
	}
}

// Rename replaces the bound variable of abs with to, returning the
// renamed abstraction. to must not occur free in abs.Body.
func Rename(abs Abs, to string) Abs {
	return Abs{
		Arg:  to,
		Body: Substitute(abs.Body, abs.Arg, Var{Name: to}),
	}
}

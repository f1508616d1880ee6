package lambda

import (
	"slices"

	"github.com/hashicorp/go-set/v3"
)

// FreeVars returns the names occurring free in t.
// The set is built fresh on every call.
func FreeVars(t Term) *set.Set[string] {
	s := set.New[string](0)
	collectFree(t, s, nil)
	return s
}

func collectFree(t Term, free *set.Set[string], bound []string) {
	switch t := t.(type) {
	case Var:
		if !slices.Contains(bound, t.Name) {
			free.Insert(t.Name)
		}
	case Abs:
		collectFree(t.Body, free, append(bound, t.Arg))
	case App:
		collectFree(t.Fun, free, bound)
		collectFree(t.Arg, free, bound)
	default:
		panic(malformed(t))
	}
}

// OccursFree reports whether name is free in t.
func OccursFree(name string, t Term) bool {
	switch t := t.(type) {
	case Var:
		return t.Name == name
	case Abs:
		if t.Arg == name {
			return false
		}
		return OccursFree(name, t.Body)
	case App:
		return OccursFree(name, t.Fun) || OccursFree(name, t.Arg)
	default:
		panic(malformed(t))
	}
}

// Names returns every name that appears in t: free variables, bound
// occurrences and binders.
func Names(t Term) *set.Set[string] {
	s := set.New[string](0)
	collectNames(t, s)
	return s
}

func collectNames(t Term, s *set.Set[string]) {
	switch t := t.(type) {
	case Var:
		s.Insert(t.Name)
	case Abs:
		s.Insert(t.Arg)
		collectNames(t.Body, s)
	case App:
		collectNames(t.Fun, s)
		collectNames(t.Arg, s)
	default:
		panic(malformed(t))
	}
}

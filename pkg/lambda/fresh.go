package lambda

import (
	"strconv"
	"strings"

	"github.com/hashicorp/go-set/v3"
)

// namer issues names that are not in its used set. Each issued name is
// added to the set, so a namer never returns the same name twice.
// A namer belongs to exactly one top-level operation.
type namer struct {
	used    *set.Set[string]
	counter int
}

func newNamer(used ...*set.Set[string]) *namer {
	n := &namer{
		used: set.New[string](0),
	}
	for _, s := range used {
		n.used.InsertSet(s)
	}
	return n
}

func (n *namer) avoid(names *set.Set[string]) {
	n.used.InsertSet(names)
}

// fresh returns base followed by the smallest counter value that gives an
// unused name. The counter only increases.
func (n *namer) fresh(base string) string {
	base = stripSuffix(base)
	for {
		n.counter++
		name := base + strconv.Itoa(n.counter)
		if n.used.Insert(name) {
			return name
		}
	}
}

// stripSuffix turns x12 into x so renamed names stay short.
func stripSuffix(name string) string {
	trimmed := strings.TrimRight(name, "0123456789")
	if trimmed == "" {
		return "v"
	}
	return trimmed
}

package lambda

import (
	"fmt"
	"iter"
	"strings"
)

// IsRedex reports whether t contains a redex anywhere: an abstraction
// applied directly to an argument.
func IsRedex(t Term) bool {
	switch t := t.(type) {
	case Var:
		return false
	case Abs:
		return IsRedex(t.Body)
	case App:
		if _, ok := t.Fun.(Abs); ok {
			return true
		}
		return IsRedex(t.Fun) || IsRedex(t.Arg)
	default:
		panic(malformed(t))
	}
}

// ReduceStep contracts the leftmost-outermost redex of t. A term in
// normal form is returned unchanged.
func ReduceStep(t Term) Term {
	res, _, _ := step(t)
	return res
}

// step returns the reduced term, the path to the contracted redex and
// whether a redex was contracted at all.
func step(t Term) (Term, []string, bool) {
	switch t := t.(type) {
	case Var:
		return t, nil, false

	case Abs:
		body, path, ok := step(t.Body)
		if !ok {
			return t, nil, false
		}
		return Abs{Arg: t.Arg, Body: body}, append([]string{"body"}, path...), true

	case App:
		if abs, ok := t.Fun.(Abs); ok {
			return Substitute(abs.Body, abs.Arg, t.Arg), nil, true
		}
		if fun, path, ok := step(t.Fun); ok {
			return App{Fun: fun, Arg: t.Arg}, append([]string{"fun"}, path...), true
		}
		if arg, path, ok := step(t.Arg); ok {
			return App{Fun: t.Fun, Arg: arg}, append([]string{"arg"}, path...), true
		}
		return t, nil, false

	default:
		panic(malformed(t))
	}
}

// State is the position of a Stepper in its reduction sequence.
type State int

const (
	StateInitial State = iota
	StateStepping
	StateNormalForm
)

func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateStepping:
		return "stepping"
	case StateNormalForm:
		return "normal-form"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Stepper walks the normal-order reduction sequence of a term one step
// per call to Next. The first element is the uniqueified input.
// A Stepper is not safe for concurrent use; create one per consumer.
type Stepper struct {
	start   Term
	current Term
	state   State
	steps   int
	maxSize int

	traceBuf []TraceEvent
	traceCap int
	traceOn  bool
}

// NewStepper returns a Stepper for t in StateInitial.
func NewStepper(t Term) *Stepper {
	return &Stepper{
		start: t,
		state: StateInitial,
	}
}

// Next advances to the next term of the sequence. It returns false once
// the current term is in normal form; the last term stays available
// through Term.
func (s *Stepper) Next() bool {
	switch s.state {

	case StateInitial:
		s.current = Uniqueify(s.start)
		s.state = StateStepping
		s.observe(s.current)
		s.recordTrace(RuleUniqueify, nil, s.current)
		return true

	case StateStepping:
		if !IsRedex(s.current) {
			s.state = StateNormalForm
			return false
		}
		next, path, ok := step(s.current)
		if !ok {
			// IsRedex and step disagree; treat as a fixpoint
			s.state = StateNormalForm
			return false
		}
		s.current = next
		s.steps++
		s.observe(next)
		s.recordTrace(RuleBeta, path, next)
		return true

	default:
		return false
	}
}

// Term returns the current element. It is nil before the first Next.
func (s *Stepper) Term() Term {
	return s.current
}

// State reports whether the stepper has started or reached normal form.
func (s *Stepper) State() State {
	return s.state
}

// Steps returns the number of beta steps performed so far.
func (s *Stepper) Steps() int {
	return s.steps
}

func (s *Stepper) observe(t Term) {
	if size := Size(t); size > s.maxSize {
		s.maxSize = size
	}
}

// Stats holds reduction statistics.
type Stats struct {
	Steps   int
	MaxSize int
}

func (s *Stepper) Stats() Stats {
	return Stats{
		Steps:   s.steps,
		MaxSize: s.maxSize,
	}
}

// Reduce returns the lazy normal-order reduction sequence of t: the
// uniqueified t, then one term per beta step. The sequence is infinite
// when t has no normal form; stop ranging to cancel. Each call starts a
// new sequence.
func Reduce(t Term) iter.Seq[Term] {
	return func(yield func(Term) bool) {
		s := NewStepper(t)
		for s.Next() {
			if !yield(s.Term()) {
				return
			}
		}
	}
}

// Normalize reduces t for at most limit beta steps. It returns the last
// term, the number of steps taken and ErrStepLimit if the last term still
// contains a redex.
func Normalize(t Term, limit int) (Term, int, error) {
	s := NewStepper(t)
	s.Next()
	for s.Steps() < limit {
		if !s.Next() {
			return s.Term(), s.Steps(), nil
		}
	}
	if IsRedex(s.Term()) {
		return s.Term(), s.Steps(), fmt.Errorf("%w after %d steps", ErrStepLimit, s.Steps())
	}
	return s.Term(), s.Steps(), nil
}

func joinPath(path []string) string {
	if len(path) == 0 {
		return "."
	}
	return strings.Join(path, ".")
}

package lambda

type RuleKind int

const (
	RuleUnknown RuleKind = iota
	RuleUniqueify
	RuleBeta
)

func (r RuleKind) String() string {
	switch r {
	case RuleUniqueify:
		return "uniqueify"
	case RuleBeta:
		return "beta"
	default:
		return "unknown"
	}
}

// TraceEvent describes one element of a reduction sequence.
// Path locates the contracted redex from the root, e.g. "fun.body";
// "." is the root itself.
type TraceEvent struct {
	Step int
	Rule RuleKind
	Path string
	Size int
}

// EnableTrace records the first capacity events from now on.
func (s *Stepper) EnableTrace(capacity int) {
	if capacity <= 0 {
		capacity = 1
	}
	s.traceBuf = make([]TraceEvent, 0, capacity)
	s.traceCap = capacity
	s.traceOn = true
}

func (s *Stepper) DisableTrace() {
	s.traceOn = false
}

func (s *Stepper) TraceSnapshot() []TraceEvent {
	if !s.traceOn {
		return nil
	}
	res := make([]TraceEvent, len(s.traceBuf))
	copy(res, s.traceBuf)
	return res
}

func (s *Stepper) recordTrace(rule RuleKind, path []string, t Term) {
	if !s.traceOn || len(s.traceBuf) >= s.traceCap {
		return
	}
	s.traceBuf = append(s.traceBuf, TraceEvent{
		Step: s.steps,
		Rule: rule,
		Path: joinPath(path),
		Size: Size(t),
	})
}

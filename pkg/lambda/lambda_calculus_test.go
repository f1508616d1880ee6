package lambda

import (
	"testing"
)

func normalize(t *testing.T, input string) (Term, int) {
	t.Helper()
	term, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	result, steps, err := Normalize(term, 1000)
	if err != nil {
		t.Fatalf("Normalize %s: %v", input, err)
	}
	return result, steps
}

func expectTerm(t *testing.T, got Term, want string) {
	t.Helper()
	expected, err := Parse(want)
	if err != nil {
		t.Fatalf("Parse error for expected output: %v", err)
	}
	if !AlphaEquivalent(got, expected) {
		t.Errorf("Expected %s, got %s", Pretty(expected), Pretty(got))
	}
}

// TestIdentityFunction tests the simplest lambda term: (λx. x).
// It is already in normal form, so the reduction sequence holds only the
// input.
func TestIdentityFunction(t *testing.T) {
	result, steps := normalize(t, "(x: x)")
	if steps != 0 {
		t.Errorf("Expected 0 steps, got %d", steps)
	}
	expectTerm(t, result, "y: y")
}

// TestIdentityApplied is the first concrete scenario: (λx. x) y reduces
// in one step to y, and the sequence has two elements.
func TestIdentityApplied(t *testing.T) {
	term := App{Fun: Abs{Arg: "x", Body: Var{Name: "x"}}, Arg: Var{Name: "y"}}

	var seq []Term
	for step := range Reduce(term) {
		seq = append(seq, step)
	}
	if len(seq) != 2 {
		t.Fatalf("Expected 2 terms, got %d: %v", len(seq), seq)
	}
	if !Equal(seq[1], Var{Name: "y"}) {
		t.Fatalf("Expected y, got %v", seq[1])
	}
	if IsRedex(seq[1]) {
		t.Fatalf("Expected normal form, got %v", seq[1])
	}
}

// TestKCombinator tests (λx. λy. x) a b → a in two steps: the second
// argument is discarded.
func TestKCombinator(t *testing.T) {
	term := Apply(K(), Var{Name: "a"}, Var{Name: "b"})
	result, steps, err := Normalize(term, 10)
	if err != nil {
		t.Fatal(err)
	}
	if steps != 2 {
		t.Errorf("Expected 2 steps, got %d", steps)
	}
	if v, ok := result.(Var); !ok || v.Name != "a" {
		t.Errorf("Expected variable 'a', got %v", result)
	}
}

// TestSCombinator tests S K K e → e. S K K behaves as the identity.
func TestSCombinator(t *testing.T) {
	result, _ := normalize(t, "((((x: (y: (z: ((x z) (y z))))) (a: (b: a))) (c: (d: c))) e)")
	if v, ok := result.(Var); !ok || v.Name != "e" {
		t.Errorf("Expected variable 'e', got %v", result)
	}
}

// TestSharing tests an argument used twice: (λf. f (f x)) (λy. y) → x.
func TestSharing(t *testing.T) {
	result, steps := normalize(t, "((f: (f (f x))) (y: y))")
	expectTerm(t, result, "x")
	if steps != 3 {
		t.Errorf("Expected 3 steps, got %d", steps)
	}
}

// TestChurchNumerals tests Church arithmetic applied to free f and x so
// the result can be read back directly.
func TestChurchNumerals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Zero",
			input:    "(f: x: x) f x",
			expected: "x",
		},
		{
			name:     "Succ one",
			input:    "(n: f: x: f (n f x)) (f: x: f x) f x",
			expected: "f (f x)",
		},
		{
			name:     "Add two two",
			input:    "(m: n: f: x: m f (n f x)) (f: x: f (f x)) (f: x: f (f x)) f x",
			expected: "f (f (f (f x)))",
		},
		{
			name:     "Mul two two",
			input:    "(m: n: f: m (n f)) (f: x: f (f x)) (f: x: f (f x)) f x",
			expected: "f (f (f (f x)))",
		},
		{
			name:     "Pow two three",
			input:    "(b: e: e b) (f: x: f (f x)) (f: x: f (f (f x))) f x",
			expected: "f (f (f (f (f (f (f (f x)))))))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _ := normalize(t, tt.input)
			expectTerm(t, result, tt.expected)
		})
	}
}

// TestChurchConstructor checks Church(n) against the parsed numerals.
func TestChurchConstructor(t *testing.T) {
	expectTerm(t, Church(0), "f: x: x")
	expectTerm(t, Church(3), "f: x: f (f (f x))")
}

// TestBooleans tests Church booleans and boolean operations, applied to
// two free variables that stand for the branches.
func TestBooleans(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "NOT true",
			input:    "(b: b (x: y: y) (x: y: x)) (x: y: x) a b",
			expected: "b",
		},
		{
			name:     "NOT false",
			input:    "(b: b (x: y: y) (x: y: x)) (x: y: y) a b",
			expected: "a",
		},
		{
			name:     "AND true true",
			input:    "(p: q: p q p) (x: y: x) (x: y: x) a b",
			expected: "a",
		},
		{
			name:     "AND true false",
			input:    "(p: q: p q p) (x: y: x) (x: y: y) a b",
			expected: "b",
		},
		{
			name:     "pair fst",
			input:    "(p: p (x: y: x)) ((x: y: f: f x y) a b)",
			expected: "a",
		},
		{
			name:     "pair snd",
			input:    "(p: p (x: y: y)) ((x: y: f: f x y) a b)",
			expected: "b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _ := normalize(t, tt.input)
			expectTerm(t, result, tt.expected)
		})
	}
}

// TestLetBindings tests the let sugar of the parser end to end.
func TestLetBindings(t *testing.T) {
	result, _ := normalize(t, "let i = x: x; k = x: y: x; in k (i a) b")
	expectTerm(t, result, "a")

	result, _ = normalize(t, "let x = a; in let x = b; in x")
	expectTerm(t, result, "b")
}

// TestNormalOrderDiscardsDivergence tests that normal order finds the
// normal form when an unused argument diverges: K a (Ω Ω) → a.
func TestNormalOrderDiscardsDivergence(t *testing.T) {
	omega := Application(Omega(), Omega())
	result, steps, err := Normalize(Apply(K(), Var{Name: "a"}, omega), 10)
	if err != nil {
		t.Fatal(err)
	}
	if steps != 2 {
		t.Errorf("Expected 2 steps, got %d", steps)
	}
	expectTerm(t, result, "a")
}

// TestCaptureDuringReduction reduces (λx. λy. x) y, where the argument is
// the free name the inner binder would capture.
func TestCaptureDuringReduction(t *testing.T) {
	result, _ := normalize(t, "(x: y: x) y")
	abs, ok := result.(Abs)
	if !ok {
		t.Fatalf("Expected abstraction, got %v", result)
	}
	if abs.Arg == "y" {
		t.Fatalf("Free y was captured: %v", result)
	}
	if !Equal(abs.Body, Var{Name: "y"}) {
		t.Fatalf("Expected body y, got %v", abs.Body)
	}
	if !FreeVars(result).Contains("y") {
		t.Fatalf("Expected y free in %v", result)
	}
}

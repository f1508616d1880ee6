package gentests

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vic/tromp/pkg/lambda"
	"github.com/vic/tromp/pkg/tromp"
)

// StepLimit bounds every generated reduction.
const StepLimit = 10000

// CheckLambdaReduction reduces inputStr to normal form, compares the
// result with outputStr up to renaming of bound variables, and lays out
// every element of the reduction sequence.
func CheckLambdaReduction(t *testing.T, testName string, inputStr string, outputStr string) {
	expectedTerm, err := lambda.Parse(strings.TrimSpace(outputStr))
	if err != nil {
		t.Fatalf("Parse error for expected output: %v", err)
	}

	term, err := lambda.Parse(strings.TrimSpace(inputStr))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	start := time.Now()
	actualTerm, steps, err := lambda.Normalize(term, StepLimit)
	if err != nil {
		t.Fatalf("%s: %v", testName, err)
	}
	elapsed := time.Since(start)

	if !lambda.AlphaEquivalent(actualTerm, expectedTerm) {
		t.Errorf("Mismatch in %s:\nInput: %s\nExpected: %s\nActual:   %s",
			testName, inputStr, lambda.Pretty(expectedTerm), lambda.Pretty(actualTerm))
	}

	// closed terms stay closed under reduction, so either every element
	// can be drawn or none can
	closed := lambda.FreeVars(term).Empty()
	i := 0
	for element := range lambda.Reduce(term) {
		_, _, err := tromp.LayoutTerm(element)
		switch {
		case closed && err != nil:
			t.Fatalf("%s: layout of element %d %s: %v", testName, i, lambda.Pretty(element), err)
		case !closed && lambda.FreeVars(element).Empty() && err != nil:
			t.Fatalf("%s: layout of closed element %d %s: %v", testName, i, lambda.Pretty(element), err)
		case !lambda.FreeVars(element).Empty() && !errors.Is(err, tromp.ErrUnboundVariable):
			t.Fatalf("%s: layout of open element %d %s: got %v", testName, i, lambda.Pretty(element), err)
		}
		i++
		if i > steps {
			break
		}
	}

	t.Logf("%s: %d reductions in %v", testName, steps, elapsed)
}

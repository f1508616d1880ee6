package gentests

import _ "embed"
import "testing"
import "github.com/vic/tromp/cmd/gentests/helper"

//go:embed input.lam
var input string

//go:embed output.lam
var output string

func Test_006_s_1_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "006_s_1", input, output)
}

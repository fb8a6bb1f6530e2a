package gotoh_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/framealign/gotoh"
	"github.com/katalvlaran/framealign/metric"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleAligner_Align
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A reference take and an edited take, one letter per frame.
//	  a = AAGGTAGCACGT   (reference)
//	  b = AAAAGGTACGT    (two frames prepended, three frames cut)
//
// Options:
//   - metric       = identity (0 if equal, 1 otherwise)
//   - gapOpen      = -0.5
//   - gapExtension = 0       (long gaps cost the same as short ones)
//
// Complexity: O(N·M) time, O(N·M) memory
func ExampleAligner_Align() {
	a := strings.Split("AAGGTAGCACGT", "")
	b := strings.Split("AAAAGGTACGT", "")

	g, err := gotoh.New[string](metric.Equal[string](), -0.5, 0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	script, err := g.Align(a, b)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(script)
	fmt.Println(script.Counts())
	// Output:
	// IIPPPPPDDDPPPP
	// map[PERFECT:9 INSERTION:2 DELETION:3]
}

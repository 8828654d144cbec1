// Completion: 100% - Debug tracing complete
package bajo

import (
	"fmt"
	"os"
)

// logging.go mirrors the teacher's own debug-tracing idiom (see its
// main.go/codegen.go): no third-party logging library, just a bool gate
// in front of fmt.Fprintf(os.Stderr, ...). The gate is a single
// package-level var, so it turns tracing on or off for every build in the
// process at once.

// Verbose, when true, makes buildLayout emit DEBUG lines to stderr as the
// fixpoint search runs: pass count, snapshot convergence, and oscillation-
// breaker injections.
var Verbose bool

func debugf(format string, args ...any) {
	if !Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, "DEBUG "+format+"\n", args...)
}

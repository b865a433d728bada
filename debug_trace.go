package shishua

import (
	"fmt"
	"io"
	"os"
)

// debugEnabled controls whether debug tracing is enabled via SHISHUA_DEBUG env var
var debugEnabled = os.Getenv("SHISHUA_DEBUG") == "1"

// traceOutput receives trace lines, keeping them off stdout.
var traceOutput io.Writer = os.Stderr

// traceLog outputs a debug message if tracing is enabled
func traceLog(format string, args ...interface{}) {
	if debugEnabled {
		fmt.Fprintf(traceOutput, "[TRACE] "+format+"\n", args...)
	}
}

// traceLanes outputs each lane group on its own line
func traceLanes(name string, groups []lanes) {
	if debugEnabled {
		fmt.Fprintf(traceOutput, "[TRACE] %s:\n", name)
		for i, g := range groups {
			fmt.Fprintf(traceOutput, "[TRACE]   g%d = %016x %016x %016x %016x\n", i, g[0], g[1], g[2], g[3])
		}
	}
}

// traceState outputs the state, pending output and counter lanes
func traceState(name string, st *state) {
	if debugEnabled {
		traceLanes(name+" (state)", st.s[:])
		traceLanes(name+" (output)", st.out[:])
		traceLanes(name+" (counter)", []lanes{st.counter})
	}
}

package operation

import (
	"time"

	metrics "github.com/rcrowley/go-metrics"
)

// timerName builds "sparsegrid.<op>.<gridtype>.<call>".
func timerName(op, gridType, call string) string {
	return "sparsegrid." + op + "." + gridType + "." + call
}

// timed records the duration of fn in t.
func timed(t metrics.Timer, fn func() error) error {
	start := time.Now()
	err := fn()
	t.UpdateSince(start)

	return err
}

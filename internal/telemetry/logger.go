// Package telemetry provides the diagnostic logging hook used by the
// defence controller. It has no opinion on where log lines end up; callers
// embedding this module in a larger program redirect or silence it with
// SetLogger.
package telemetry

import "log"

// Logf is the package-level diagnostic logger. It defaults to log.Printf but
// may be replaced by SetLogger. The defence controller calls it once per
// loop iteration; nothing in internal/flatland depends on its output.
var Logf func(format string, v ...interface{}) = log.Printf

// SetLogger replaces the package logger. Passing nil installs a no-op
// logger, which is useful for quiet test runs.
func SetLogger(f func(format string, v ...interface{})) {
	if f == nil {
		Logf = func(string, ...interface{}) {}
		return
	}
	Logf = f
}

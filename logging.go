package golftraj

import (
	"os"

	kitlog "github.com/go-kit/kit/log"
)

// NewLogger returns a logfmt logger over stdout tagged with a static
// subsystem field. golftraj keys a logger per subsystem rather than per
// ball, since there is exactly one ball in flight per Simulate call;
// Simulate uses the subsystem name "flight".
func NewLogger(subsys string) kitlog.Logger {
	l := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	return kitlog.With(l, "subsys", subsys)
}

// discardLogger is a no-op logger. Nothing in the package uses it:
// Simulate always logs to stdout through NewLogger.
var discardLogger = kitlog.NewNopLogger()

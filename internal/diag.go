package internal

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Diag is the internal diagnostic channel: trace/debug information the
// embedder or CLI cares about, never the language's own §6.3 error
// format (which interpreterState writes directly, unformatted by
// logrus, so its wire shape stays exact). SPEC_FULL.md §10.
type Diag struct {
	log *logrus.Logger
}

// NewDiag builds a Diag writing to w. debug enables Trace-level output
// (resolver depth assignment, native-function failures); otherwise only
// Warn-and-above is emitted.
func NewDiag(w io.Writer, debug bool) *Diag {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if debug {
		log.SetLevel(logrus.TraceLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return &Diag{log: log}
}

func (d *Diag) Tracef(format string, args ...interface{}) { d.log.Tracef(format, args...) }
func (d *Diag) Warnf(format string, args ...interface{})   { d.log.Warnf(format, args...) }

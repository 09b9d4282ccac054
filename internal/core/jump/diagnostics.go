package jump

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

// Sink receives diagnostic messages from a session.
type Sink interface {
	Logf(format string, args ...any)
}

// Recorder is an append-only in-memory Sink.
type Recorder struct {
	entries []string
}

// Logf implements Sink.
func (r *Recorder) Logf(format string, args ...any) {
	r.entries = append(r.entries, fmt.Sprintf(format, args...))
}

// Entries returns a copy of the recorded messages in order.
func (r *Recorder) Entries() []string {
	return slices.Clone(r.entries)
}

// ZerologSink forwards diagnostics to a zerolog logger at debug level.
type ZerologSink struct {
	Logger zerolog.Logger
}

// Logf implements Sink.
func (z ZerologSink) Logf(format string, args ...any) {
	z.Logger.Debug().Msgf(format, args...)
}

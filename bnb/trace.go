package bnb

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Tracer receives diagnostic events from a Search call.
type Tracer interface {
	// Visit is called once per node popped from the stack.
	Visit(desc string)
	// Discard is called once per node dropped without expansion.
	Discard(desc string, reason DiscardReason)
}

// NopTracer drops every event.
type NopTracer struct{}

func (NopTracer) Visit(_ string) {}

func (NopTracer) Discard(_ string, _ DiscardReason) {}

// LogTracer writes one zerolog event per trace line at Debug level.
type LogTracer struct {
	Logger zerolog.Logger
}

// NewLogTracer returns a LogTracer writing plain JSON lines to w.
func NewLogTracer(w io.Writer) LogTracer {
	return LogTracer{Logger: zerolog.New(w).Level(zerolog.DebugLevel)}
}

func (t LogTracer) Visit(desc string) {
	t.Logger.Debug().Str("node", desc).Msg("exploring")
}

func (t LogTracer) Discard(desc string, reason DiscardReason) {
	t.Logger.Debug().Str("node", desc).Stringer("reason", reason).Msg("removing")
}

// resolveTracer picks the effective sink for opts.
func resolveTracer(opts Options) Tracer {
	if !opts.Trace {
		return NopTracer{}
	}
	if opts.Tracer != nil {
		return opts.Tracer
	}

	return LogTracer{Logger: log.Logger}
}

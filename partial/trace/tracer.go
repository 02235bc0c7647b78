// Package trace decorates partial functions so that every Apply is logged with zap.
//
// The decorated function has the same type as the original and keeps the same
// semantics: arguments and results are passed through, and panics are not
// recovered. Each call is logged once, after it returns, with
//
//   - the function name and the number of arguments it was applied with,
//   - a fresh call id,
//   - the start time and elapsed duration of the call,
//   - optionally a digest of the arguments, never their raw values.
//
// A call that unwinds by panic is logged at warn level as "apply did not return".
package trace

import (
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
	"go.uber.org/zap"
)

type Tracer struct {
	logger *zap.Logger
	config Config
}

// New creates a Tracer writing to logger. A nil logger discards everything.
func New(logger *zap.Logger, config Config) *Tracer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracer{
		logger: logger,
		config: NewConfig(config.Level, config.DigestArgs),
	}
}

// call is the bookkeeping for one Apply.
type call struct {
	tracer   *Tracer
	name     string
	arity    int
	id       uuid.UUID
	start    time.Time
	digest   uint64
	returned bool
}

func (t *Tracer) begin(name string, args ...any) *call {
	c := &call{
		tracer: t,
		name:   name,
		arity:  len(args),
		id:     uuid.New(),
		start:  time.Now(),
	}
	if t.config.DigestArgs {
		c.digest = digest(args)
	}
	return c
}

// end must be deferred by the caller; returned is set only after Apply came back.
func (c *call) end() {
	span := timespan.BetweenTimes(c.start, time.Now())
	fields := []zap.Field{
		zap.String("function", c.name),
		zap.Int("arity", c.arity),
		zap.Stringer("call_id", c.id),
		zap.Time("start", span.Start()),
		zap.Duration("elapsed", span.Duration()),
	}
	if c.tracer.config.DigestArgs {
		fields = append(fields, zap.Uint64("args_digest", c.digest))
	}

	if !c.returned {
		c.tracer.logger.Warn("apply did not return", fields...)
		return
	}
	if ce := c.tracer.logger.Check(c.tracer.config.Level, "applied"); ce != nil {
		ce.Write(fields...)
	}
}

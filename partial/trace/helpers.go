package trace

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewTestTracer logs every call to stdout with a development console encoder.
func NewTestTracer() *Tracer {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return New(zap.New(consoleCore), NewConfig(zapcore.DebugLevel, true))
}

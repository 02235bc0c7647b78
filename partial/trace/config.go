package trace

import "go.uber.org/zap/zapcore"

// Config controls what a Tracer writes for every Apply.
type Config struct {
	Level      zapcore.Level // default: debug; clamped to [debug, error]
	DigestArgs bool          // default: false; log an xxhash digest of the arguments
}

func NewConfig(level zapcore.Level, digestArgs bool) Config {
	if level < zapcore.DebugLevel {
		level = zapcore.DebugLevel
	}
	// Levels above error would make the logger panic or exit on a successful call.
	if level > zapcore.ErrorLevel {
		level = zapcore.ErrorLevel
	}
	return Config{
		Level:      level,
		DigestArgs: digestArgs,
	}
}

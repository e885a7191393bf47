package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewConsole returns a development-style console logger writing to w.
func NewConsole(w zapcore.WriteSyncer, level zapcore.Level) *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(w),
		level,
	)
	return zap.New(consoleCore)
}

// NewStdout is NewConsole on os.Stdout, at debug level when debug is set
// and info level otherwise.
func NewStdout(debug bool) *zap.Logger {
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}
	return NewConsole(os.Stdout, level)
}

package logging

import (
	"io"
	"log/slog"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// New creates a *slog.Logger writing JSON to stderr and optionally to logFile.
// Records are encoded by a zap core. It also sets the logger as the slog
// default so package-level slog calls work. The returned cleanup func flushes
// the core and closes the log file if one was opened; callers must defer it.
func New(level, logFile string) (*slog.Logger, func(), error) {
	writers := []io.Writer{os.Stderr}
	var file *os.File

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return nil, nil, err
		}
		writers = append(writers, f)
		file = f
	}

	core := newCore(io.MultiWriter(writers...), parseLevel(level))
	logger := slog.New(zapslog.NewHandler(core))
	slog.SetDefault(logger)

	cleanup := func() {
		_ = core.Sync()
		if file != nil {
			_ = file.Close()
		}
	}
	return logger, cleanup, nil
}

func newCore(w io.Writer, lvl zapcore.Level) zapcore.Core {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "time"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(w), lvl)
}

func parseLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// SetupLogger installs the default slog logger used by the command
// line tools. Logs are emitted as JSON on stderr so that matrix data
// written to stdout stays machine readable.
func SetupLogger(loglevel string) {
	SetupLoggerWithWriter(loglevel, os.Stderr)
}

// SetupLoggerWithWriter is SetupLogger with an explicit destination,
// mainly for tests.
func SetupLoggerWithWriter(loglevel string, w io.Writer) {
	ops := slog.HandlerOptions{
		AddSource: true,
		Level:     ToLogLevel(loglevel),
	}
	handler := slog.NewJSONHandler(w, &ops)
	errFmtHandler := WrapByErrFmtHandler(handler)
	slog.SetDefault(slog.New(errFmtHandler))
}

func ToLogLevel(level string) slog.Level {
	switch level {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level :%s", level))
	}
}

const (
	ErrAttrKey        = "error"
	StacktraceAttrKey = "stacktrace"
)

// ErrAttr is a wrapper to pass err to slog.
func ErrAttr(err error) slog.Attr {
	return slog.Any(ErrAttrKey, err)
}

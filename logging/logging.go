package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/productscience/liquidstaking/x/liquidstaking/types"
)

const TraceLevel = -8

// Setup installs a JSON handler at the named level as the default logger.
// Unknown level names fall back to info.
func Setup(w io.Writer, level string) {
	var logLevel slog.LevelVar
	logLevel.Set(ParseLevel(level))
	slog.SetDefault(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: &logLevel,
	})))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return TraceLevel
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func setNoopLogger() {
	var logLevel slog.LevelVar
	// above every level we log at
	logLevel.Set(slog.Level(100))

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: &logLevel,
	}))
	slog.SetDefault(logger)
}

// WithNoopLogger runs action with logging silenced, for commands whose
// stdout is machine readable.
func WithNoopLogger(action func() (any, error)) (any, error) {
	currentLogger := slog.Default()
	defer slog.SetDefault(currentLogger)

	setNoopLogger()
	return action()
}

func Warn(msg string, subSystem types.SubSystem, keyvals ...interface{}) {
	slog.Warn(msg, withSubsystem(subSystem, keyvals)...)
}

func Info(msg string, subSystem types.SubSystem, keyvals ...interface{}) {
	slog.Info(msg, withSubsystem(subSystem, keyvals)...)
}

func Error(msg string, subSystem types.SubSystem, keyvals ...interface{}) {
	attrs := withSubsystem(subSystem, keyvals)
	for i := 1; i < len(keyvals); i += 2 {
		if err, ok := keyvals[i].(error); ok {
			attrs = append(attrs, "error-type", reflect.TypeOf(err).String())
		}
	}
	slog.Error(msg, attrs...)
}

func Debug(msg string, subSystem types.SubSystem, keyvals ...interface{}) {
	slog.Debug(msg, withSubsystem(subSystem, keyvals)...)
}

func Trace(msg string, subSystem types.SubSystem, keyvals ...interface{}) {
	slog.Log(context.Background(), TraceLevel, msg, withSubsystem(subSystem, keyvals)...)
}

func withSubsystem(subSystem types.SubSystem, keyvals []interface{}) []interface{} {
	return append([]interface{}{"subsystem", subSystem.String()}, keyvals...)
}

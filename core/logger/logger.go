package logger

import (
	"log/slog"
	"os"
	"sync"
)

var (
	once sync.Once
	log  *slog.Logger
)

// Init configures the process-wide logger. Safe to call more than once;
// only the first call wins.
func Init(level string) {
	once.Do(func() {
		var lvl slog.Level
		switch level {
		case "debug":
			lvl = slog.LevelDebug
		case "warn":
			lvl = slog.LevelWarn
		case "error":
			lvl = slog.LevelError
		default:
			lvl = slog.LevelInfo
		}

		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	})
}

func std() *slog.Logger {
	if log == nil {
		Init("info")
	}
	return log
}

func Info(msg string, args ...any) {
	std().Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	std().Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	std().Error(msg, normalize(args)...)
}

// normalize accepts both key-value pairs and bare values (typically errors)
// and returns a well-formed attribute list for slog.
func normalize(args []any) []any {
	out := make([]any, 0, len(args)+2)
	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case string:
			if i+1 < len(args) {
				out = append(out, v, args[i+1])
				i++
			} else {
				out = append(out, "detail", v)
			}
		case error:
			out = append(out, "error", v)
		default:
			out = append(out, "value", v)
		}
	}
	return out
}

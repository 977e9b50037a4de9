package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/Myriam12340/SFMC-HTML-Converter-for-Renault/internal/config"
)

var (
	// Logger is the process logger installed by Init.
	Logger      *slog.Logger
	atomicLevel *slog.LevelVar
	// output is the log file opened by Init, nil for stdout and stderr.
	output io.Closer
)

// Init installs the process logger described by cfg, closing the log file
// of a previous Init.
func Init(cfg config.LoggerConfig) error {
	writer, closer, err := openWriter(cfg.OutputPath)
	if err != nil {
		return err
	}
	if err := Close(); err != nil {
		if closer != nil {
			closer.Close()
		}
		return err
	}
	output = closer

	level := new(slog.LevelVar)
	level.Set(ParseLevel(cfg.Level))
	atomicLevel = level
	Logger = newLogger(writer, cfg.Format, level)
	slog.SetDefault(Logger)
	return nil
}

// Close closes the log file opened by Init, if any.
func Close() error {
	if output == nil {
		return nil
	}
	err := output.Close()
	output = nil
	return err
}

// New builds a logger writing to w.
func New(w io.Writer, cfg config.LoggerConfig) *slog.Logger {
	return newLogger(w, cfg.Format, ParseLevel(cfg.Level))
}

func newLogger(w io.Writer, format string, level slog.Leveler) *slog.Logger {
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:       level,
		TimeFormat:  time.DateTime,
		NoColor:     !isTerminal(w),
		ReplaceAttr: replaceErrorAttr,
	}))
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openWriter(path string) (io.Writer, io.Closer, error) {
	switch strings.ToLower(path) {
	case "stderr", "":
		return os.Stderr, nil, nil
	case "stdout":
		return os.Stdout, nil, nil
	default:
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, nil, err
		}
		return f, f, nil
	}
}

func replaceErrorAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == "error" && a.Value.Kind() == slog.KindAny {
		if err, ok := a.Value.Any().(error); ok {
			return tint.Err(err)
		}
	}
	return a
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// SetLevel changes the level of the logger installed by Init.
func SetLevel(level slog.Level) {
	if atomicLevel != nil {
		atomicLevel.Set(level)
	}
}

// Get returns the installed logger, creating a console logger on stderr if Init was never called.
func Get() *slog.Logger {
	if Logger == nil {
		Logger = New(os.Stderr, config.LoggerConfig{Level: "info"})
	}
	return Logger
}

// WithComponent returns the installed logger tagged with a component attr.
func WithComponent(component string) *slog.Logger {
	return Get().With("component", component)
}

// Package logger owns the process-wide zap logger.
package logger

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"
)

var log *zap.Logger

// DefaultConsoleEncoderConfig returns the console encoder used for all
// human-facing log output.
func DefaultConsoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "T"
	cfg.LevelKey = "L"
	cfg.NameKey = "N"
	cfg.CallerKey = "C"
	cfg.MessageKey = "M"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg
}

// New builds a console logger writing structured entries to logs and
// "terminal prompt:" entries as plain text to terminal. Levels are coloured
// only when logs is a terminal.
func New(level string, development bool, logs, terminal io.Writer) *zap.Logger {
	encCfg := DefaultConsoleEncoderConfig()
	if !isTerminal(logs) {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(logs)),
		ParseLogLevel(level),
	)

	opts := []zap.Option{zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)}
	if development {
		opts = append(opts, zap.Development())
	}
	return zap.New(newTerminalConsoleCore(core, terminal), opts...)
}

// Initialize installs a console logger as the global logger. Logs go to
// stderr so stdout carries only terminal prompts and previews.
func Initialize(level string, development bool) *zap.Logger {
	SetLogger(New(level, development, os.Stderr, os.Stdout))
	return log
}

// SetLogger replaces the global logger, including zap.L().
func SetLogger(l *zap.Logger) {
	log = l
	zap.ReplaceGlobals(l)
}

// L returns the global logger, creating an info-level one on first use.
func L() *zap.Logger {
	if log == nil {
		return Initialize("info", false)
	}
	return log
}

// Sync flushes any buffered log entries. Should be called before the application exits.
func Sync() {
	if log == nil {
		return
	}
	// Syncing a terminal returns EINVAL/ENOTTY on most platforms.
	if err := log.Sync(); err != nil && !isTerminalSyncError(err) {
		_, _ = io.WriteString(os.Stderr, "failed to sync logger: "+err.Error()+"\n")
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func isTerminalSyncError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "invalid argument") || strings.Contains(msg, "inappropriate ioctl")
}

// ParseLogLevel maps LOG_LEVEL values onto zap levels. Unknown values mean info.
func ParseLogLevel(level string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "TRACE", "DEBUG":
		return zapcore.DebugLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	case "FATAL":
		return zapcore.FatalLevel
	case "DPANIC":
		return zapcore.DPanicLevel
	default:
		return zapcore.InfoLevel
	}
}

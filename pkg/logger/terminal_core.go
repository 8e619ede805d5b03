// pkg/logger/terminal_core.go

package logger

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/zap/zapcore"
)

// TerminalPrefix marks entries meant for the user rather than the log.
const TerminalPrefix = "terminal prompt:"

// terminalConsoleCore renders TerminalPrefix entries as plain text lines and
// hands everything else to base.
type terminalConsoleCore struct {
	base zapcore.Core
	out  io.Writer
}

func newTerminalConsoleCore(base zapcore.Core, out io.Writer) zapcore.Core {
	return &terminalConsoleCore{base: base, out: out}
}

func (c *terminalConsoleCore) Enabled(level zapcore.Level) bool {
	return c.base.Enabled(level)
}

func (c *terminalConsoleCore) With(fields []zapcore.Field) zapcore.Core {
	return &terminalConsoleCore{base: c.base.With(fields), out: c.out}
}

func (c *terminalConsoleCore) Check(entry zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if strings.HasPrefix(entry.Message, TerminalPrefix) {
		if !c.Enabled(entry.Level) {
			return ce
		}
		return ce.AddCore(entry, c)
	}
	return c.base.Check(entry, ce)
}

func (c *terminalConsoleCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	if !strings.HasPrefix(entry.Message, TerminalPrefix) {
		return c.base.Write(entry, fields)
	}

	var lines []string
	if text := strings.TrimSpace(strings.TrimPrefix(entry.Message, TerminalPrefix)); text != "" {
		lines = append(lines, text)
	}

	// Fields print as "key: value", sorted by key.
	if len(fields) > 0 {
		enc := zapcore.NewMapObjectEncoder()
		for _, field := range fields {
			field.AddTo(enc)
		}
		keys := make([]string, 0, len(enc.Fields))
		for key := range enc.Fields {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			lines = append(lines, fmt.Sprintf("%s: %v", key, enc.Fields[key]))
		}
	}

	_, err := fmt.Fprintln(c.out, strings.Join(lines, "\n"))
	return err
}

func (c *terminalConsoleCore) Sync() error {
	return c.base.Sync()
}

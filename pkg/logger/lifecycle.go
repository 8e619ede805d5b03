/* pkg/logger/lifecycle.go */

package logger

import (
	"time"

	"go.uber.org/zap"
)

// LogCommandLifecycle logs the start of cmdName and returns a deferred
// function that logs its outcome and duration.
func LogCommandLifecycle(log *zap.Logger, cmdName string) func(err *error) {
	start := time.Now()
	log.Info("Command started", zap.String("command", cmdName), zap.Time("start_time", start))

	return func(err *error) {
		duration := time.Since(start)
		if err != nil && *err != nil {
			log.Error("Command failed", zap.String("command", cmdName), zap.Duration("duration", duration), zap.Error(*err))
			return
		}
		log.Info("Command completed", zap.String("command", cmdName), zap.Duration("duration", duration))
	}
}

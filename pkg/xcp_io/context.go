// pkg/xcp_io/context.go

package xcp_io

import (
	"context"
	"time"

	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/logger"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/xcp_err"
	cerr "github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RuntimeContext carries what one command invocation needs: a context, a
// logger scoped to the command and run, and the start time.
type RuntimeContext struct {
	Ctx        context.Context
	Log        *zap.Logger
	Timestamp  time.Time
	Command    string
	RunID      string
	Attributes map[string]string

	finish func(err *error)
}

// NewContext scopes the global logger to cmdName and a fresh run id and
// logs the command start.
func NewContext(ctx context.Context, cmdName string) *RuntimeContext {
	if ctx == nil {
		ctx = context.Background()
	}
	runID := GenerateRunID()
	log := logger.L().With(zap.String("run_id", runID)).Named(cmdName)

	return &RuntimeContext{
		Ctx:        ctx,
		Log:        log,
		Timestamp:  time.Now(),
		Command:    cmdName,
		RunID:      runID,
		Attributes: make(map[string]string),
		finish:     logger.LogCommandLifecycle(log, cmdName),
	}
}

// GenerateRunID returns a short 8-char run ID.
func GenerateRunID() string {
	return uuid.New().String()[:8]
}

// HandlePanic recovers panics, logs them, and converts them to an internal error.
// It must be deferred directly.
func (rc *RuntimeContext) HandlePanic(errPtr *error) {
	if r := recover(); r != nil {
		rc.Log.Error("Panic recovered", zap.Any("panic", r))
		*errPtr = xcp_err.NewInternalError("unexpected failure", cerr.AssertionFailedf("panic: %v", r))
	}
}

// End logs the outcome of the command with its duration and error category.
func (rc *RuntimeContext) End(errPtr *error) {
	if errPtr != nil && *errPtr != nil {
		category := "unclassified"
		if c, ok := xcp_err.CategoryOf(*errPtr); ok {
			category = c.String()
		}
		rc.Log.Debug("Command error classified",
			zap.String("category", category),
			zap.Int("exit_code", xcp_err.GetExitCode(*errPtr)))
	}
	if rc.finish != nil {
		rc.finish(errPtr)
	}
}

// pkg/xcp_err/wrap.go

package xcp_err

import (
	"strings"

	cerr "github.com/cockroachdb/errors"
)

// WithHint attaches a user-facing hint and a stack trace to err.
func WithHint(err error, hint string) error {
	return cerr.WithHint(cerr.WithStack(err), hint)
}

// Hints returns every hint in the chain of err, one step per entry,
// including the remediation steps of classified errors.
func Hints(err error) []string {
	var hints []string
	for _, h := range cerr.GetAllHints(err) {
		for _, line := range strings.Split(h, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				hints = append(hints, line)
			}
		}
	}
	return hints
}

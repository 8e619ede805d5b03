// pkg/xcp_cli/wrap.go

package xcp_cli

import (
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/xcp_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

// Handler is a command body that receives the runtime context.
type Handler func(rc *xcp_io.RuntimeContext, cmd *cobra.Command, args []string) error

// Wrap adapts a Handler to cobra's RunE, adding a runtime context,
// lifecycle logging, panic recovery and stack traces on errors.
func Wrap(fn Handler) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		rc := xcp_io.NewContext(cmd.Context(), cmd.Name())
		defer rc.End(&err)
		defer rc.HandlePanic(&err)

		if err = fn(rc, cmd, args); err != nil {
			err = cerr.WithStack(err)
		}
		return err
	}
}

/* cmd/root.go */

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/config"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/extract"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/xcp_cli"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/xcp_err"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/xcp_io"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the xcpreport command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   shared.ProgramName + " -r <FILENAME> -f <OUTPUTNAME> [-v] [-n <NUMROWS>]",
		Short: "Extract per-filesystem usage from an XCP scan report",
		Long: `xcpreport reads an XCP scan report and extracts one row per scanned
filesystem: filer, mountpoint, export path, owners, total space used and the
access-age histogram. The rows are written to <output-dir>/<OUTPUTNAME>.csv
and <output-dir>/<OUTPUTNAME>.json.

Every flag can also be set with an XCPREPORT_<FLAG> environment variable
(e.g. XCPREPORT_OUTPUT_DIR), a .env file, or a YAML file given with --config.

Examples:
  xcpreport -r scan_report.txt -f filesystems
  xcpreport -r scan_report.txt -f filesystems -v -n 25
  xcpreport -r scan_report.txt -f filesystems --strict`,
		Version:       shared.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          xcp_cli.Wrap(runExtract),
	}
	root.SetVersionTemplate("Version {{.Version}}\n")
	root.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return xcp_err.NewValidationError(err.Error(), "Run '"+c.CommandPath()+" --help' for usage")
	})

	cli.Register(root, config.Flags()...)

	root.AddCommand(newClassifyCmd())
	return root
}

func runExtract(rc *xcp_io.RuntimeContext, cmd *cobra.Command, args []string) error {
	settings, err := config.Load(cmd)
	if err != nil {
		return err
	}
	_, err = extract.Run(rc, settings, cmd.OutOrStdout())
	return err
}

// Execute runs the command tree with the process arguments and returns the
// exit code.
func Execute() int {
	return ExecuteArgs(os.Args[1:], os.Stdout, os.Stderr)
}

// ExecuteArgs runs the command tree with args. Errors are printed once to
// stderr and mapped to their category exit code.
func ExecuteArgs(args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}

	_, _ = fmt.Fprintln(stderr, "Error:", err)
	for _, hint := range xcp_err.Hints(err) {
		_, _ = fmt.Fprintln(stderr, "Hint:", hint)
	}
	return xcp_err.GetExitCode(err)
}

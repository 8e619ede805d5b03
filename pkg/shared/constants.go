// pkg/shared/constants.go

package shared

const (
	// ProgramName is the binary and root command name.
	ProgramName = "xcpreport"
	// Version is reported by --version.
	Version = "1.0"

	// EnvPrefix namespaces the environment overrides, e.g. XCPREPORT_OUTPUT_DIR.
	EnvPrefix = "XCPREPORT"

	// DefaultOutputDir receives the CSV and JSON files.
	DefaultOutputDir = "output"
	// DefaultPreviewRows is the row count of --view when -n is not given.
	DefaultPreviewRows = 10
)

const (
	// Permission modes (in octal)
	DirPermStandard = 0755
)

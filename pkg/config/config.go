// Package config resolves the xcpreport settings from flags, environment,
// an optional .env file and an optional YAML config file.
//
// Precedence, highest first: changed flag, XCPREPORT_* environment variable,
// config file, flag default.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/xcp_err"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flag names shared by the command tree and viper keys.
const (
	FlagReport    = "report"
	FlagOutput    = "output"
	FlagOutputDir = "output-dir"
	FlagView      = "view"
	FlagRows      = "rows"
	FlagStrict    = "strict"
	FlagConfig    = "config"
)

// ReportFlag is the -r flag shared by every command that reads a report.
var ReportFlag = cli.Flag{Name: FlagReport, Shorthand: "r", Default: "", Usage: "Input report `FILENAME` to process"}

// ConfigFlag names the optional YAML file read by Load and LoadReportPath.
var ConfigFlag = cli.Flag{Name: FlagConfig, Default: "", Usage: "YAML config `file` with flag values"}

// Flags returns the flags of the extraction command, in help order.
func Flags() []cli.Flag {
	return []cli.Flag{
		ReportFlag,
		{Name: FlagOutput, Shorthand: "f", Default: "", Usage: "Output `OUTPUTNAME` (without extension)"},
		{Name: FlagOutputDir, Default: shared.DefaultOutputDir, Usage: "Directory that receives the CSV and JSON files"},
		{Name: FlagView, Shorthand: "v", Default: false, Usage: "View a preview of the output rows"},
		{Name: FlagRows, Shorthand: "n", Default: shared.DefaultPreviewRows, Usage: "Number of rows to display in preview"},
		{Name: FlagStrict, Default: false, Usage: "Fail when the report columns differ in length instead of truncating"},
		ConfigFlag,
	}
}

// Settings drives one extraction run.
type Settings struct {
	ReportPath string `mapstructure:"report" validate:"required"`
	OutputName string `mapstructure:"output" validate:"required"`
	OutputDir  string `mapstructure:"output-dir" validate:"required"`
	View       bool   `mapstructure:"view"`
	Rows       int    `mapstructure:"rows" validate:"gte=0"`
	Strict     bool   `mapstructure:"strict"`
}

var flagForField = map[string]string{
	"ReportPath": "-r/--" + FlagReport,
	"OutputName": "-f/--" + FlagOutput,
	"OutputDir":  "--" + FlagOutputDir,
	"Rows":       "-n/--" + FlagRows,
}

var validate = validator.New()

// Validate checks required values and ranges.
func (s *Settings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return xcp_err.NewValidationError(err.Error())
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		flag := flagForField[fe.Field()]
		switch fe.Tag() {
		case "required":
			problems = append(problems, fmt.Sprintf("%s is required", flag))
		case "gte":
			problems = append(problems, fmt.Sprintf("%s must be at least %s", flag, fe.Param()))
		default:
			problems = append(problems, fmt.Sprintf("%s is invalid (%s)", flag, fe.Tag()))
		}
	}
	return xcp_err.NewValidationError(
		"invalid arguments: "+strings.Join(problems, "; "),
		"Usage: "+shared.ProgramName+" -r <FILENAME> -f <OUTPUTNAME> [-v] [-n <NUMROWS>]",
	)
}

// Load reads .env when present, binds the flags of cmd, applies the
// XCPREPORT_* environment and the --config file, then validates.
func Load(cmd *cobra.Command) (*Settings, error) {
	v, err := newViper(cmd)
	if err != nil {
		return nil, err
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, xcp_err.NewValidationError(fmt.Sprintf("cannot decode settings: %v", err))
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadReportPath resolves only the report path, with the same sources and
// precedence as Load. Commands that do not write output use it.
func LoadReportPath(cmd *cobra.Command) (string, error) {
	v, err := newViper(cmd)
	if err != nil {
		return "", err
	}
	path := v.GetString(FlagReport)
	if path == "" {
		return "", xcp_err.NewValidationError(
			"-r/--"+FlagReport+" is required",
			"Usage: "+shared.ProgramName+" "+cmd.Name()+" -r <FILENAME>",
			"The path can also come from "+shared.EnvPrefix+"_REPORT or the report key of --config",
		)
	}
	return path, nil
}

func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, xcp_err.NewValidationError(fmt.Sprintf("cannot load .env: %v", err))
	}

	v := viper.New()
	cli.SetViperEnvPrefix(v, shared.EnvPrefix)
	v.SetDefault(FlagOutputDir, shared.DefaultOutputDir)
	v.SetDefault(FlagRows, shared.DefaultPreviewRows)

	if err := cli.BindFlagsToViper(cmd, v); err != nil {
		return nil, xcp_err.NewInternalError("cannot bind flags", err)
	}

	if path := v.GetString(FlagConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, xcp_err.WithHint(
				xcp_err.NewIOError(fmt.Sprintf("cannot read config file %s", path), err),
				"The config file is YAML with the flag names as keys, e.g. report: scan.txt",
			)
		}
	}
	return v, nil
}

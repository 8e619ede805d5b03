// pkg/cli/cli.go
//
// Flags are declared once as data, registered on the cobra command and
// resolved through viper, so every flag can also come from the
// environment or a config file.
package cli

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flag describes one command-line flag. The type of Default selects the
// flag kind: string, bool or int.
type Flag struct {
	Name      string
	Shorthand string
	Default   any
	Usage     string
}

// Register declares flags on cmd. An unsupported Default type is a
// programming error and panics.
func Register(cmd *cobra.Command, flags ...Flag) {
	fs := cmd.Flags()
	for _, f := range flags {
		switch def := f.Default.(type) {
		case string:
			fs.StringP(f.Name, f.Shorthand, def, f.Usage)
		case bool:
			fs.BoolP(f.Name, f.Shorthand, def, f.Usage)
		case int:
			fs.IntP(f.Name, f.Shorthand, def, f.Usage)
		default:
			panic(fmt.Sprintf("flag --%s: unsupported default type %T", f.Name, f.Default))
		}
	}
}

// BindFlagsToViper binds every local and inherited flag of cmd to v.
func BindFlagsToViper(cmd *cobra.Command, v *viper.Viper) error {
	var result *multierror.Error
	bind := func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil {
			result = multierror.Append(result, fmt.Errorf("flag --%s: %w", f.Name, err))
		}
	}
	cmd.Flags().VisitAll(bind)
	cmd.InheritedFlags().VisitAll(bind)
	return result.ErrorOrNil()
}

// SetViperEnvPrefix lets v read PREFIX_FLAG_NAME for a flag named flag-name.
func SetViperEnvPrefix(v *viper.Viper, prefix string) {
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

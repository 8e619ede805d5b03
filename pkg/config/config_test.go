package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/cli"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/shared"
	"github.com/CodeMonkeyCybersecurity/xcpreport/pkg/xcp_err"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "xcpreport"}
	cli.Register(cmd, Flags()...)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestLoadFlags(t *testing.T) {
	cmd := newTestCmd(t, "-r", "scan.txt", "-f", "fs", "-v", "-n", "3", "--strict")

	s, err := Load(cmd)
	require.NoError(t, err)
	assert.Equal(t, &Settings{
		ReportPath: "scan.txt",
		OutputName: "fs",
		OutputDir:  "output",
		View:       true,
		Rows:       3,
		Strict:     true,
	}, s)
}

func TestLoadDefaults(t *testing.T) {
	cmd := newTestCmd(t, "-r", "scan.txt", "-f", "fs")

	s, err := Load(cmd)
	require.NoError(t, err)
	assert.Equal(t, shared.DefaultOutputDir, s.OutputDir)
	assert.Equal(t, shared.DefaultPreviewRows, s.Rows)
	assert.False(t, s.View)
	assert.False(t, s.Strict)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("XCPREPORT_REPORT", "env.txt")
	t.Setenv("XCPREPORT_OUTPUT", "from-env")
	t.Setenv("XCPREPORT_OUTPUT_DIR", "reports")

	s, err := Load(newTestCmd(t, "-f", "from-flag"))
	require.NoError(t, err)
	assert.Equal(t, "env.txt", s.ReportPath)
	assert.Equal(t, "from-flag", s.OutputName, "a changed flag wins over the environment")
	assert.Equal(t, "reports", s.OutputDir)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xcpreport.yaml")
	require.NoError(t, os.WriteFile(path, []byte("report: file.txt\noutput: from-file\nrows: 25\nview: true\n"), 0o644))

	s, err := Load(newTestCmd(t, "--config", path, "-f", "fs"))
	require.NoError(t, err)
	assert.Equal(t, "file.txt", s.ReportPath)
	assert.Equal(t, "fs", s.OutputName)
	assert.Equal(t, 25, s.Rows)
	assert.True(t, s.View)
}

func TestLoadConfigFileMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := Load(newTestCmd(t, "--config", missing))
	require.Error(t, err)
	assert.True(t, xcp_err.IsCategory(err, xcp_err.CategoryIO))
	assert.NotEmpty(t, xcp_err.Hints(err))
}

func TestLoadReportPath(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "xcpreport.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("report: file.txt\n"), 0o644))

	newReportCmd := func(t *testing.T, args ...string) *cobra.Command {
		t.Helper()
		cmd := &cobra.Command{Use: "classify"}
		cli.Register(cmd, ReportFlag, ConfigFlag)
		require.NoError(t, cmd.ParseFlags(args))
		return cmd
	}

	tests := []struct {
		name string
		env  string
		args []string
		want string
	}{
		{name: "flag", args: []string{"-r", "flag.txt"}, want: "flag.txt"},
		{name: "environment", env: "env.txt", want: "env.txt"},
		{name: "flag over environment", env: "env.txt", args: []string{"-r", "flag.txt"}, want: "flag.txt"},
		{name: "config file", args: []string{"--config", cfgPath}, want: "file.txt"},
		{name: "environment over config file", env: "env.txt", args: []string{"--config", cfgPath}, want: "env.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv("XCPREPORT_REPORT", tt.env)
			}
			path, err := LoadReportPath(newReportCmd(t, tt.args...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, path)
		})
	}

	t.Run("missing", func(t *testing.T) {
		_, err := LoadReportPath(newReportCmd(t))
		require.Error(t, err)
		assert.True(t, xcp_err.IsCategory(err, xcp_err.CategoryValidation))
		assert.Contains(t, err.Error(), "-r/--report is required")
		hints := xcp_err.Hints(err)
		require.Len(t, hints, 2)
		assert.Equal(t, "Usage: xcpreport classify -r <FILENAME>", hints[0])
	})
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "nothing", args: nil, want: []string{"-r/--report is required", "-f/--output is required"}},
		{name: "missing output", args: []string{"-r", "scan.txt"}, want: []string{"-f/--output is required"}},
		{name: "negative rows", args: []string{"-r", "a", "-f", "b", "-n", "-1"}, want: []string{"-n/--rows must be at least 0"}},
		{name: "empty dir", args: []string{"-r", "a", "-f", "b", "--output-dir", ""}, want: []string{"--output-dir is required"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(newTestCmd(t, tt.args...))
			require.Error(t, err)
			assert.True(t, xcp_err.IsCategory(err, xcp_err.CategoryValidation))
			assert.Equal(t, 2, xcp_err.GetExitCode(err))
			for _, w := range tt.want {
				assert.Contains(t, err.Error(), w)
			}
			require.Len(t, xcp_err.Hints(err), 1)
			assert.Contains(t, xcp_err.Hints(err)[0], "Usage:")
		})
	}
}

func TestLoadLogConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_DEV", "true")

	cfg, err := LoadLogConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Level)
	assert.True(t, cfg.Development)
}

func TestLoadLogConfigOrDefault(t *testing.T) {
	t.Setenv("LOG_DEV", "not-a-bool")

	cfg := LoadLogConfigOrDefault()
	assert.Equal(t, "info", cfg.Level)
	assert.False(t, cfg.Development)
}

func TestFlags(t *testing.T) {
	t.Parallel()
	names := make([]string, 0, len(Flags()))
	for _, f := range Flags() {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"report", "output", "output-dir", "view", "rows", "strict", "config"}, names)
}

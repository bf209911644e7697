package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/lsv/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateConfig points the default config lookup at a missing file.
func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv(config.ConfigEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("COLUMNS", "")
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func scenarioDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "A.c"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir1"), 0755))
	return dir
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "lsv", cmd.Name())

	for _, name := range []string{"long", "horizontal", "recursive", "width", "color", "human-readable", "config", "log-level"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag --%s", name)
	}
}

func TestHelpMentionsLayouts(t *testing.T) {
	isolateConfig(t)
	out, _, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "lsv")
	assert.Contains(t, out, "--long")
	assert.Contains(t, out, "--horizontal")
}

func TestVersionFlag(t *testing.T) {
	isolateConfig(t)
	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, Version)
}

func TestListWithExplicitPathPrintsHeader(t *testing.T) {
	isolateConfig(t)
	dir := scenarioDir(t)

	out, _, err := execute(t, "--width", "40", dir)
	require.NoError(t, err)

	want := fmt.Sprintf("Directory listing of %s:\nA.c    b.txt  dir1   \n\n", dir)
	assert.Equal(t, want, out)
}

func TestListColorAlways(t *testing.T) {
	isolateConfig(t)
	dir := scenarioDir(t)

	out, _, err := execute(t, "--width", "40", "--color", "always", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[1;36mA.c\x1b[0m    b.txt  \x1b[1;34mdir1\x1b[0m   \n")
}

func TestListColorAutoIsPlainWhenNotTerminal(t *testing.T) {
	isolateConfig(t)
	dir := scenarioDir(t)

	out, _, err := execute(t, dir)
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")
}

func TestListHorizontal(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}

	out, _, err := execute(t, "-x", "-w", "7", dir)
	require.NoError(t, err)

	body := strings.TrimPrefix(out, fmt.Sprintf("Directory listing of %s:\n", dir))
	assert.Equal(t, "a  b  \nc  d  \ne  \n\n", body)
}

func TestListLongHumanReadable(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "blob"), make([]byte, 1500), 0644))

	out, _, err := execute(t, "-l", "-H", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "-rw-r--r--")
	assert.Contains(t, out, "1.5kB")
	assert.True(t, strings.HasSuffix(strings.TrimRight(out, "\n"), " blob"))
}

func TestListRecursive(t *testing.T) {
	isolateConfig(t)
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub", "deep"), 0755))

	out, _, err := execute(t, "-R", dir)
	require.NoError(t, err)

	first := strings.Index(out, "Directory listing of "+dir+":")
	sub := strings.Index(out, "Directory listing of "+filepath.Join(dir, "sub")+":")
	deep := strings.Index(out, "Directory listing of "+filepath.Join(dir, "sub", "deep")+":")
	require.True(t, first >= 0 && sub > first && deep > sub, "unexpected order:\n%s", out)
}

func TestMissingDirectoryIsNotFatal(t *testing.T) {
	isolateConfig(t)
	dir := scenarioDir(t)
	missing := filepath.Join(t.TempDir(), "gone")

	out, errOut, err := execute(t, missing, dir)
	require.NoError(t, err)
	assert.Contains(t, errOut, "lsv: [WARN] cannot open directory")
	assert.Contains(t, out, "Directory listing of "+dir+":")
}

func TestConfigFileSetsDefaults(t *testing.T) {
	isolateConfig(t)
	dir := scenarioDir(t)

	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("width: 40\ncolor: always\n"), 0644))

	out, _, err := execute(t, "--config", cfgPath, dir)
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[1;34mdir1\x1b[0m")

	// Flags override the file.
	out, _, err = execute(t, "--config", cfgPath, "--color", "never", dir)
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")
}

func TestInvalidFlagValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown color mode", []string{"--color", "sometimes"}},
		{"negative width", []string{"--width", "-3"}},
		{"unknown log level", []string{"--log-level", "loud"}},
		{"unknown flag", []string{"--frobnicate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolateConfig(t)
			_, _, err := execute(t, append(tt.args, t.TempDir())...)
			assert.Error(t, err)
		})
	}
}

func TestInvalidConfigFile(t *testing.T) {
	isolateConfig(t)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("width: [not, a, number]\n"), 0644))

	_, _, err := execute(t, "--config", cfgPath, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), cfgPath)
}

func TestDebugLogLevelWritesToStderr(t *testing.T) {
	isolateConfig(t)
	out, errOut, err := execute(t, "--log-level", "debug", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, errOut, "[DEBUG]")
	assert.NotContains(t, out, "[DEBUG]")
}

func TestResolveWidth(t *testing.T) {
	var buf bytes.Buffer

	t.Run("configured wins", func(t *testing.T) {
		t.Setenv("COLUMNS", "120")
		assert.Equal(t, 60, resolveWidth(60, &buf))
	})

	t.Run("columns env", func(t *testing.T) {
		t.Setenv("COLUMNS", "132")
		assert.Equal(t, 132, resolveWidth(0, &buf))
	})

	t.Run("garbage columns", func(t *testing.T) {
		t.Setenv("COLUMNS", "wide")
		assert.Equal(t, 0, resolveWidth(0, &buf))
	})

	t.Run("nothing detected", func(t *testing.T) {
		t.Setenv("COLUMNS", "")
		assert.Equal(t, 0, resolveWidth(0, &buf))
	})
}

func TestIsTerminalNonFile(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))
}

//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	dir := t.TempDir()
	cmd := exec.Command(binPath, append(args, "--config", filepath.Join(dir, "config.toml"))...)
	cmd.Env = append(os.Environ(), "HOME="+dir, "XDG_CONFIG_HOME="+filepath.Join(dir, ".config"))
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "command failed: %s", out)
	return string(out)
}

func TestHelpCommand(t *testing.T) {
	t.Parallel()
	out := runCLI(t, "--help")

	require.Contains(t, out, "Usage")
	require.Contains(t, out, "--data")
	require.Contains(t, out, "summary")
	require.Contains(t, out, "export")
}

func TestSummaryWhenNotATerminal(t *testing.T) {
	t.Parallel()
	out := runCLI(t, "--data", fixturePath)

	require.Contains(t, out, "Coronavirus (COVID-19) in the UK")
	require.Contains(t, out, "England")
	require.Contains(t, out, "Westminster")
}

func TestExportCommand(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	out := runCLI(t, "export", "--data", fixturePath, "--dir", dir, "--format", "png")

	lines := strings.Fields(out)
	require.NotEmpty(t, lines)
	for _, p := range lines {
		require.Equal(t, ".png", filepath.Ext(p))
		_, err := os.Stat(p)
		require.NoError(t, err)
	}
}

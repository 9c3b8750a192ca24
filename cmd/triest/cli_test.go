package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/triest/config"
)

// execute runs the CLI with args and returns stdout and the error.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd(strings.NewReader(stdin), &out, &errOut)
	root.SetArgs(append(args, "--log-console=false", "--log-level=warn"))
	err := root.Execute()
	return out.String(), err
}

func TestGenerate(t *testing.T) {
	out, err := execute(t, "", "generate", "complete", "5")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	require.Equal(t, "0 1", lines[0])

	out, err = execute(t, "", "generate", "wheel", "6", "--offset", "10")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "10 11\n"))

	a, err := execute(t, "", "generate", "random", "30", "--p", "0.3", "--seed", "5", "--shuffle")
	require.NoError(t, err)
	b, err := execute(t, "", "generate", "random", "30", "--p", "0.3", "--seed", "5", "--shuffle")
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestGenerate_Errors(t *testing.T) {
	_, err := execute(t, "", "generate", "petersen", "10")
	require.Error(t, err)
	_, err = execute(t, "", "generate", "cycle", "two")
	require.Error(t, err)
	_, err = execute(t, "", "generate", "cycle", "2")
	require.Error(t, err)
	_, err = execute(t, "", "generate", "cycle")
	require.Error(t, err)

	require.NotPanics(t, func() {
		_, err = execute(t, "", "generate", "complete", "4", "--offset", "-1")
	})
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestEstimate_File(t *testing.T) {
	k5, err := execute(t, "", "generate", "complete", "5")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "k5.txt")
	require.NoError(t, os.WriteFile(path, []byte("# K5\n"+k5), 0o600))

	out, err := execute(t, "", "estimate", path, "--variant", "base", "--capacity", "16", "--report-every", "5")
	require.NoError(t, err)
	require.Contains(t, out, "edges=5 estimate=")
	require.Contains(t, out, "edges=10 estimate=10 elapsed=")
}

func TestEstimate_Stdin(t *testing.T) {
	out, err := execute(t, "1 2\n2 3\n3 1\n", "estimate", "-", "--capacity", "3", "--seed", "4")
	require.NoError(t, err)
	require.Contains(t, out, "edges=3 estimate=1 ")
}

func TestEstimate_Errors(t *testing.T) {
	_, err := execute(t, "", "estimate", "--capacity", "2")
	require.Error(t, err)
	_, err = execute(t, "", "estimate", "--variant", "exact")
	require.Error(t, err)
	_, err = execute(t, "", "estimate", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	_, err = execute(t, "1 2\noops\n", "estimate")
	require.Error(t, err)
}

func TestDedupeFlag(t *testing.T) {
	bidir := "1 2\n2 1\n2 3\n3 2\n3 1\n1 3\n"

	out, err := execute(t, bidir, "estimate", "--capacity", "10")
	require.NoError(t, err)
	require.Contains(t, out, "edges=6 estimate=8 ")

	out, err = execute(t, bidir, "estimate", "--capacity", "10", "--dedupe")
	require.NoError(t, err)
	require.Contains(t, out, "edges=3 estimate=1 ")

	out, err = execute(t, bidir, "eval", "--capacity", "10", "--trials", "2", "--dedupe")
	require.NoError(t, err)
	require.Contains(t, out, "edges=3")
	require.Contains(t, out, "reference=1 relative_error=0.0000")
}

func TestEval(t *testing.T) {
	w, err := execute(t, "", "generate", "wheel", "8", "--shuffle", "--seed", "2")
	require.NoError(t, err)

	out, err := execute(t, w, "eval", "-", "--capacity", "14", "--trials", "4", "--workers", "2", "--seed", "9")
	require.NoError(t, err)
	require.Contains(t, out, "variant=improved capacity=14 trials=4 edges=14")
	require.Contains(t, out, "mean=7.00 stddev=0.00 median=7 reference=7 relative_error=0.0000")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("estimator:\n  variant: base\n  capacity: 3\n"), 0o600))
	out, err := execute(t, "1 2\n2 3\n3 1\n", "estimate", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "edges=3 estimate=1 ")

	_, err = execute(t, "", "estimate", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

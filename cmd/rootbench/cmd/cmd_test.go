package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexshd/rootbench"
)

// execute runs the command tree with args and returns what it printed.
// Flags keep their values between calls, so tests pass every flag they rely on.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	t.Logf("rootbench %v\n%s", args, out.String())
	return out.String(), err
}

func TestBisectCommand(t *testing.T) {
	out, err := execute(t, "bisect", "--func", "trig", "--a", "-3", "--b", "-2", "--eps", "0.1", "--precision", "0", "--history")
	require.NoError(t, err)

	assert.Contains(t, out, "converged")
	assert.Contains(t, out, "-2.90625")
	assert.Contains(t, out, "F(m)")
}

func TestBisectCommand_InvalidBracket(t *testing.T) {
	out, err := execute(t, "bisect", "--func", "identity", "--a", "1", "--b", "2", "--eps", "0.1", "--precision", "0", "--history=false")
	require.ErrorIs(t, err, rootbench.ErrInvalidBracket)
	assert.Contains(t, out, "invalid-bracket")
}

func TestBisectCommand_Precision(t *testing.T) {
	out, err := execute(t, "bisect", "--func", "exp", "--a", "0", "--b", "1", "--eps", "1e-40", "--precision", "200", "--history=false")
	require.NoError(t, err)
	assert.Contains(t, out, "0.693147180559945309417232121458176568")

	_, err = execute(t, "bisect", "--func", "trig", "--a", "-3", "--b", "-2", "--eps", "1e-6", "--precision", "100", "--history=false")
	assert.ErrorContains(t, err, "no arbitrary-precision form")
}

func TestFixedCommand(t *testing.T) {
	out, err := execute(t, "fixed", "--func", "trig", "--functional", "newton", "--k", "0",
		"--x0", "-2", "--eps", "1e-12", "--max-iter", "50", "--history")
	require.NoError(t, err)

	assert.Contains(t, out, "converged")
	assert.Contains(t, out, "-2.8832368725")
	assert.Contains(t, out, "x_k")
}

func TestFixedCommand_DidNotConverge(t *testing.T) {
	out, err := execute(t, "fixed", "--func", "trig", "--functional", "frac", "--k", "0",
		"--x0", "-2", "--eps", "1e-5", "--max-iter", "10", "--history")
	require.ErrorIs(t, err, rootbench.ErrDidNotConverge)

	assert.Contains(t, out, "did-not-converge")
	assert.Contains(t, out, "Behavior")
}

func TestFixedCommand_UnknownFunction(t *testing.T) {
	_, err := execute(t, "fixed", "--func", "gamma", "--functional", "newton", "--history=false")
	assert.ErrorIs(t, err, rootbench.ErrUnknownFunction)
}

func TestRunCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problems.toml")
	content := `
[defaults]
tolerance = 1e-10
workers = 2

[[problem]]
name = "trig-bisect"
function = "trig"
method = "bisection"
a = -3.0
b = -2.0

[[problem]]
name = "exp-newton"
function = "exp"
method = "fixed-point"
functional = "newton"
x0 = 0.0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, err := execute(t, "run", "--config", path, "--workers", "0", "--timeout", "0")
	require.NoError(t, err)

	assert.Contains(t, out, "trig-bisect")
	assert.Contains(t, out, "exp-newton")
	assert.Contains(t, out, "Summary")
	assert.Contains(t, out, "solving problem set")
}

func TestRunCommand_Failures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problems.yaml")
	content := `
problems:
  - name: no-sign-change
    function: identity
    method: bisection
    a: 1
    b: 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	out, err := execute(t, "run", "--config", path, "--workers", "1", "--timeout", "0")
	assert.ErrorContains(t, err, "1 of 1 problems failed")
	assert.Contains(t, out, "invalid-bracket=1")
}

func TestFunctionsCommand(t *testing.T) {
	out, err := execute(t, "functions")
	require.NoError(t, err)

	for _, name := range rootbench.Names() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "2x - 3sin(x) + 5")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "rootbench v"+Version)
}

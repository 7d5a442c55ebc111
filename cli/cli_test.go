// SPDX-License-Identifier: MIT
package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/neuromotif/cli"
	"github.com/katalvlaran/neuromotif/core"
	"github.com/katalvlaran/neuromotif/loader"
	"github.com/katalvlaran/neuromotif/motif"
	"github.com/katalvlaran/neuromotif/source"
)

// writeMatrix stores body as a CSV file and returns its path.
func writeMatrix(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "connectivity.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// run executes the CLI with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestCensus_Basic(t *testing.T) {
	path := writeMatrix(t, "0,1,0\n0,0,1\n0,0,0\n")
	out, err := run(t, "", path)
	require.NoError(t, err)
	assert.Equal(t, "Chain: 1\nConvergent: 0\nDivergent: 0\nReciprocal: 0\n", out)
}

func TestCensus_CountByCategoryVerbose(t *testing.T) {
	path := writeMatrix(t, "0,1\n-1,0\n")
	out, err := run(t, "", "--count-by-category", "--verbose", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 13)
	assert.Equal(t, "reciprocal: 0 ↔ 1 (ReciprocalEI)", lines[0])
	assert.Equal(t, "ChainEE: 0", lines[1])
	assert.Equal(t, "ReciprocalEI: 1", lines[12])
}

func TestCensus_ByteOrderMark(t *testing.T) {
	path := writeMatrix(t, "\xef\xbb\xbf0,1,0\n0,0,1\n0,0,0\n")
	out, err := run(t, "", path)
	require.NoError(t, err)
	assert.Equal(t, "Chain: 1\nConvergent: 0\nDivergent: 0\nReciprocal: 0\n", out)
}

func TestCensus_VerboseKeepsLinesBeforeFailure(t *testing.T) {
	// Node 2 has no outputs; the chain 0 → 1 → 2 fails after two occurrences.
	path := writeMatrix(t, "0,1,0\n1,0,1\n0,0,0\n")
	out, err := run(t, "", "--count-by-category", "--verbose", path)
	require.ErrorIs(t, err, motif.ErrUndeterminedPolarity)
	assert.Equal(t, "reciprocal: 0 ↔ 1 (ReciprocalEE)\ndivergent: 0 ← 1 → 2 (DivergentE)\n", out)
}

func TestCensus_Stdin(t *testing.T) {
	out, err := run(t, "0,0,0\n1,0,0\n1,0,0\n", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Convergent: 1\n")
}

func TestCensus_ZeroPolicy(t *testing.T) {
	path := writeMatrix(t, "0,0.00,0\n0,0,1\n0,0,0\n")

	out, err := run(t, "", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Chain: 1\n")

	out, err = run(t, "", "--zero-policy", "numeric", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Chain: 0\n")
}

func TestCensus_EnvSelectsMode(t *testing.T) {
	t.Setenv("NEUROMOTIF_MODE", "polarity")
	path := writeMatrix(t, "0,1\n1,0\n")
	out, err := run(t, "", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ReciprocalEE: 1\n")
}

func TestCensus_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		args []string // flags placed before the matrix path
		want error
		msg  string
	}{
		{name: "dale", body: "0,2.0,-3.0\n0,0,0\n0,0,0\n", want: core.ErrDaleViolation, msg: "node 0"},
		{name: "ragged", body: "0,1\n0\n", want: loader.ErrRaggedRow, msg: "row 1"},
		{name: "non numeric", body: "0,x\n0,0\n", want: loader.ErrBadWeight, msg: `"x"`},
		{name: "undetermined", body: "0,1,0\n0,0,1\n0,0,0\n", args: []string{"--count-by-category"}, want: motif.ErrUndeterminedPolarity, msg: "node 2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args := append(tc.args, writeMatrix(t, tc.body))
			_, err := run(t, "", args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}

	_, err := run(t, "", filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, source.ErrOpen)

	_, err = run(t, "")
	assert.Error(t, err, "connectivity argument is required")

	_, err = run(t, "", "--mode", "isomorphism", "-")
	assert.Error(t, err)
}

func TestCensus_ParallelMatchesSequential(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "random.csv")
	_, err := run(t, "", "generate", "--nodes", "40", "--density", "0.3", "--seed", "7", "--out", path)
	require.NoError(t, err)

	seq, err := run(t, "", "--count-by-category", path)
	require.NoError(t, err)
	par, err := run(t, "", "--count-by-category", "--workers", "4", path)
	require.NoError(t, err)
	assert.Equal(t, seq, par)
}

func TestGenerate(t *testing.T) {
	a, err := run(t, "", "generate", "--nodes", "6", "--density", "0.5", "--seed", "3", "--weights", "lognormal")
	require.NoError(t, err)
	b, err := run(t, "", "generate", "--nodes", "6", "--density", "0.5", "--seed", "3", "--weights", "lognormal")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, strings.Split(strings.TrimSuffix(a, "\n"), "\n"), 6)

	// The generated matrix loads cleanly.
	out, err := run(t, a, "-")
	require.NoError(t, err)
	assert.Contains(t, out, "Chain: ")

	_, err = run(t, "", "generate", "--weights", "pareto")
	assert.Error(t, err)
	_, err = run(t, "", "generate", "--inhibitory", "2")
	assert.Error(t, err)
	_, err = run(t, "", "generate", "--density", "-1")
	assert.Error(t, err)
}

func TestGenerate_OutFile(t *testing.T) {
	stdout, err := run(t, "", "generate", "--nodes", "5", "--density", "0.4", "--seed", "9")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "m.csv")
	out, err := run(t, "", "generate", "--nodes", "5", "--density", "0.4", "--seed", "9", "--out", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, stdout, string(written))

	_, err = run(t, "", "generate", "--out", filepath.Join(t.TempDir(), "missing", "m.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCensus_Pretty(t *testing.T) {
	path := writeMatrix(t, "0,1\n1,0\n")
	out, err := run(t, "", "--pretty", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Reciprocal")
	assert.Contains(t, out, "Total")
}

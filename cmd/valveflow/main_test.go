package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const samplePath = "testdata/sample.txt"

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestSolveSample(t *testing.T) {
	out, _, err := run(t, "", "solve", samplePath)
	require.NoError(t, err)
	require.Equal(t, "Max pressure solo: 1651\nMax pressure with elephant: 1707\n", out)
}

func TestSolveFromStdin(t *testing.T) {
	data, err := os.ReadFile(samplePath)
	require.NoError(t, err)

	out, _, err := run(t, string(data), "solve", "--workers", "3")
	require.NoError(t, err)
	require.Contains(t, out, "Max pressure solo: 1651")
	require.Contains(t, out, "Max pressure with elephant: 1707")

	out, _, err = run(t, string(data), "solve", "-", "--solo-only")
	require.NoError(t, err)
	require.Equal(t, "Max pressure solo: 1651\n", out)
}

func TestSolveBudgetFlags(t *testing.T) {
	out, _, err := run(t, "", "solve", samplePath, "--solo-minutes", "0", "--duo-minutes", "0")
	require.NoError(t, err)
	require.Equal(t, "Max pressure solo: 0\nMax pressure with elephant: 0\n", out)

	out, _, err = run(t, "", "solve", samplePath, "--duo-only", "--duo-minutes", "26,0", "--memo=false")
	require.NoError(t, err)
	solo, _, err := run(t, "", "solve", samplePath, "--solo-only", "--solo-minutes", "26")
	require.NoError(t, err)
	require.Equal(t,
		strings.TrimPrefix(solo, "Max pressure solo: "),
		strings.TrimPrefix(out, "Max pressure with elephant: "))

	_, _, err = run(t, "", "solve", samplePath, "--duo-minutes", "1,2,3")
	require.ErrorIs(t, err, errDuoMinutes)
}

func TestSolveConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start: JJ\nsolo:\n  minutes: 2\n"), 0o600))

	// From JJ with 2 minutes nothing but JJ itself is reachable in time, and
	// JJ cannot be opened without leaving first.
	out, _, err := run(t, "", "solve", samplePath, "--config", path, "--solo-only")
	require.NoError(t, err)
	require.Equal(t, "Max pressure solo: 0\n", out)

	// Flags win over the file.
	out, _, err = run(t, "", "solve", samplePath, "--config", path, "--solo-only", "--start", "AA", "--solo-minutes", "30")
	require.NoError(t, err)
	require.Equal(t, "Max pressure solo: 1651\n", out)
}

func TestSolveErrors(t *testing.T) {
	_, _, err := run(t, "", "solve", "testdata/missing.txt")
	require.Error(t, err)

	_, _, err = run(t, "Valve AA has flow rate=x", "solve")
	require.ErrorContains(t, err, "line 1")

	_, _, err = run(t, "", "solve", samplePath, "--start", "ZZ")
	require.ErrorContains(t, err, "unknown valve")

	_, _, err = run(t, "", "solve", samplePath, "--workers", "0")
	require.Error(t, err)

	_, _, err = run(t, "", "solve", samplePath, "--solo-only", "--duo-only")
	require.Error(t, err)
}

// TestJSONLogs checks that every record carries the run id.
func TestJSONLogs(t *testing.T) {
	_, errOut, err := run(t, "", "solve", samplePath, "--log-format", "json", "--log-level", "debug")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(errOut), "\n")
	require.NotEmpty(t, lines)
	var runID string
	for _, line := range lines {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec), line)
		id, ok := rec["run_id"].(string)
		require.True(t, ok, line)
		if runID == "" {
			runID = id
		}
		require.Equal(t, runID, id)
	}
	require.Contains(t, errOut, "search_done")
}

func TestMetricsDump(t *testing.T) {
	_, errOut, err := run(t, "", "solve", samplePath, "--metrics", "--log-level", "error")
	require.NoError(t, err)
	require.Contains(t, errOut, "valveflow_search_total")
	require.Contains(t, errOut, `mode="duo"`)
}

func TestPaths(t *testing.T) {
	out, _, err := run(t, "", "paths", samplePath, "--log-level", "error")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10*9)
	require.Equal(t, "AA -> BB = 1", lines[0])
	require.Contains(t, out, "AA -> HH = 5\n")
	require.Contains(t, out, "JJ -> HH = 7\n")

	out, _, err = run(t, "", "paths", samplePath, "--positive", "--log-level", "error")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	// AA plus six positive sources, six positive destinations each, no self pairs.
	require.Len(t, lines, 6+6*5)
	require.NotContains(t, out, "-> AA")
	require.NotContains(t, out, "-> FF")
}

func TestInspect(t *testing.T) {
	out, _, err := run(t, "", "inspect", samplePath, "--log-level", "error")
	require.NoError(t, err)
	require.Equal(t, "valves: 10\npositive: 6 (total rate 81)\nreachable from AA: 10\nstranded: none\n", out)

	text := "Valve AA has flow rate=0; tunnel leads to valve BB\n" +
		"Valve BB has flow rate=4; tunnel leads to valve AA\n" +
		"Valve CC has flow rate=7; tunnel leads to valve DD\n" +
		"Valve DD has flow rate=0; tunnel leads to valve CC\n"
	out, errOut, err := run(t, text, "inspect", "--log-format", "json")
	require.NoError(t, err)
	require.Contains(t, out, "stranded: CC\n")
	require.Contains(t, errOut, `"msg":"stranded_valves"`)
}

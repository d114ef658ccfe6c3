package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingScenario = `name: midpoint
description: weight is halfway at the window midpoint
records: "3 7 0.1 0.9 10 20"
expect:
  - {time: 15, synapse: 0, weight: 0.5}
  - {time: 25, synapse: 0, weight: 0.9}
`

const failingScenario = `name: wrong
description: expects the start weight after the window
records: "3 7 0.1 0.9 10 20"
expect:
  - {time: 25, synapse: 0, weight: 0.1}
`

func scenarioDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	}
	return dir
}

func TestTestCommand_AllPass(t *testing.T) {
	dir := scenarioDir(t, map[string]string{"a.yaml": passingScenario, "notes.txt": "ignored"})

	res := execute(t, "", "test", dir)
	require.NoError(t, res.err)
	assert.Equal(t, "PASS midpoint\n\n1 passed, 0 failed, 1 total\n", res.stdout)
}

func TestTestCommand_Failure(t *testing.T) {
	dir := scenarioDir(t, map[string]string{"a.yaml": passingScenario, "b.yaml": failingScenario})

	res := execute(t, "", "test", dir)
	require.Error(t, res.err)
	assert.Equal(t, ExitFailure, GetExitCode(res.err))
	assert.True(t, WasReported(res.err))
	assert.Contains(t, res.stdout, "PASS midpoint")
	assert.Contains(t, res.stdout, "FAIL wrong")
	assert.Contains(t, res.stdout, "1 passed, 1 failed, 2 total")
}

func TestTestCommand_Filter(t *testing.T) {
	dir := scenarioDir(t, map[string]string{"a.yaml": passingScenario, "b.yaml": failingScenario})

	res := execute(t, "", "test", dir, "--filter", "a*")
	require.NoError(t, res.err)
	assert.NotContains(t, res.stdout, "wrong")
}

func TestTestCommand_JSON(t *testing.T) {
	dir := scenarioDir(t, map[string]string{"b.yaml": failingScenario})

	res := execute(t, "", "test", dir, "--format", "json")
	require.Error(t, res.err)

	var resp struct {
		Data TestResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &resp))
	assert.Equal(t, 1, resp.Data.Failed)
	require.Len(t, resp.Data.Scenarios, 1)
	assert.Equal(t, "wrong", resp.Data.Scenarios[0].Name)
	assert.NotEmpty(t, resp.Data.Scenarios[0].Errors)
}

func TestTestCommand_MissingDir(t *testing.T) {
	res := execute(t, "", "test", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, res.err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.err))
	assert.Contains(t, res.stdout, "Error [E002]")
}

func TestTestCommand_EmptyDir(t *testing.T) {
	res := execute(t, "", "test", t.TempDir())
	require.Error(t, res.err)
	assert.Equal(t, ExitCommandError, GetExitCode(res.err))
	assert.Contains(t, res.stdout, "no scenario files")
}

package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jkcg-learning/debate/internal/domain"
)

// setupEnv points the commands at the mock LLM and a throwaway ledger.
func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DEBATE_MODE", "MOCK")
	t.Setenv("DATABASE_URL", filepath.Join(t.TempDir(), "debate.db"))
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("DEBATE_ROUNDS", "3")
	t.Setenv("PERSONAS_FILE", "")
	t.Setenv("POLICY_FILE", "")
}

// executeCommand runs the root command with args and stdin and returns
// captured stdout.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := NewRootCommand()
	assert.Equal(t, "debate", root.Use)

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"run", "serve", "watch", "usage", "models"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRunPrintsTranscript(t *testing.T) {
	setupEnv(t)

	out, err := executeCommand(t, "", "run", "--topic", "Pineapple on pizza", "--a", "Alice", "--b", "Bob")
	require.NoError(t, err)

	assert.Contains(t, out, "Topic Provided: Pineapple on pizza\n")
	assert.Contains(t, out, "Qualification Check: [MOCK] Both are qualified to debate this topic.\n")
	assert.Contains(t, out, "\n--- Debate Round 1 ---\n\nAlice:\n[MOCK] Round 1: Alice argues the point.\n\n")
	assert.Contains(t, out, "Bob:\n[MOCK] Round 1: Bob argues the point.\n\n")
	assert.Contains(t, out, "--- Debate Round 3 ---")
	assert.Contains(t, out, "Winner Announcement:\n\n")
	assert.NotContains(t, out, promptTopic)
}

func TestRunPromptsForMissingValues(t *testing.T) {
	setupEnv(t)

	out, err := executeCommand(t, "Pineapple on pizza\nAlice\nBob\n", "run")
	require.NoError(t, err)

	assert.Contains(t, out, promptTopic)
	assert.Contains(t, out, promptDebaterA)
	assert.Contains(t, out, promptDebaterB)
	assert.Contains(t, out, "--- Debate Round 3 ---")
}

func TestRunAbortsOnMissingName(t *testing.T) {
	setupEnv(t)

	out, err := executeCommand(t, "Pineapple on pizza\nAlice\n", "run")
	require.NoError(t, err)

	assert.Contains(t, out, "Missing topic or debater names. Aborting debate.\n")
	assert.Contains(t, out, "Debate aborted. No winner declared.\n")
	assert.NotContains(t, out, "Topic Provided:")
	assert.NotContains(t, out, "--- Debate Round")
}

func TestRunRoundsFlag(t *testing.T) {
	setupEnv(t)

	out, err := executeCommand(t, "", "run", "--topic", "T", "--a", "Alice", "--b", "Bob", "--rounds", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "--- Debate Round 1 ---")
	assert.NotContains(t, out, "--- Debate Round 2 ---")
}

func TestRunJSONThenUsage(t *testing.T) {
	setupEnv(t)

	out, err := executeCommand(t, "", "run", "--json", "--topic", "Pineapple on pizza", "--a", "Alice", "--b", "Bob")
	require.NoError(t, err)

	var result domain.DebateResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, domain.RunStatusDone, result.Status)
	require.Len(t, result.Session.History, 3)

	out, err = executeCommand(t, "", "usage", result.RunID, "--json")
	require.NoError(t, err)
	var report domain.UsageReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 10, report.Summary.Calls)

	out, err = executeCommand(t, "", "usage", result.RunID, "--stage", "adjudication")
	require.NoError(t, err)
	assert.Contains(t, out, "CALL")
	assert.Contains(t, out, "adjudication")
	assert.Contains(t, out, "1 calls (0 failed)")
}

func TestUsageUnknownRun(t *testing.T) {
	setupEnv(t)

	_, err := executeCommand(t, "", "usage", "run_missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no calls recorded")
}

func TestModels(t *testing.T) {
	setupEnv(t)

	out, err := executeCommand(t, "", "models")
	require.NoError(t, err)
	assert.Contains(t, out, "mock-debater")
}

func TestInvalidConfig(t *testing.T) {
	setupEnv(t)
	t.Setenv("DEBATE_ROUNDS", "0")

	_, err := executeCommand(t, "", "run", "--topic", "T", "--a", "A", "--b", "B")
	assert.Error(t, err)
}

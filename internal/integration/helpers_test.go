// Package integration runs gitdesk command sequences end to end against
// real repositories.
package integration

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"gitdesk.dev/gitdesk/internal/cli"
	"gitdesk.dev/gitdesk/internal/runtime"
	"gitdesk.dev/gitdesk/testhelpers"
	"gitdesk.dev/gitdesk/testhelpers/scenario"
)

// =============================================================================
// Test Shell - A helper to make integration tests read like terminal sessions
// =============================================================================

// TestShell wraps a scenario and runs gitdesk commands in-process against
// its context. Tests using this read like a series of terminal commands.
type TestShell struct {
	t          *testing.T
	scenario   *scenario.Scenario
	lastOutput string
	lastErr    string
}

// NewTestShell creates a shell-like test environment with an initialized repo.
func NewTestShell(t *testing.T) *TestShell {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)
	s := scenario.NewScenario(t, func(scene *testhelpers.Scene) error {
		return scene.Repo.CreateChangeAndCommit("initial", "init")
	})
	return &TestShell{t: t, scenario: s}
}

// NewTestShellWithRemote creates a shell whose repository has a bare "origin" seeded with main.
func NewTestShellWithRemote(t *testing.T) (*TestShell, string) {
	t.Helper()
	sh := NewTestShell(t)
	url := sh.scenario.WithRemote("origin")
	return sh, url
}

// Scene returns the underlying test scene for direct access when needed.
func (s *TestShell) Scene() *testhelpers.Scene {
	return s.scenario.Scene
}

// =============================================================================
// Command Execution
// =============================================================================

func (s *TestShell) exec(args string) int {
	var stdout, stderr bytes.Buffer
	code := cli.Execute(context.Background(), cli.Options{
		NewContext: func(context.Context) (*runtime.Context, error) { return s.scenario.Context, nil },
	}, splitArgs(args), &stdout, &stderr)
	s.lastOutput = stdout.String()
	s.lastErr = stderr.String()
	return code
}

// Run executes a gitdesk command (e.g., "commit -m 'Add feature'")
func (s *TestShell) Run(args string) *TestShell {
	s.t.Helper()
	code := s.exec(args)
	require.Equal(s.t, 0, code, "$ gitdesk %s\n%s%s", args, s.lastOutput, s.lastErr)
	return s
}

// RunExpectError executes a gitdesk command and expects it to fail.
func (s *TestShell) RunExpectError(args string) *TestShell {
	s.t.Helper()
	code := s.exec(args)
	require.NotEqual(s.t, 0, code, "$ gitdesk %s (expected error)\n%s", args, s.lastOutput)
	return s
}

// Git executes a raw git command (use sparingly - prefer gitdesk commands)
func (s *TestShell) Git(args string) *TestShell {
	s.t.Helper()
	output, err := s.scenario.Scene.Repo.RunGitCommandAndGetOutput(splitArgs(args)...)
	s.lastOutput = output
	require.NoError(s.t, err, "$ git %s\n%s", args, output)
	return s
}

// =============================================================================
// File Operations
// =============================================================================

// WriteFile creates or modifies a file in the worktree without staging it
func (s *TestShell) WriteFile(filename, content string) *TestShell {
	s.t.Helper()
	require.NoError(s.t, s.scenario.Scene.Repo.WriteFile(filename, content), "failed to write %s", filename)
	return s
}

// =============================================================================
// Assertions
// =============================================================================

// Output returns stdout of the last command.
func (s *TestShell) Output() string {
	return s.lastOutput
}

// OutputContains asserts that the last command's stdout contains substr.
func (s *TestShell) OutputContains(substr string) *TestShell {
	s.t.Helper()
	require.Contains(s.t, s.lastOutput, substr)
	return s
}

// ProgressContains asserts that the last command's stderr contains substr.
func (s *TestShell) ProgressContains(substr string) *TestShell {
	s.t.Helper()
	require.Contains(s.t, s.lastErr, substr)
	return s
}

// OnBranch asserts the current branch.
func (s *TestShell) OnBranch(branch string) *TestShell {
	s.t.Helper()
	s.scenario.ExpectBranch(branch)
	return s
}

// =============================================================================
// Utility Functions
// =============================================================================

// splitArgs splits a command string into args, respecting quotes
func splitArgs(s string) []string {
	var args []string
	var current strings.Builder
	inQuote := false
	quoteChar := rune(0)

	for _, r := range s {
		switch {
		case r == '"' || r == '\'':
			switch {
			case inQuote && r == quoteChar:
				inQuote = false
			case !inQuote:
				inQuote = true
				quoteChar = r
			default:
				current.WriteRune(r)
			}
		case r == ' ' && !inQuote:
			if current.Len() > 0 {
				args = append(args, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}

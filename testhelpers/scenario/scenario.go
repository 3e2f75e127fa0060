// Package scenario provides a high-level test scenario that combines a Scene
// with a runtime Context backed by in-memory settings and a mock keychain.
package scenario

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"

	"gitdesk.dev/gitdesk/internal/config"
	"gitdesk.dev/gitdesk/internal/progress"
	"gitdesk.dev/gitdesk/internal/runtime"
	"gitdesk.dev/gitdesk/internal/secrets"
	"gitdesk.dev/gitdesk/internal/store"
	"gitdesk.dev/gitdesk/internal/tui"
	"gitdesk.dev/gitdesk/testhelpers"
)

// Scenario represents a test scenario: a scene plus the context actions run with
type Scenario struct {
	T       *testing.T
	Scene   *testhelpers.Scene
	Context *runtime.Context
	Store   *store.MemoryStore
	Events  *EventLog
	// Log holds console output written through Context.Splog
	Log *bytes.Buffer
}

// NewScenario creates a new Scenario with an optional setup function.
// NOTE: This function is NOT safe for parallel tests as it uses t.Setenv and
// the process-wide mock keychain.
func NewScenario(t *testing.T, setup testhelpers.SceneSetup) *Scenario {
	t.Helper()

	t.Setenv("GITDESK_TEST_NO_INTERACTIVE", "1")
	keyring.MockInit()

	scene := testhelpers.NewScene(t, setup)

	var log bytes.Buffer
	splog, err := tui.NewSplogWithConfig("", &log)
	require.NoError(t, err)

	st := store.NewMemoryStore()
	events := &EventLog{}
	ctx := runtime.NewContext(context.Background(), config.Default(scene.ConfigDir), st, secrets.NewKeyring(), splog)
	ctx.Progress = events

	return &Scenario{
		T:       t,
		Scene:   scene,
		Context: ctx,
		Store:   st,
		Events:  events,
		Log:     &log,
	}
}

// WithActiveRepo records the scene's repository as the active one
func (s *Scenario) WithActiveRepo() *Scenario {
	s.T.Helper()
	_, err := s.Context.Registry.SetActive(s.Scene.Dir)
	require.NoError(s.T, err)
	return s
}

// WithExplicitRepo passes the scene's repository as the explicit path
func (s *Scenario) WithExplicitRepo() *Scenario {
	s.Context.RepoPath = s.Scene.Dir
	return s
}

// WithSessionToken stores token as the session credential
func (s *Scenario) WithSessionToken(token string) *Scenario {
	s.T.Helper()
	require.NoError(s.T, s.Context.SaveSessionToken(token))
	return s
}

// WithRemote creates a bare remote seeded with main
func (s *Scenario) WithRemote(name string) string {
	s.T.Helper()
	url, err := s.Scene.Repo.CreateBareRemote(name)
	require.NoError(s.T, err)
	require.NoError(s.T, s.Scene.Repo.PushBranch(name, "main"))
	return url
}

// RunGit runs a git command in the scenario's repository.
func (s *Scenario) RunGit(args ...string) *Scenario {
	s.T.Helper()
	require.NoError(s.T, s.Scene.Repo.RunGitCommand(args...))
	return s
}

// Checkout checks out a branch.
func (s *Scenario) Checkout(branch string) *Scenario {
	s.T.Helper()
	require.NoError(s.T, s.Scene.Repo.CheckoutBranch(branch))
	return s
}

// CreateBranch creates and checks out a new branch.
func (s *Scenario) CreateBranch(name string) *Scenario {
	s.T.Helper()
	require.NoError(s.T, s.Scene.Repo.CreateAndCheckoutBranch(name))
	return s
}

// CommitChange creates a file change and commits it.
func (s *Scenario) CommitChange(name, message string) *Scenario {
	s.T.Helper()
	require.NoError(s.T, s.Scene.Repo.CreateChangeAndCommit(message, name))
	return s
}

// ExpectBranch asserts that the current branch is as expected.
func (s *Scenario) ExpectBranch(expected string) *Scenario {
	s.T.Helper()
	actual, err := s.Scene.Repo.CurrentBranchName()
	require.NoError(s.T, err)
	require.Equal(s.T, expected, actual)
	return s
}

// EventLog records progress events
type EventLog struct {
	mu     sync.Mutex
	events []progress.Event
}

// Emit records e
func (l *EventLog) Emit(e progress.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, e)
}

// Events returns a copy of the recorded events
func (l *EventLog) Events() []progress.Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]progress.Event(nil), l.events...)
}

// Last returns the most recent event
func (l *EventLog) Last() (progress.Event, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.events) == 0 {
		return progress.Event{}, false
	}
	return l.events[len(l.events)-1], true
}

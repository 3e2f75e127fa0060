package workspace

import (
	"encoding/json"
	"errors"
	"slices"
	"strings"

	"gitdesk.dev/gitdesk/internal/config"
	"gitdesk.dev/gitdesk/internal/store"
)

// ErrEmptyPath is returned when a registry mutation is given a blank path
var ErrEmptyPath = errors.New("repository path cannot be empty")

// State is the list of known repositories and the active one.
// ActiveRepo is empty when there is none and is always a member of Repos
// after a mutation.
type State struct {
	Repos      []string `json:"repos"`
	ActiveRepo string   `json:"active_repo"`
}

// MarshalJSON encodes an empty ActiveRepo as null
func (s State) MarshalJSON() ([]byte, error) {
	repos := s.Repos
	if repos == nil {
		repos = []string{}
	}
	var active *string
	if s.ActiveRepo != "" {
		active = &s.ActiveRepo
	}
	return json.Marshal(struct {
		Repos      []string `json:"repos"`
		ActiveRepo *string  `json:"active_repo"`
	}{repos, active})
}

// Registry persists State in a store. Mutations are read-modify-write with
// no concurrency control; the last writer wins.
type Registry struct {
	store     store.Store
	reposKey  string
	activeKey string
}

// NewRegistry creates a registry over s using the keys from cfg
func NewRegistry(s store.Store, cfg config.Config) *Registry {
	return &Registry{
		store:     s,
		reposKey:  cfg.ReposKey,
		activeKey: cfg.LastOpenedRepoKey,
	}
}

// State returns the persisted state
func (r *Registry) State() State {
	repos := store.GetStrings(r.store, r.reposKey)
	if repos == nil {
		repos = []string{}
	}
	state := State{Repos: repos}
	if active := strings.TrimSpace(store.GetString(r.store, r.activeKey)); slices.Contains(repos, active) {
		state.ActiveRepo = active
	}
	return state
}

// LastOpened returns the persisted last-opened path, or "" when none is stored
func (r *Registry) LastOpened() string {
	return strings.TrimSpace(store.GetString(r.store, r.activeKey))
}

// SetActive adds path if it is new and makes it the active repository
func (r *Registry) SetActive(path string) (State, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return State{}, ErrEmptyPath
	}

	state := r.State()
	if !slices.Contains(state.Repos, path) {
		state.Repos = append(state.Repos, path)
	}
	state.ActiveRepo = path

	if err := r.write(state); err != nil {
		return State{}, err
	}
	return state, nil
}

// Remember records a folder the user opened. Callers treat failures as best effort.
func (r *Registry) Remember(path string) error {
	_, err := r.SetActive(path)
	return err
}

// Remove forgets path. When it was active, or the active path is no longer
// present, the last remaining entry becomes active.
func (r *Registry) Remove(path string) (State, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return State{}, ErrEmptyPath
	}

	state := r.State()
	previous := r.LastOpened()
	state.Repos = slices.DeleteFunc(state.Repos, func(p string) bool { return p == path })

	switch {
	case previous != path && slices.Contains(state.Repos, previous):
		state.ActiveRepo = previous
	case len(state.Repos) > 0:
		state.ActiveRepo = state.Repos[len(state.Repos)-1]
	default:
		state.ActiveRepo = ""
	}

	if err := r.write(state); err != nil {
		return State{}, err
	}
	return state, nil
}

func (r *Registry) write(state State) error {
	if err := r.store.Set(r.reposKey, state.Repos); err != nil {
		return err
	}
	var active any
	if state.ActiveRepo != "" {
		active = state.ActiveRepo
	}
	if err := r.store.Set(r.activeKey, active); err != nil {
		return err
	}
	return r.store.Save()
}

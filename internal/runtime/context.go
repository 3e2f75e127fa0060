package runtime

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gitdesk.dev/gitdesk/internal/auth"
	"gitdesk.dev/gitdesk/internal/config"
	gderrors "gitdesk.dev/gitdesk/internal/errors"
	"gitdesk.dev/gitdesk/internal/git"
	"gitdesk.dev/gitdesk/internal/progress"
	"gitdesk.dev/gitdesk/internal/secrets"
	"gitdesk.dev/gitdesk/internal/store"
	"gitdesk.dev/gitdesk/internal/tui"
	"gitdesk.dev/gitdesk/internal/workspace"
)

// Context provides access to configuration, state and output for commands
type Context struct {
	Context  context.Context
	Config   config.Config
	Store    store.Store
	Registry *workspace.Registry
	Secrets  secrets.Store
	Splog    *tui.Splog

	// Progress receives transfer events from clone, fetch and push
	Progress progress.Sink

	// RepoPath is the explicitly requested repository, empty when absent
	RepoPath string
	// Token overrides the stored session token for network operations
	Token string
}

// NewContext wires a context from already-constructed dependencies
func NewContext(ctx context.Context, cfg config.Config, st store.Store, sec secrets.Store, splog *tui.Splog) *Context {
	if splog == nil {
		splog = tui.NewSplog()
	}
	return &Context{
		Context:  ctx,
		Config:   cfg,
		Store:    st,
		Registry: workspace.NewRegistry(st, cfg),
		Secrets:  sec,
		Splog:    splog,
		Progress: progress.Discard,
	}
}

// GetContext loads configuration and opens the settings store and keychain
func GetContext(ctx context.Context) (*Context, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	splog, err := tui.NewSplogWithConfig(cfg.LogFile, nil)
	if err != nil {
		// File logging is best effort
		splog = tui.NewSplog()
		splog.Debug("file logging disabled: %v", err)
	}

	st, err := store.OpenFile(cfg.StorePath())
	if err != nil {
		return nil, err
	}

	return NewContext(ctx, cfg, st, secrets.NewKeyring(), splog), nil
}

// OpenRepo resolves the repository for this invocation from the explicit
// path and the last opened one
func (c *Context) OpenRepo() (*git.Repository, error) {
	repo, err := workspace.Resolve(c.RepoPath, c.Registry.LastOpened(), nil)
	if err != nil {
		return nil, err
	}
	c.Splog.Debug("using repository %s", repo.Root())
	return repo, nil
}

// SessionToken returns the stored session token
func (c *Context) SessionToken() (string, error) {
	token, err := c.Secrets.Get(c.Config.ServiceName, c.Config.UserKey)
	if err != nil {
		if errors.Is(err, secrets.ErrNotFound) {
			return "", gderrors.ErrNotAuthenticated
		}
		return "", err
	}
	return token, nil
}

// SaveSessionToken stores token as the session credential
func (c *Context) SaveSessionToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("token is empty")
	}
	return c.Secrets.Set(c.Config.ServiceName, c.Config.UserKey, token)
}

// DeleteSessionToken removes the session credential
func (c *Context) DeleteSessionToken() error {
	return c.Secrets.Delete(c.Config.ServiceName, c.Config.UserKey)
}

// NetworkToken returns the token for remote operations: the override when
// set, otherwise the stored session token, otherwise empty
func (c *Context) NetworkToken() string {
	if token := strings.TrimSpace(c.Token); token != "" {
		return token
	}
	token, err := c.SessionToken()
	if err != nil {
		if !errors.Is(err, gderrors.ErrNotAuthenticated) {
			c.Splog.Debug("could not read session token: %v", err)
		}
		return ""
	}
	return token
}

// Negotiator returns the credential negotiator for this invocation
func (c *Context) Negotiator() auth.Negotiator {
	return auth.NewNegotiator(c.NetworkToken())
}

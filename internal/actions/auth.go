package actions

import (
	"errors"
	"strings"

	"golang.org/x/oauth2"

	gderrors "gitdesk.dev/gitdesk/internal/errors"
	"gitdesk.dev/gitdesk/internal/github"
	"gitdesk.dev/gitdesk/internal/runtime"
	"gitdesk.dev/gitdesk/internal/tui"
)

// AuthLoginOptions contains options for the auth login command
type AuthLoginOptions struct {
	// WithToken skips the device flow and stores a personal access token
	WithToken bool
	// Token is the token to store; when empty with WithToken the user is prompted
	Token string
	// Notify receives the device code to show the user
	Notify func(github.DeviceCode)
}

// AuthStatus describes the stored session
type AuthStatus struct {
	Authenticated bool         `json:"authenticated"`
	User          *github.User `json:"user,omitempty"`
}

// AuthLoginAction obtains a token and stores it as the session credential.
// The signed-in account is looked up afterwards; a failed lookup is only logged.
func AuthLoginAction(ctx *runtime.Context, opts AuthLoginOptions) (*AuthStatus, error) {
	token, err := obtainToken(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := ctx.SaveSessionToken(token); err != nil {
		return nil, err
	}

	status := &AuthStatus{Authenticated: true}
	client, err := github.NewClient(ctx.Context, token, ctx.Config.GitHubAPIURL)
	if err == nil {
		status.User, err = client.CurrentUser(ctx.Context)
	}
	if err != nil {
		ctx.Splog.Warn("Logged in, but could not look up the account: %v", err)
		status.User = nil
	}
	return status, nil
}

func obtainToken(ctx *runtime.Context, opts AuthLoginOptions) (string, error) {
	if opts.WithToken {
		token := strings.TrimSpace(opts.Token)
		if token != "" {
			return token, nil
		}
		return tui.PromptToken("GitHub token")
	}
	return github.DeviceLogin(ctx.Context, deviceConfig(ctx), opts.Notify)
}

func deviceConfig(ctx *runtime.Context) github.DeviceConfig {
	cfg := github.DeviceConfig{
		ClientID: ctx.Config.GitHubClientID,
		Scopes:   ctx.Config.GitHubScopes,
	}
	if base := strings.TrimSuffix(ctx.Config.GitHubOAuthURL, "/"); base != "" {
		cfg.Endpoint = oauth2.Endpoint{
			AuthURL:       base + "/login/oauth/authorize",
			DeviceAuthURL: base + "/login/device/code",
			TokenURL:      base + "/login/oauth/access_token",
		}
	}
	return cfg
}

// AuthLogoutAction removes the stored session token
func AuthLogoutAction(ctx *runtime.Context) error {
	return ctx.DeleteSessionToken()
}

// AuthStatusAction reports whether a session token is stored and whose it is
func AuthStatusAction(ctx *runtime.Context) (*AuthStatus, error) {
	token, err := ctx.SessionToken()
	if errors.Is(err, gderrors.ErrNotAuthenticated) {
		return &AuthStatus{}, nil
	}
	if err != nil {
		return nil, err
	}

	client, err := github.NewClient(ctx.Context, token, ctx.Config.GitHubAPIURL)
	if err != nil {
		return nil, err
	}
	user, err := client.CurrentUser(ctx.Context)
	if err != nil {
		return nil, err
	}
	return &AuthStatus{Authenticated: true, User: user}, nil
}

// AuthTokenAction returns the stored session token
func AuthTokenAction(ctx *runtime.Context) (string, error) {
	return ctx.SessionToken()
}

// GitHubReposAction lists repositories of the signed-in account, most recently updated first
func GitHubReposAction(ctx *runtime.Context) ([]github.Repository, error) {
	token := ctx.NetworkToken()
	if token == "" {
		return nil, gderrors.ErrNotAuthenticated
	}
	client, err := github.NewClient(ctx.Context, token, ctx.Config.GitHubAPIURL)
	if err != nil {
		return nil, err
	}
	return client.ListRepositories(ctx.Context)
}

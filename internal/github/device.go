package github

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	oauth2github "golang.org/x/oauth2/github"
)

// ErrMissingClientID is returned when device login has no OAuth app configured
var ErrMissingClientID = errors.New("github oauth client id is not configured")

// DeviceCode is what the user needs to authorize the login
type DeviceCode struct {
	UserCode        string `json:"user_code"`
	VerificationURI string `json:"verification_uri"`
}

// DeviceConfig configures the OAuth device flow
type DeviceConfig struct {
	ClientID string
	Scopes   []string
	// Endpoint defaults to github.com
	Endpoint oauth2.Endpoint
}

func (c DeviceConfig) oauth() *oauth2.Config {
	endpoint := c.Endpoint
	if endpoint.TokenURL == "" {
		endpoint = oauth2github.Endpoint
	}
	return &oauth2.Config{
		ClientID: c.ClientID,
		Scopes:   c.Scopes,
		Endpoint: endpoint,
	}
}

// DeviceLogin runs the device authorization flow. notify is called once with
// the code to show the user, then the token endpoint is polled until the
// user approves, denies or the code expires.
func DeviceLogin(ctx context.Context, cfg DeviceConfig, notify func(DeviceCode)) (string, error) {
	if cfg.ClientID == "" {
		return "", ErrMissingClientID
	}

	conf := cfg.oauth()
	resp, err := conf.DeviceAuth(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get device code: %w", err)
	}

	if notify != nil {
		notify(DeviceCode{UserCode: resp.UserCode, VerificationURI: resp.VerificationURI})
	}

	token, err := conf.DeviceAccessToken(ctx, resp)
	if err != nil {
		return "", fmt.Errorf("failed to get access token: %w", err)
	}
	return token.AccessToken, nil
}

package github_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"gitdesk.dev/gitdesk/internal/github"
	"gitdesk.dev/gitdesk/testhelpers"
)

func TestClient(t *testing.T) {
	t.Run("current user", func(t *testing.T) {
		srv := testhelpers.NewMockGitHubServer(t, nil)

		client, err := github.NewClient(context.Background(), "gho_test_token", srv.URL)
		require.NoError(t, err)

		user, err := client.CurrentUser(context.Background())
		require.NoError(t, err)
		require.Equal(t, "octocat", user.Login)
		require.Equal(t, "The Octocat", user.Name)
		require.Equal(t, "octocat@example.com", user.Email)
	})

	t.Run("bad token is rejected", func(t *testing.T) {
		srv := testhelpers.NewMockGitHubServer(t, nil)

		client, err := github.NewClient(context.Background(), "wrong", srv.URL)
		require.NoError(t, err)

		_, err = client.CurrentUser(context.Background())
		require.Error(t, err)
		require.Contains(t, err.Error(), "Bad credentials")
	})

	t.Run("lists repositories sorted by update", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		config.Repos = []map[string]any{
			{
				"id":         1,
				"name":       "hello",
				"full_name":  "octocat/hello",
				"private":    true,
				"html_url":   "https://github.com/octocat/hello",
				"clone_url":  "https://github.com/octocat/hello.git",
				"updated_at": "2024-05-01T10:00:00Z",
				"language":   "Go",
				"owner":      map[string]any{"login": "octocat", "avatar_url": "https://a/o"},
			},
			{
				"id":          2,
				"name":        "world",
				"full_name":   "octocat/world",
				"description": "second",
				"updated_at":  "2024-04-01T10:00:00Z",
				"owner":       map[string]any{"login": "octocat"},
			},
		}
		srv := testhelpers.NewMockGitHubServer(t, config)

		client, err := github.NewClient(context.Background(), config.Token, srv.URL)
		require.NoError(t, err)

		repos, err := client.ListRepositories(context.Background())
		require.NoError(t, err)
		require.Len(t, repos, 2)
		require.Equal(t, "octocat/hello", repos[0].FullName)
		require.True(t, repos[0].Private)
		require.Equal(t, "https://github.com/octocat/hello.git", repos[0].CloneURL)
		require.Equal(t, "Go", repos[0].Language)
		require.Equal(t, "octocat", repos[0].Owner.Login)
		require.Equal(t, 2024, repos[0].UpdatedAt.Year())
		require.Equal(t, "second", repos[1].Description)

		requests := config.Requests()
		require.Len(t, requests, 1)
		query := requests[0].URL.Query()
		require.Equal(t, "updated", query.Get("sort"))
		require.Equal(t, "100", query.Get("per_page"))
	})
}

func TestDeviceLogin(t *testing.T) {
	t.Run("requires a client id", func(t *testing.T) {
		_, err := github.DeviceLogin(context.Background(), github.DeviceConfig{}, nil)
		require.ErrorIs(t, err, github.ErrMissingClientID)
	})

	t.Run("returns the token after approval", func(t *testing.T) {
		config := testhelpers.NewMockGitHubServerConfig()
		srv := testhelpers.NewMockGitHubServer(t, config)

		var shown github.DeviceCode
		token, err := github.DeviceLogin(context.Background(), github.DeviceConfig{
			ClientID: "client-abc",
			Scopes:   []string{"repo", "read:org", "user:email"},
			Endpoint: oauth2.Endpoint{
				DeviceAuthURL: srv.URL + "/login/device/code",
				TokenURL:      srv.URL + "/login/oauth/access_token",
			},
		}, func(code github.DeviceCode) {
			shown = code
		})
		require.NoError(t, err)
		require.Equal(t, config.Token, token)
		require.Equal(t, "ABCD-1234", shown.UserCode)
		require.Equal(t, "https://github.com/login/device", shown.VerificationURI)

		requests := config.Requests()
		require.NotEmpty(t, requests)
		require.Equal(t, "/login/device/code", requests[0].URL.Path)
	})
}

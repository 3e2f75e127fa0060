// Package github provides the GitHub account features: device login and
// listing the signed-in user's repositories.
package github

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// User is the signed-in account
type User struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// Owner identifies the account that owns a repository
type Owner struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
}

// Repository is one entry of the repository picker.
// This is a simplified struct to avoid coupling callers to go-github.
type Repository struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Private     bool      `json:"private"`
	HTMLURL     string    `json:"html_url"`
	Description string    `json:"description"`
	CloneURL    string    `json:"clone_url"`
	UpdatedAt   time.Time `json:"updated_at"`
	Language    string    `json:"language"`
	Owner       Owner     `json:"owner"`
}

// RepositoryPageSize is the number of repositories fetched in one listing
const RepositoryPageSize = 100

// Client talks to the GitHub REST API with a session token
type Client struct {
	client *github.Client
}

// NewClient creates a client authenticated with token.
// An empty apiURL means api.github.com.
func NewClient(ctx context.Context, token, apiURL string) (*Client, error) {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	client := github.NewClient(tc)

	if apiURL != "" {
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		baseURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse API URL %s: %w", apiURL, err)
		}
		client.BaseURL = baseURL
	}

	return &Client{client: client}, nil
}

// CurrentUser returns the account the token belongs to
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	user, _, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return &User{
		Login:     user.GetLogin(),
		Name:      user.GetName(),
		Email:     user.GetEmail(),
		AvatarURL: user.GetAvatarURL(),
	}, nil
}

// ListRepositories returns the most recently updated repositories visible
// to the user. Only the first page is fetched.
func (c *Client) ListRepositories(ctx context.Context) ([]Repository, error) {
	repos, _, err := c.client.Repositories.ListByAuthenticatedUser(ctx, &github.RepositoryListByAuthenticatedUserOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: RepositoryPageSize},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list repositories: %w", err)
	}

	result := make([]Repository, 0, len(repos))
	for _, repo := range repos {
		result = append(result, toRepository(repo))
	}
	return result, nil
}

func toRepository(repo *github.Repository) Repository {
	return Repository{
		ID:          repo.GetID(),
		Name:        repo.GetName(),
		FullName:    repo.GetFullName(),
		Private:     repo.GetPrivate(),
		HTMLURL:     repo.GetHTMLURL(),
		Description: repo.GetDescription(),
		CloneURL:    repo.GetCloneURL(),
		UpdatedAt:   repo.GetUpdatedAt().Time,
		Language:    repo.GetLanguage(),
		Owner: Owner{
			Login:     repo.GetOwner().GetLogin(),
			AvatarURL: repo.GetOwner().GetAvatarURL(),
		},
	}
}

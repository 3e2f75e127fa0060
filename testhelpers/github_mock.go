package testhelpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// MockGitHubServerConfig configures the behavior of a mock GitHub server
type MockGitHubServerConfig struct {
	// Token is the access token the API expects and the device flow hands out
	Token string
	// User is returned from GET /user
	User map[string]any
	// Repos is returned from GET /user/repos
	Repos []map[string]any
	// PendingPolls is the number of token polls answered with authorization_pending
	PendingPolls int

	mu       sync.Mutex
	requests []*http.Request
	polls    int
}

// NewMockGitHubServerConfig creates a new mock server config with defaults
func NewMockGitHubServerConfig() *MockGitHubServerConfig {
	return &MockGitHubServerConfig{
		Token: "gho_test_token",
		User: map[string]any{
			"login":      "octocat",
			"name":       "The Octocat",
			"email":      "octocat@example.com",
			"avatar_url": "https://avatars.example.com/octocat",
		},
		Repos: []map[string]any{},
	}
}

// Requests returns the requests the server has seen, in order
func (c *MockGitHubServerConfig) Requests() []*http.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*http.Request(nil), c.requests...)
}

func (c *MockGitHubServerConfig) record(r *http.Request) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests = append(c.requests, r.Clone(r.Context()))
}

// NewMockGitHubServer creates an httptest server for the REST endpoints and
// the OAuth device flow. Use srv.URL as the API URL and
// srv.URL+"/login/device/code", srv.URL+"/login/oauth/access_token" as the
// OAuth endpoint.
func NewMockGitHubServer(t *testing.T, config *MockGitHubServerConfig) *httptest.Server {
	t.Helper()
	if config == nil {
		config = NewMockGitHubServerConfig()
	}

	authorized := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer "+config.Token {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Bad credentials"})
			return false
		}
		return true
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		config.record(r)
		if !authorized(w, r) {
			return
		}
		writeJSON(w, http.StatusOK, config.User)
	})
	mux.HandleFunc("/user/repos", func(w http.ResponseWriter, r *http.Request) {
		config.record(r)
		if !authorized(w, r) {
			return
		}
		writeJSON(w, http.StatusOK, config.Repos)
	})
	mux.HandleFunc("/login/device/code", func(w http.ResponseWriter, r *http.Request) {
		config.record(r)
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"device_code":      "device-123",
			"user_code":        "ABCD-1234",
			"verification_uri": "https://github.com/login/device",
			"expires_in":       900,
			"interval":         1,
		})
	})
	mux.HandleFunc("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		config.record(r)
		if err := r.ParseForm(); err != nil || !strings.HasSuffix(r.PostForm.Get("grant_type"), "device_code") {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "unsupported_grant_type"})
			return
		}

		config.mu.Lock()
		config.polls++
		pending := config.polls <= config.PendingPolls
		config.mu.Unlock()

		if pending {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "authorization_pending"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token": config.Token,
			"token_type":   "bearer",
			"scope":        "repo,read:org,user:email",
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config holds process-wide settings
type Config struct {
	// Keychain entry holding the session token
	ServiceName string `json:"-"`
	UserKey     string `json:"-"`

	// Settings store file and the keys kept in it
	StoreName         string `json:"-"`
	LastOpenedRepoKey string `json:"-"`
	ReposKey          string `json:"-"`

	Dir             string   `json:"-"`
	LogFile         string   `json:"logFile,omitempty"`
	Remote          string   `json:"remote,omitempty"`
	HistoryPageSize int      `json:"historyPageSize,omitempty"`
	GitHubClientID  string   `json:"githubClientId,omitempty"`
	GitHubScopes    []string `json:"githubScopes,omitempty"`
	// GitHub API and OAuth hosts, empty for github.com
	GitHubAPIURL   string `json:"githubApiUrl,omitempty"`
	GitHubOAuthURL string `json:"githubOauthUrl,omitempty"`
}

// Default returns the built-in configuration rooted at dir
func Default(dir string) Config {
	return Config{
		ServiceName:       "better-github-desktop",
		UserKey:           "session-token",
		StoreName:         "settings.json",
		LastOpenedRepoKey: "last_opened_repo",
		ReposKey:          "repos",
		Dir:               dir,
		LogFile:           filepath.Join(dir, "logs", "gitdesk.log"),
		Remote:            "origin",
		HistoryPageSize:   50,
		GitHubScopes:      []string{"repo", "read:org", "user:email"},
	}
}

// StorePath returns the location of the settings store
func (c Config) StorePath() string {
	return filepath.Join(c.Dir, c.StoreName)
}

// DefaultDir returns the configuration directory.
// If GITDESK_CONFIG_DIR is set, uses that path.
// Otherwise, uses ~/.gitdesk
func DefaultDir() string {
	if dir := os.Getenv("GITDESK_CONFIG_DIR"); dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gitdesk"
	}
	return filepath.Join(homeDir, ".gitdesk")
}

// Load builds the configuration from defaults, config.json and the environment
func Load() (Config, error) {
	return LoadFrom(DefaultDir())
}

// LoadFrom is Load with an explicit configuration directory
func LoadFrom(dir string) (Config, error) {
	cfg := Default(dir)

	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	case !os.IsNotExist(err):
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if logFile := os.Getenv("GITDESK_LOG_FILE"); logFile != "" {
		cfg.LogFile = logFile
	}
	if clientID := os.Getenv("GITDESK_GITHUB_CLIENT_ID"); clientID != "" {
		cfg.GitHubClientID = clientID
	}
	if apiURL := os.Getenv("GITDESK_GITHUB_API_URL"); apiURL != "" {
		cfg.GitHubAPIURL = apiURL
	}
	if oauthURL := os.Getenv("GITDESK_GITHUB_OAUTH_URL"); oauthURL != "" {
		cfg.GitHubOAuthURL = oauthURL
	}
	if remote := os.Getenv("GITDESK_REMOTE"); remote != "" {
		cfg.Remote = remote
	}
	if pageSizeStr := os.Getenv("GITDESK_PAGE_SIZE"); pageSizeStr != "" {
		if pageSize, err := strconv.Atoi(pageSizeStr); err == nil && pageSize > 0 {
			cfg.HistoryPageSize = pageSize
		}
	}
}

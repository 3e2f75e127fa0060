// Package git provides low-level Git operations on top of go-git.
//
// It wraps a go-git repository and provides a Go-friendly interface for:
//   - Branch management (list, create, checkout, ref updates)
//   - Repo state queries (status, diffs, history, merge bases)
//   - Index and commit operations (stage, unstage, commit, merge commits)
//   - Remote operations (clone, fetch, push) with credential and progress hooks
//
// A Repository is opened per operation and dropped afterwards. The git
// binary is only used for tree-level three-way merges, which go-git lacks.
package git

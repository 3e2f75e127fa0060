// Package errors provides sentinel errors and custom error types for gitdesk.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrRepositoryOpenFailed indicates that no candidate path could be opened as a repository
	ErrRepositoryOpenFailed = errors.New("failed to open repository")

	// ErrNoRepositoryAvailable indicates that neither an explicit nor a remembered path exists
	ErrNoRepositoryAvailable = errors.New("no repository path available")

	// ErrBranchNotFound indicates that a branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrFastForwardNotPossible indicates the target is not an ancestor of the source
	ErrFastForwardNotPossible = errors.New("fast-forward not possible")

	// ErrNormalMergeNotRequired indicates the branches have not diverged
	ErrNormalMergeNotRequired = errors.New("normal merge not required")

	// ErrUncommittedChanges indicates the checked-out target has local changes a merge would overwrite
	ErrUncommittedChanges = errors.New("uncommitted changes in the working tree")

	// ErrMergeConflict indicates that a three-way merge produced conflicts
	ErrMergeConflict = errors.New("merge conflict")

	// ErrDetachedHeadPush indicates a push was requested while HEAD is detached
	ErrDetachedHeadPush = errors.New("cannot push from a detached HEAD")

	// ErrStore indicates a failure of the persisted settings store
	ErrStore = errors.New("store error")

	// ErrNotOnBranch indicates that HEAD is not on a branch
	ErrNotOnBranch = errors.New("not on a branch")

	// ErrRemoteNotFound indicates that the configured remote does not exist
	ErrRemoteNotFound = errors.New("remote not found")

	// ErrNotAuthenticated indicates that no session token is stored
	ErrNotAuthenticated = errors.New("not authenticated")
)

// RepositoryOpenError lists the paths that were tried and failed to open
type RepositoryOpenError struct {
	Paths []string
	Err   error
}

func (e *RepositoryOpenError) Error() string {
	return fmt.Sprintf("failed to open repository at %s", strings.Join(e.Paths, " or "))
}

// Is returns true if the target error is ErrRepositoryOpenFailed
func (e *RepositoryOpenError) Is(target error) bool {
	return target == ErrRepositoryOpenFailed
}

func (e *RepositoryOpenError) Unwrap() error {
	return e.Err
}

// NewRepositoryOpenError creates a new RepositoryOpenError
func NewRepositoryOpenError(err error, paths ...string) *RepositoryOpenError {
	return &RepositoryOpenError{Paths: paths, Err: err}
}

// BranchNotFoundError represents an error when a branch is not found
type BranchNotFoundError struct {
	BranchName string
}

func (e *BranchNotFoundError) Error() string {
	return fmt.Sprintf("branch %s does not exist", e.BranchName)
}

// Is returns true if the target error is ErrBranchNotFound
func (e *BranchNotFoundError) Is(target error) bool {
	return target == ErrBranchNotFound
}

// NewBranchNotFoundError creates a new BranchNotFoundError
func NewBranchNotFoundError(branchName string) *BranchNotFoundError {
	return &BranchNotFoundError{BranchName: branchName}
}

// MergeConflictError represents a three-way merge that stopped on conflicts
type MergeConflictError struct {
	Source string
	Target string
	Files  []string
}

func (e *MergeConflictError) Error() string {
	msg := fmt.Sprintf("merge of '%s' into '%s' has conflicts", e.Source, e.Target)
	if len(e.Files) > 0 {
		msg += ": " + strings.Join(e.Files, ", ")
	}
	return msg
}

// Is returns true if the target error is ErrMergeConflict
func (e *MergeConflictError) Is(target error) bool {
	return target == ErrMergeConflict
}

// NewMergeConflictError creates a new MergeConflictError
func NewMergeConflictError(source, target string, files []string) *MergeConflictError {
	return &MergeConflictError{
		Source: source,
		Target: target,
		Files:  files,
	}
}

// StoreError wraps a failure of the persisted settings store
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

// Is returns true if the target error is ErrStore
func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command  string
	Args     []string
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, exitCode int, err error) *GitCommandError {
	return &GitCommandError{
		Command:  command,
		Args:     args,
		Stdout:   stdout,
		Stderr:   stderr,
		ExitCode: exitCode,
		Err:      err,
	}
}

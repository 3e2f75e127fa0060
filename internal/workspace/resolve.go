// Package workspace decides which repository an operation targets and
// keeps the list of repositories the user has opened.
package workspace

import (
	"strings"

	gderrors "gitdesk.dev/gitdesk/internal/errors"
	"gitdesk.dev/gitdesk/internal/git"
)

// Opener opens a repository at a path
type Opener func(path string) (*git.Repository, error)

// Resolve picks the repository for an operation. An explicit path wins; the
// persisted last-opened path is only a fallback and the two are never mixed.
func Resolve(explicit, persisted string, open Opener) (*git.Repository, error) {
	explicit = strings.TrimSpace(explicit)
	persisted = strings.TrimSpace(persisted)
	if open == nil {
		open = git.OpenRepository
	}

	if explicit != "" {
		repo, err := open(explicit)
		if err == nil {
			return repo, nil
		}
		if persisted == "" || persisted == explicit {
			return nil, gderrors.NewRepositoryOpenError(err, explicit)
		}

		repo, fallbackErr := open(persisted)
		if fallbackErr != nil {
			return nil, gderrors.NewRepositoryOpenError(fallbackErr, explicit, persisted)
		}
		return repo, nil
	}

	if persisted != "" {
		repo, err := open(persisted)
		if err != nil {
			return nil, gderrors.NewRepositoryOpenError(err, persisted)
		}
		return repo, nil
	}

	return nil, gderrors.ErrNoRepositoryAvailable
}

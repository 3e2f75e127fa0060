package git

import (
	"errors"
	"fmt"
	"io"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// CommitDateFormat is how commit dates are shown in history listings
const CommitDateFormat = "Jan 02, 2006"

// CommitInfo is one entry of the history listing
type CommitInfo struct {
	OID         string   `json:"oid"`
	ShortOID    string   `json:"short_oid"`
	Message     string   `json:"message"`
	AuthorName  string   `json:"author_name"`
	AuthorEmail string   `json:"author_email"`
	Date        string   `json:"date"`
	Parents     []string `json:"parents"`
}

// Commits returns up to limit commits reachable from HEAD, newest first.
// An unborn branch has no history.
func (r *Repository) Commits(limit int) ([]CommitInfo, error) {
	commits := []CommitInfo{}
	if limit <= 0 {
		return commits, nil
	}

	head, err := r.HeadCommit()
	if err != nil {
		return nil, err
	}
	if head == nil {
		return commits, nil
	}

	iter, err := r.Log(&gogit.LogOptions{From: head.Hash, Order: gogit.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("failed to walk history: %w", err)
	}
	defer iter.Close()

	for len(commits) < limit {
		commit, err := iter.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to walk history: %w", err)
		}
		commits = append(commits, toCommitInfo(commit))
	}
	return commits, nil
}

func toCommitInfo(commit *object.Commit) CommitInfo {
	oid := commit.Hash.String()
	parents := make([]string, 0, len(commit.ParentHashes))
	for _, p := range commit.ParentHashes {
		parents = append(parents, p.String())
	}
	name := commit.Author.Name
	if name == "" {
		name = "Unknown"
	}
	return CommitInfo{
		OID:         oid,
		ShortOID:    oid[:7],
		Message:     commit.Message,
		AuthorName:  name,
		AuthorEmail: commit.Author.Email,
		Date:        commit.Author.When.Format(CommitDateFormat),
		Parents:     parents,
	}
}

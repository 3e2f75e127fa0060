// Package merge classifies how two local branches relate and merges one
// into the other by fast-forward or by a two-parent merge commit.
//
// Every strategy re-derives the relationship from the current branch tips;
// a verdict returned earlier is never trusted.
package merge

import (
	"encoding/json"
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"

	"gitdesk.dev/gitdesk/internal/git"
)

// Verdict is the relationship of a source branch to a target branch
type Verdict int

const (
	// VerdictUpToDate means the target already contains the source
	VerdictUpToDate Verdict = iota
	// VerdictFastForward means the source is strictly ahead of the target
	VerdictFastForward
	// VerdictNormalMerge means the branches have diverged
	VerdictNormalMerge
)

func (v Verdict) String() string {
	switch v {
	case VerdictFastForward:
		return "fast_forward"
	case VerdictNormalMerge:
		return "normal_merge"
	default:
		return "up_to_date"
	}
}

// MarshalJSON encodes the verdict by name
func (v Verdict) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// Analysis is the classification of source into target at one moment
type Analysis struct {
	Verdict Verdict `json:"analysis"`
	Source  string  `json:"source_branch"`
	Target  string  `json:"target_branch"`
}

// relation holds the resolved tips and merge base of two branches
type relation struct {
	sourceTip plumbing.Hash
	targetTip plumbing.Hash
	base      plumbing.Hash
	hasBase   bool
}

func (r relation) verdict() Verdict {
	switch {
	case r.sourceTip == r.targetTip:
		return VerdictUpToDate
	case r.hasBase && r.base == r.targetTip:
		return VerdictFastForward
	case r.hasBase && r.base == r.sourceTip:
		// Merging backward is not offered
		return VerdictUpToDate
	default:
		return VerdictNormalMerge
	}
}

func relate(repo *git.Repository, source, target string) (relation, error) {
	sourceTip, err := repo.BranchTip(source)
	if err != nil {
		return relation{}, err
	}
	targetTip, err := repo.BranchTip(target)
	if err != nil {
		return relation{}, err
	}

	base, found, err := repo.MergeBase(sourceTip, targetTip)
	if err != nil {
		return relation{}, fmt.Errorf("failed to compute merge base of %s and %s: %w", source, target, err)
	}
	return relation{sourceTip: sourceTip, targetTip: targetTip, base: base, hasBase: found}, nil
}

// Classify reports how source relates to target. Both must be local branches.
func Classify(repo *git.Repository, source, target string) (Analysis, error) {
	rel, err := relate(repo, source, target)
	if err != nil {
		return Analysis{}, err
	}
	return Analysis{Verdict: rel.verdict(), Source: source, Target: target}, nil
}

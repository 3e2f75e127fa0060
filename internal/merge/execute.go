package merge

import (
	"context"

	"gitdesk.dev/gitdesk/internal/git"
)

// Outcome is the result of Execute. At most one of FastForward and Normal
// is set; both are nil when the target was already up to date.
type Outcome struct {
	Analysis    Analysis           `json:"analysis"`
	FastForward *FastForwardResult `json:"fast_forward,omitempty"`
	Normal      *NormalResult      `json:"normal,omitempty"`
}

// Execute classifies source against target and runs the matching strategy
func Execute(ctx context.Context, repo *git.Repository, source, target string) (*Outcome, error) {
	analysis, err := Classify(repo, source, target)
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{Analysis: analysis}
	switch analysis.Verdict {
	case VerdictFastForward:
		outcome.FastForward, err = FastForward(ctx, repo, source, target)
	case VerdictNormalMerge:
		outcome.Normal, err = Normal(ctx, repo, source, target)
	}
	if err != nil {
		return nil, err
	}
	return outcome, nil
}

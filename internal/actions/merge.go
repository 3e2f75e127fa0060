package actions

import (
	"gitdesk.dev/gitdesk/internal/merge"
	"gitdesk.dev/gitdesk/internal/runtime"
)

// MergeOptions names the branches of a merge. Source is merged into Target.
type MergeOptions struct {
	Source string
	Target string
}

// MergeAnalyzeAction classifies how Source relates to Target
func MergeAnalyzeAction(ctx *runtime.Context, opts MergeOptions) (merge.Analysis, error) {
	repo, err := ctx.OpenRepo()
	if err != nil {
		return merge.Analysis{}, err
	}
	return merge.Classify(repo, opts.Source, opts.Target)
}

// MergeFastForwardAction moves Target to the tip of Source
func MergeFastForwardAction(ctx *runtime.Context, opts MergeOptions) (*merge.FastForwardResult, error) {
	repo, err := ctx.OpenRepo()
	if err != nil {
		return nil, err
	}
	return merge.FastForward(ctx.Context, repo, opts.Source, opts.Target)
}

// MergeNormalAction creates a merge commit of Source into Target
func MergeNormalAction(ctx *runtime.Context, opts MergeOptions) (*merge.NormalResult, error) {
	repo, err := ctx.OpenRepo()
	if err != nil {
		return nil, err
	}
	return merge.Normal(ctx.Context, repo, opts.Source, opts.Target)
}

// MergeRunAction classifies, then fast-forwards or merges as needed
func MergeRunAction(ctx *runtime.Context, opts MergeOptions) (*merge.Outcome, error) {
	repo, err := ctx.OpenRepo()
	if err != nil {
		return nil, err
	}
	outcome, err := merge.Execute(ctx.Context, repo, opts.Source, opts.Target)
	if err != nil {
		return nil, err
	}
	ctx.Splog.Debug("Merged %s into %s: %s", opts.Source, opts.Target, outcome.Analysis.Verdict)
	return outcome, nil
}

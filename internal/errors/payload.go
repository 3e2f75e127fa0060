package errors

import "errors"

// Payload is the serializable form of an error handed back to the shell
type Payload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var codes = []struct {
	sentinel error
	code     string
}{
	{ErrRepositoryOpenFailed, "RepositoryOpenFailed"},
	{ErrNoRepositoryAvailable, "NoRepositoryAvailable"},
	{ErrBranchNotFound, "BranchNotFound"},
	{ErrFastForwardNotPossible, "FastForwardNotPossible"},
	{ErrNormalMergeNotRequired, "NormalMergeNotRequired"},
	{ErrUncommittedChanges, "UncommittedChanges"},
	{ErrMergeConflict, "MergeConflict"},
	{ErrDetachedHeadPush, "DetachedHeadPush"},
	{ErrStore, "StoreError"},
	{ErrNotOnBranch, "NotOnBranch"},
	{ErrRemoteNotFound, "RemoteNotFound"},
	{ErrNotAuthenticated, "NotAuthenticated"},
}

// Code returns the taxonomy code for err, or "EngineError" for pass-through failures
func Code(err error) string {
	for _, c := range codes {
		if errors.Is(err, c.sentinel) {
			return c.code
		}
	}
	return "EngineError"
}

// ToPayload converts err into its serializable form. A nil error yields nil.
func ToPayload(err error) *Payload {
	if err == nil {
		return nil
	}
	return &Payload{Code: Code(err), Message: err.Error()}
}

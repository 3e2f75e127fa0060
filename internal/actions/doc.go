// Package actions provides the use cases behind gitdesk commands.
//
// Each action corresponds to a gitdesk command (clone, status, merge, push,
// auth login, ...) and orchestrates the workspace, git, merge, auth and
// github packages.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Config, Registry, Splog and the keychain
//   - Actions open the repository per call and drop it afterwards
//   - Actions return plain values; rendering is left to the cli package
package actions

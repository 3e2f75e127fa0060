// Package runtime provides the execution context for gitdesk commands.
//
// It bundles the shared dependencies actions need: configuration, the
// settings store and workspace registry, the keychain, the logger and the
// per-invocation overrides (explicit repository path and network token).
package runtime

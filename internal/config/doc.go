// Package config manages gitdesk configuration.
//
// It handles:
//   - Process-wide constants (keychain service, settings store keys)
//   - Operational settings loaded from an optional config.json
//   - GITDESK_* environment overrides
//
// The resulting Config is passed explicitly to the components that need it.
package config

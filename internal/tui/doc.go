// Package tui provides the terminal side of gitdesk.
//
// It handles:
//   - Structured logging and status reporting (Splog)
//   - Styled listings (using lipgloss)
//   - Transfer progress rendering on stderr
//   - The token prompt (using survey)
package tui

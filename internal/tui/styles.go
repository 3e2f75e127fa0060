package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"gitdesk.dev/gitdesk/internal/git"
)

var (
	currentBranchStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	remoteBranchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	shortOIDStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	stagedStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

var changeColors = map[git.ChangeStatus]lipgloss.Color{
	git.StatusNew:      lipgloss.Color("2"),
	git.StatusModified: lipgloss.Color("3"),
	git.StatusDeleted:  lipgloss.Color("1"),
}

var changeMarks = map[git.ChangeStatus]string{
	git.StatusNew:      "A",
	git.StatusModified: "M",
	git.StatusDeleted:  "D",
}

// ColorRed colors text red
func ColorRed(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(text)
}

// ColorGreen colors text green
func ColorGreen(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Render(text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Render(text)
}

// ColorCyan colors text cyan
func ColorCyan(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Render(text)
}

// ColorDim renders text in a muted gray
func ColorDim(text string) string {
	return dimStyle.Render(text)
}

// FormatBranch renders one line of a branch listing
func FormatBranch(b git.BranchInfo) string {
	switch {
	case b.IsHead:
		return "* " + currentBranchStyle.Render(b.Name)
	case b.Kind == git.BranchRemote:
		return "  " + remoteBranchStyle.Render(b.Name)
	default:
		return "  " + b.Name
	}
}

// FormatChange renders one line of a status listing
func FormatChange(c git.FileChange) string {
	mark, ok := changeMarks[c.Status]
	if !ok {
		mark = "?"
	}
	line := lipgloss.NewStyle().Foreground(changeColors[c.Status]).Render(mark) + " " + c.Path
	if c.Staged {
		line += " " + stagedStyle.Render("(staged)")
	}
	return line
}

// FormatCommit renders one line of the history listing
func FormatCommit(c git.CommitInfo) string {
	return fmt.Sprintf("%s %s %s", shortOIDStyle.Render(c.ShortOID), firstLine(c.Message),
		dimStyle.Render(fmt.Sprintf("(%s, %s)", c.AuthorName, c.Date)))
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}

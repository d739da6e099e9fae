// Package ui renders decisions and run summaries for the terminal.
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/bianoble/skill-link/pkg/skilllink"
)

// Styles holds the render styles for report output.
type Styles struct {
	created lipgloss.Style
	deleted lipgloss.Style
	skipped lipgloss.Style
	failed  lipgloss.Style
	muted   lipgloss.Style
	header  lipgloss.Style
}

// New builds the style set. Styling is dropped when noColor is set or
// stdout is not a terminal.
func New(noColor bool) *Styles {
	s := &Styles{
		created: lipgloss.NewStyle(),
		deleted: lipgloss.NewStyle(),
		skipped: lipgloss.NewStyle(),
		failed:  lipgloss.NewStyle(),
		muted:   lipgloss.NewStyle(),
		header:  lipgloss.NewStyle(),
	}
	if noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		return s
	}
	s.created = s.created.Foreground(lipgloss.Color("2"))
	s.deleted = s.deleted.Foreground(lipgloss.Color("3"))
	s.skipped = s.skipped.Foreground(lipgloss.Color("4"))
	s.failed = s.failed.Foreground(lipgloss.Color("1")).Bold(true)
	s.muted = s.muted.Faint(true)
	s.header = s.header.Bold(true)
	return s
}

// Header renders a target directory heading.
func (s *Styles) Header(path string) string {
	return s.header.Render(path)
}

// kindLabel styles a decision kind, padded before styling so escape
// sequences never distort the columns.
func (s *Styles) kindLabel(k skilllink.DecisionKind) string {
	label := fmt.Sprintf("%-22s", string(k))
	switch k {
	case skilllink.Created:
		return s.created.Render(label)
	case skilllink.DeletedBroken:
		return s.deleted.Render(label)
	case skilllink.SkippedForeignLink, skilllink.SkippedOccupied:
		return s.skipped.Render(label)
	case skilllink.Failed:
		return s.failed.Render(label)
	}
	return s.muted.Render(label)
}

// Decision renders one decision line.
func (s *Styles) Decision(d skilllink.Decision) string {
	line := fmt.Sprintf("  %s %s", s.kindLabel(d.Kind), d.Skill)
	if d.Kind == skilllink.Failed && d.Detail != "" {
		line += s.muted.Render(" (" + d.Detail + ")")
	}
	return line
}

// Row renders one decision as a skill / kind / detail table row, styled
// the same way Decision lines are.
func (s *Styles) Row(d skilllink.Decision) string {
	return fmt.Sprintf("  %-24s %s %s", d.Skill, s.kindLabel(d.Kind), d.Detail)
}

// Summary renders the aggregate counter line for a run.
func (s *Styles) Summary(c skilllink.Counters) string {
	failed := fmt.Sprintf("%d failed", c.Failed)
	if c.Failed > 0 {
		failed = s.failed.Render(failed)
	}
	return fmt.Sprintf("%d created, %d skipped, %d deleted, %s",
		c.Created, c.Skipped, c.Deleted, failed)
}

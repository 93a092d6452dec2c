package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/papapumpkin/ecliptic/internal/codex"
)

// Program is an alias for tea.Program, exposed so callers don't need
// to import bubbletea directly.
type Program = tea.Program

// NewProgram creates a BubbleTea program for the wheel explorer.
// The program uses the alternate screen buffer for a clean TUI experience.
func NewProgram(c *codex.Codex, opts ...tea.ProgramOption) (*Program, error) {
	model, err := NewAppModel(c)
	if err != nil {
		return nil, err
	}

	allOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
	}
	allOpts = append(allOpts, opts...)

	return tea.NewProgram(model, allOpts...), nil
}

// Run creates and runs the explorer, blocking until it exits.
func Run(c *codex.Codex) error {
	p, err := NewProgram(c)
	if err != nil {
		return err
	}
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// WithOutput returns a program option that directs TUI output to the given writer.
// Useful for testing or redirecting output.
func WithOutput(w io.Writer) tea.ProgramOption {
	return tea.WithOutput(w)
}

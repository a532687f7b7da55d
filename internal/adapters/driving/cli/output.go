package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/scout/internal/core/domain"
)

// styles holds the lipgloss styles for terminal output. Every style is a
// no-op when output is not a terminal.
type styles struct {
	title  lipgloss.Style
	muted  lipgloss.Style
	score  lipgloss.Style
	low    lipgloss.Style
	medium lipgloss.Style
	high   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	if !isTerminal(w) {
		plain := lipgloss.NewStyle()
		return styles{plain, plain, plain, plain, plain, plain}
	}
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		score:  lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		low:    lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")),
		medium: lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
		high:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	}
}

func (s styles) risk(r domain.RiskLevel) lipgloss.Style {
	switch r {
	case domain.RiskHigh:
		return s.high
	case domain.RiskMedium:
		return s.medium
	default:
		return s.low
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

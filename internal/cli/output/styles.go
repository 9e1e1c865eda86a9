package output

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the text-mode styles for a renderer.
type Styles struct {
	Header  lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// Status markers.
const (
	IconPass = "✓"
	IconWarn = "!"
	IconFail = "✗"
)

func newStyles(r *Renderer) *Styles {
	lr := lipgloss.NewRenderer(r.out)
	if !r.isTTY {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Header:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Bold:    lr.NewStyle().Bold(true),
		Muted:   lr.NewStyle().Foreground(lipgloss.Color("8")),
		Success: lr.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: lr.NewStyle().Foreground(lipgloss.Color("11")),
		Error:   lr.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// Styles returns the renderer's text styles. Colors are dropped when the
// output is not a terminal.
func (r *Renderer) Styles() *Styles {
	if r.styles == nil {
		r.styles = newStyles(r)
	}
	return r.styles
}

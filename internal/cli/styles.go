package cli

import "github.com/charmbracelet/lipgloss"

var (
	clrHighlight = lipgloss.AdaptiveColor{Light: "#0F766E", Dark: "#2DD4BF"}
	clrGreen     = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	clrDim       = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#555555"}
)

// Styles decorates command output. With color disabled every method
// returns its input unchanged, so task and report blocks stay plain text.
type Styles struct {
	enabled bool
	heading lipgloss.Style
	success lipgloss.Style
	muted   lipgloss.Style
}

// NewStyles creates the output styles
func NewStyles(enabled bool) *Styles {
	return &Styles{
		enabled: enabled,
		heading: lipgloss.NewStyle().Bold(true).Foreground(clrHighlight),
		success: lipgloss.NewStyle().Foreground(clrGreen).Bold(true),
		muted:   lipgloss.NewStyle().Foreground(clrDim),
	}
}

// Heading renders table headings
func (s *Styles) Heading(text string) string {
	return s.render(s.heading, text)
}

// Success renders confirmation lines
func (s *Styles) Success(text string) string {
	return s.render(s.success, text)
}

// Muted renders secondary information
func (s *Styles) Muted(text string) string {
	return s.render(s.muted, text)
}

func (s *Styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

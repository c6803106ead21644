package seatmap

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - chosen to stay readable on both black and dark surfaces
	FreeColor     = lipgloss.Color("#10B981") // Green
	ReservedColor = lipgloss.Color("#F87171") // Red (red-400)
	MutedColor    = lipgloss.Color("#9CA3AF") // Gray
	TextColor     = lipgloss.Color("#F9FAFB") // Light text
	CursorColor   = lipgloss.Color("#F59E0B") // Amber
	SelectColor   = lipgloss.Color("#A78BFA") // Purple (violet-400)

	// Seat cell styles
	Free     = lipgloss.NewStyle().Foreground(FreeColor)
	Reserved = lipgloss.NewStyle().Foreground(ReservedColor)
	Muted    = lipgloss.NewStyle().Foreground(MutedColor)

	// Picker styles
	Cursor = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor).
		Background(CursorColor)

	Selected = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(SelectColor)

	// Header / legend styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor).
		MarginBottom(1)

	RowLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	Legend = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)
)

// Seat glyphs
const (
	FreeGlyph     = "·"
	ReservedGlyph = "■"
)

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Garden palette
	LeafColor      = lipgloss.Color("#2B9348") // Leaf green, used for progress and leaves
	DeepLeafColor  = lipgloss.Color("#1B4332") // Dark green for titles on light cards
	SproutColor    = lipgloss.Color("#80B918") // Light green for the first phase
	BloomColor     = lipgloss.Color("#FFCC00") // Yellow bloom marker
	StemColor      = lipgloss.Color("#644614") // Brown stem
	SoilColor      = lipgloss.Color("#7F5539") // Soil line
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray border
	TrackColor     = lipgloss.Color("#4B5563") // Empty progress track
	HighlightColor = lipgloss.Color("#F0FBE0") // Pale green background for the focused control

	// Convenience styles for colors
	Leaf  = lipgloss.NewStyle().Foreground(LeafColor)
	Bloom = lipgloss.NewStyle().Foreground(BloomColor).Bold(true)
	Stem  = lipgloss.NewStyle().Foreground(StemColor)
	Soil  = lipgloss.NewStyle().Foreground(SoilColor)
	Muted = lipgloss.NewStyle().Foreground(MutedColor)
	Text  = lipgloss.NewStyle().Foreground(TextColor)
	Track = lipgloss.NewStyle().Foreground(TrackColor)

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(LeafColor)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	DayCounter = lipgloss.NewStyle().
			Foreground(LeafColor).
			Bold(true)

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(LeafColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor).
		MarginBottom(1)

	// Card is the rounded box used for prompts and the harvest message
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Foreground(LeafColor).
		Bold(true).
		Padding(1, 3).
		Align(lipgloss.Center)

	// Modal is the blocking notification for invalid input
	Modal = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(ErrorColor).
		Padding(1, 2).
		Align(lipgloss.Center)

	// Form controls
	Label = lipgloss.NewStyle().
		Foreground(TextColor).
		MarginTop(1)

	Field = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1)

	FieldFocused = Field.
			BorderForeground(LeafColor)

	Button = lipgloss.NewStyle().
		Foreground(TextColor).
		Background(BorderColor).
		Padding(0, 2).
		MarginTop(1)

	ButtonFocused = Button.
			Background(LeafColor).
			Bold(true)

	DropdownItem = lipgloss.NewStyle().
			Foreground(TextColor).
			Padding(0, 1)

	DropdownItemSelected = lipgloss.NewStyle().
				Foreground(DeepLeafColor).
				Background(HighlightColor).
				Bold(true).
				Padding(0, 1)

	// Growth screen
	PlantTitle = lipgloss.NewStyle().
			Foreground(LeafColor).
			Bold(true)

	DaysLabel = lipgloss.NewStyle().
			Foreground(TextColor)

	Caption = lipgloss.NewStyle().
		Foreground(TextColor).
		Italic(true)

	// Error message
	ErrorMsg = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(LeafColor)
)

// PhaseColor returns the accent color for a growth phase name.
func PhaseColor(phase string) lipgloss.Color {
	switch phase {
	case "sprout":
		return SproutColor
	case "growing", "almost_ripe":
		return LeafColor
	case "harvested":
		return BloomColor
	default:
		return MutedColor
	}
}

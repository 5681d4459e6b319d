// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/elias000000000/bg/internal/model"
)

// Palette holds the accent colors of one selectable theme.
type Palette struct {
	Primary lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color
	Subtle  lipgloss.Color
}

var palettes = map[model.Theme]Palette{
	model.ThemeStandard: {
		Primary: lipgloss.Color("#5B8DEF"),
		Success: lipgloss.Color("#4ECDC4"),
		Warning: lipgloss.Color("#FFE66D"),
		Error:   lipgloss.Color("#FF6B6B"),
		Info:    lipgloss.Color("#95E1D3"),
		Subtle:  lipgloss.Color("#666666"),
	},
	model.ThemeDark: {
		Primary: lipgloss.Color("#BB9AF7"),
		Success: lipgloss.Color("#9ECE6A"),
		Warning: lipgloss.Color("#E0AF68"),
		Error:   lipgloss.Color("#F7768E"),
		Info:    lipgloss.Color("#7DCFFF"),
		Subtle:  lipgloss.Color("#565F89"),
	},
	model.ThemeMint: {
		Primary: lipgloss.Color("#2EC4B6"),
		Success: lipgloss.Color("#3DDC97"),
		Warning: lipgloss.Color("#FFD166"),
		Error:   lipgloss.Color("#EF476F"),
		Info:    lipgloss.Color("#83E8DC"),
		Subtle:  lipgloss.Color("#6B7D7D"),
	},
	model.ThemeSunset: {
		Primary: lipgloss.Color("#FF8C42"),
		Success: lipgloss.Color("#F9C74F"),
		Warning: lipgloss.Color("#F8961E"),
		Error:   lipgloss.Color("#F94144"),
		Info:    lipgloss.Color("#F3722C"),
		Subtle:  lipgloss.Color("#8D6A5A"),
	},
}

var (
	// TitleStyle is used for section titles.
	TitleStyle lipgloss.Style
	// SubtitleStyle is used for secondary headings.
	SubtitleStyle lipgloss.Style
	// SuccessStyle formats success messages.
	SuccessStyle lipgloss.Style
	// WarningStyle formats warning messages.
	WarningStyle lipgloss.Style
	// ErrorStyle formats error messages.
	ErrorStyle lipgloss.Style
	// InfoStyle formats informational messages.
	InfoStyle lipgloss.Style
	// SubtleStyle formats less prominent text.
	SubtleStyle lipgloss.Style
	// BoldStyle makes text bold.
	BoldStyle lipgloss.Style
	// AmountStyle formats money values.
	AmountStyle lipgloss.Style

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle lipgloss.Style
	// TableCellStyle formats table cells with appropriate padding.
	TableCellStyle lipgloss.Style
)

func init() {
	UseTheme(model.ThemeStandard)
}

// UseTheme rebuilds the package styles from the given theme's palette.
// Unknown themes fall back to the standard palette.
func UseTheme(theme model.Theme) {
	palette, ok := palettes[theme]
	if !ok {
		palette = palettes[model.ThemeStandard]
	}

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Primary).
		MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(palette.Subtle).
		MarginBottom(1)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(palette.Success)

	WarningStyle = lipgloss.NewStyle().
		Foreground(palette.Warning)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(palette.Error)

	InfoStyle = lipgloss.NewStyle().
		Foreground(palette.Info)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(palette.Subtle)

	BoldStyle = lipgloss.NewStyle().
		Bold(true)

	AmountStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Primary)

	TableHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color("#333"))

	TableCellStyle = lipgloss.NewStyle().
		PaddingRight(2)
}

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	WarningIcon = "⚠️"
	InfoIcon    = "ℹ️"
	MoneyIcon   = "💰"
	ChartIcon   = "📊"
	ArchiveIcon = "🗄️"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatWarning formats a warning message with icon.
func FormatWarning(message string) string {
	return WarningStyle.Render(WarningIcon + " " + message)
}

// FormatInfo formats an info message with icon.
func FormatInfo(message string) string {
	return InfoStyle.Render(InfoIcon + " " + message)
}

// FormatAmount renders a money value with the CHF currency marker and two
// fixed decimal places.
func FormatAmount(amount decimal.Decimal) string {
	return "CHF " + amount.StringFixed(2)
}

package widgets

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	ColorPink     lipgloss.Color = "#f5c2e7"
	ColorMauve    lipgloss.Color = "#cba6f7"
	ColorRed      lipgloss.Color = "#f38ba8"
	ColorPeach    lipgloss.Color = "#fab387"
	ColorGreen    lipgloss.Color = "#a6e3a1"
	ColorTeal     lipgloss.Color = "#94e2d5"
	ColorBlue     lipgloss.Color = "#89b4fa"
	ColorLavender lipgloss.Color = "#b4befe"

	ColorText     lipgloss.Color = "#cdd6f4"
	ColorSubtext0 lipgloss.Color = "#a6adc8"
	ColorOverlay1 lipgloss.Color = "#7f849c"
	ColorOverlay0 lipgloss.Color = "#6c7086"
	ColorSurface2 lipgloss.Color = "#585b70"
	ColorSurface1 lipgloss.Color = "#45475a"
	ColorSurface0 lipgloss.Color = "#313244"
	ColorBase     lipgloss.Color = "#1e1e2e"
)

// Theme holds every style the select widget draws with.
type Theme struct {
	Border        lipgloss.Style
	BorderFocused lipgloss.Style
	Value         lipgloss.Style
	Placeholder   lipgloss.Style
	Badge         lipgloss.Style
	BadgeRemove   lipgloss.Style
	Clear         lipgloss.Style
	Divider       lipgloss.Style
	Caret         lipgloss.Style
	Row           lipgloss.Style
	RowSelected   lipgloss.Style
	RowHighlight  lipgloss.Style
	RowBoth       lipgloss.Style
	Muted         lipgloss.Style
	Title         lipgloss.Style
}

// NewTheme builds the default theme around accent. An empty accent falls
// back to pink.
func NewTheme(accent lipgloss.Color) Theme {
	if accent == "" {
		accent = ColorPink
	}
	return Theme{
		Border:        lipgloss.NewStyle().Foreground(ColorSurface2),
		BorderFocused: lipgloss.NewStyle().Foreground(accent),
		Value:         lipgloss.NewStyle().Foreground(ColorText),
		Placeholder:   lipgloss.NewStyle().Foreground(ColorOverlay0),
		Badge:         lipgloss.NewStyle().Foreground(ColorText).Background(ColorSurface1),
		BadgeRemove:   lipgloss.NewStyle().Foreground(ColorRed).Background(ColorSurface1),
		Clear:         lipgloss.NewStyle().Foreground(ColorOverlay1),
		Divider:       lipgloss.NewStyle().Foreground(ColorSurface2),
		Caret:         lipgloss.NewStyle().Foreground(ColorOverlay1),
		Row:           lipgloss.NewStyle().Foreground(ColorSubtext0),
		RowSelected:   lipgloss.NewStyle().Foreground(ColorBase).Background(accent),
		RowHighlight:  lipgloss.NewStyle().Foreground(ColorText).Background(ColorSurface0),
		RowBoth:       lipgloss.NewStyle().Foreground(ColorBase).Background(accent).Bold(true),
		Muted:         lipgloss.NewStyle().Foreground(ColorOverlay0),
		Title:         lipgloss.NewStyle().Foreground(ColorLavender).Bold(true),
	}
}

// AccentColors lists the palette entries accepted as a named accent.
func AccentColors() map[string]lipgloss.Color {
	return map[string]lipgloss.Color{
		"pink":     ColorPink,
		"mauve":    ColorMauve,
		"red":      ColorRed,
		"peach":    ColorPeach,
		"green":    ColorGreen,
		"teal":     ColorTeal,
		"blue":     ColorBlue,
		"lavender": ColorLavender,
	}
}

// Accent resolves a palette name or a #rrggbb hex value.
func Accent(s string) (lipgloss.Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := AccentColors()[s]; ok {
		return c, true
	}
	if len(s) == 7 && s[0] == '#' {
		if _, err := strconv.ParseUint(s[1:], 16, 32); err == nil {
			return lipgloss.Color(s), true
		}
	}
	return "", false
}

// Package ui provides the interactive terminal interface for cfi: the menu,
// the guided generation wizard, and the taxonomy browser.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the current color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Error      lipgloss.Color
	Warning    lipgloss.Color
	Info       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#101F38"),
		Primary:    lipgloss.Color("#101F38"),
		Accent:     lipgloss.Color("#00796B"),
		Muted:      lipgloss.Color("#6b7280"),
		Success:    lipgloss.Color("#2E7D32"),
		Error:      lipgloss.Color("#e53935"),
		Warning:    lipgloss.Color("#FFC107"),
		Info:       lipgloss.Color("#2196F3"),
		IsDark:     false,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#f2f2f2"),
		Primary:    lipgloss.Color("#4DB6AC"),
		Accent:     lipgloss.Color("#80CBC4"),
		Muted:      lipgloss.Color("#8a93a5"),
		Success:    lipgloss.Color("#8BC34A"),
		Error:      lipgloss.Color("#e57373"),
		Warning:    lipgloss.Color("#FFD54F"),
		Info:       lipgloss.Color("#64B5F6"),
		IsDark:     true,
	}
}

// DetectTheme picks light or dark from terminal hints.
func DetectTheme() Theme {
	if os.Getenv("CFI_DARK_MODE") == "1" {
		return DarkTheme()
	}
	// COLORFGBG is "foreground;background"; low background indexes are dark.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if len(parts) == 2 {
			if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
				if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
					return DarkTheme()
				}
			}
		}
	}
	return LightTheme()
}

// Styles holds all the styled components.
type Styles struct {
	Theme Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Header lipgloss.Style
	Prompt lipgloss.Style
}

// NewStyles creates a Styles instance for the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Title:    lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).MarginBottom(1),
		Subtitle: lipgloss.NewStyle().Foreground(theme.Accent).Bold(true),
		Body:     lipgloss.NewStyle().Foreground(theme.Foreground),
		Muted:    lipgloss.NewStyle().Foreground(theme.Muted),
		Bold:     lipgloss.NewStyle().Bold(true),

		Success: lipgloss.NewStyle().Foreground(theme.Success).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(theme.Error).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(theme.Warning),
		Info:    lipgloss.NewStyle().Foreground(theme.Info),

		Header: lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Padding(0, 1),
		Prompt: lipgloss.NewStyle().Foreground(theme.Accent),
	}
}

// DefaultStyles returns styles for the detected theme, or fully unstyled
// output when color is disabled.
func DefaultStyles(noColor bool) Styles {
	if noColor {
		return plainStyles()
	}
	return NewStyles(DetectTheme())
}

func plainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:    plain,
		Subtitle: plain,
		Body:     plain,
		Muted:    plain,
		Bold:     plain,
		Success:  plain,
		Error:    plain,
		Warning:  plain,
		Info:     plain,
		Header:   plain,
		Prompt:   plain,
	}
}

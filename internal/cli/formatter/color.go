package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatePill returns a colored indicator for a session state.
func StatePill(state domain.State) string {
	switch state {
	case domain.StateWorking:
		return StyleGreen.Render("● Working")
	case domain.StateOnBreak:
		return StyleYellow.Render("○ On break")
	case domain.StateDayEnded:
		return StyleDim.Render("✔ Day ended")
	case domain.StateNotStarted:
		return StyleDim.Render("○ Not started")
	default:
		return StyleDim.Render(string(state))
	}
}

// BreakBadge returns a colored break-type label.
func BreakBadge(bt domain.BreakType) string {
	switch bt {
	case domain.BreakLunch:
		return StylePurple.Render("Lunch")
	case domain.BreakCoffee:
		return StyleBlue.Render("Coffee")
	default:
		return StyleFg.Render("General")
	}
}

// TrayBadge returns the compact status indicator shown by tray-like
// surfaces.
func TrayBadge(status domain.TrayStatus) string {
	switch status {
	case domain.TrayOvertime:
		return StyleRed.Render("▲ OVERTIME")
	case domain.TrayWorking:
		return StyleGreen.Render("● WORKING")
	case domain.TrayOnBreak:
		return StyleYellow.Render("○ ON BREAK")
	default:
		return StyleDim.Render("○ IDLE")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

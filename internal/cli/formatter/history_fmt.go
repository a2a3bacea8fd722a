package formatter

import (
	"fmt"

	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/timecalc"
)

// FormatHistory renders today's action log as a table. The action with
// revokableID (the newest one) is marked as undoable; pass 0 when
// nothing can be revoked.
func FormatHistory(actions []*domain.Action, revokableID int64) string {
	if len(actions) == 0 {
		return Dim("No actions recorded today.")
	}

	rows := make([][]string, 0, len(actions))
	for _, a := range actions {
		marker := " "
		if a.ID == revokableID {
			marker = StyleYellow.Render("↩")
		}
		rows = append(rows, []string{
			Dim(fmt.Sprintf("%d", a.ID)),
			ClockTime(&a.Timestamp),
			actionLabel(a),
			marker,
		})
	}
	return RenderTable([]string{"#", "TIME", "ACTION", ""}, rows)
}

// FormatBreaks renders the day's break periods, open ones last.
func FormatBreaks(breaks []*domain.BreakPeriod) string {
	if len(breaks) == 0 {
		return Dim("No breaks today.")
	}

	rows := make([][]string, 0, len(breaks))
	for _, bp := range breaks {
		duration := StyleYellow.Render("ongoing")
		if !bp.Open() {
			duration = StyleFg.Render(timecalc.FormatDuration(bp.Seconds()))
		}
		rows = append(rows, []string{
			BreakBadge(bp.BreakType),
			ClockTime(&bp.StartTime),
			ClockTime(bp.EndTime),
			duration,
		})
	}
	return RenderTable([]string{"BREAK", "FROM", "TO", "DURATION"}, rows)
}

func actionLabel(a *domain.Action) string {
	switch a.Type {
	case domain.ActionStartDay:
		return StyleGreen.Render("Start day")
	case domain.ActionStop:
		label := "Stop"
		if a.BreakType != nil {
			return StyleYellow.Render(label) + " " + BreakBadge(*a.BreakType)
		}
		return StyleYellow.Render(label)
	case domain.ActionContinue:
		return StyleGreen.Render("Continue")
	case domain.ActionEndDay:
		return StyleDim.Render("End day")
	default:
		return StyleFg.Render(string(a.Type))
	}
}

package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/service"
	"github.com/alexanderramin/worklog/internal/timecalc"
)

const statusProgressBarWidth = 20

// FormatStatus formats today's session into a styled dashboard string.
func FormatStatus(session *domain.WorkSession, state domain.State, calc domain.TimeCalculation) string {
	var b strings.Builder

	b.WriteString(StatePill(state))
	if session != nil {
		b.WriteString("  " + Dim(session.Date))
	}
	b.WriteString("  " + TrayBadge(domain.TrayStatusFor(state, calc)))
	b.WriteString("\n\n")

	started, ended := Dim("--:--"), Dim("--:--")
	if session != nil {
		started = ClockTime(session.StartTime)
		ended = ClockTime(session.EndTime)
	}
	b.WriteString(fmt.Sprintf("%s %s    %s %s\n\n",
		Dim("Started"), started, Dim("Ended"), ended))

	rows := [][]string{
		{Bold("Work"), StyleFg.Render(timecalc.FormatDuration(calc.TotalWorkSeconds))},
		{Bold("Breaks"), StyleFg.Render(timecalc.FormatDuration(calc.TotalBreakSeconds))},
		{Bold("Productive"), StyleGreen.Render(timecalc.FormatDuration(calc.ProductiveSeconds))},
	}
	if state == domain.StateWorking {
		rows = append(rows, []string{
			Bold("This stretch"),
			StyleBlue.Render(timecalc.FormatDuration(calc.CurrentSessionSeconds)),
		})
	}
	if calc.IsOvertime {
		rows = append(rows, []string{
			Bold("Overtime"),
			StyleRed.Render("+" + timecalc.FormatDuration(calc.OvertimeSeconds)),
		})
	} else {
		rows = append(rows, []string{
			Bold("Remaining"),
			StyleYellow.Render(timecalc.FormatDuration(calc.RemainingSeconds)),
		})
	}
	b.WriteString(RenderTable([]string{"METRIC", "TIME"}, rows))
	b.WriteString("\n")

	normSeconds := calc.WorkNormMinutes * 60
	pct := 0.0
	if normSeconds > 0 {
		pct = float64(calc.ProductiveSeconds) / float64(normSeconds)
	}
	b.WriteString(RenderProgress(pct, statusProgressBarWidth))
	b.WriteString(Dim(fmt.Sprintf("  of %dh%02dm norm\n",
		calc.WorkNormMinutes/60, calc.WorkNormMinutes%60)))

	for _, w := range calc.Warnings {
		b.WriteString("\n" + StyleYellow.Render("  WARNING: "+w))
	}

	return RenderBox("Today", b.String())
}

// FormatCommandResult renders a one-line confirmation followed by a
// compact summary of the resulting state.
func FormatCommandResult(message string, res *service.CommandResult) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render("✔ ") + StyleFg.Render(message) + "\n")
	b.WriteString(StatePill(res.State))

	calc := res.Calculations
	summary := fmt.Sprintf("  productive %s", timecalc.FormatDuration(calc.ProductiveSeconds))
	if calc.IsOvertime {
		summary += fmt.Sprintf(", overtime %s", timecalc.FormatDuration(calc.OvertimeSeconds))
	} else {
		summary += fmt.Sprintf(", remaining %s", timecalc.FormatDuration(calc.RemainingSeconds))
	}
	b.WriteString(Dim(summary))
	return b.String()
}

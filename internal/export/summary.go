package export

import (
	"fmt"
	"strings"

	"github.com/ynaht/ynaht/internal/models"
	"github.com/ynaht/ynaht/internal/timeutil"
)

// SessionSummary renders a plain text end-of-day summary.
func SessionSummary(session *models.DaySession) string {
	totalPlanned := 0
	totalActual := 0
	for _, a := range session.Activities {
		totalPlanned += a.PlannedMinutes
		if a.ActualMinutes != nil {
			totalActual += *a.ActualMinutes
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Daily Summary - %s\n", session.WakeTime.Format("Monday, January 2, 2006"))
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	fmt.Fprintf(&b, "Day: %s - %s\n",
		session.WakeTime.Format("3:04 PM"),
		session.PlannedSleepTime.Format("3:04 PM"))
	fmt.Fprintf(&b, "Total Planned: %s\n", timeutil.FormatMinutes(totalPlanned))

	if session.IsReconciled {
		fmt.Fprintf(&b, "Total Actual: %s\n", timeutil.FormatMinutes(totalActual))
		fmt.Fprintf(&b, "Variance: %s\n", timeutil.FormatMinutes(totalActual-totalPlanned))
	}

	b.WriteString("\nActivities:\n" + strings.Repeat("-", 30) + "\n")
	for _, a := range session.Activities {
		fmt.Fprintf(&b, "- %s [%s]: %s", a.Name, a.CategoryID, timeutil.FormatMinutes(a.PlannedMinutes))
		if a.ActualMinutes != nil {
			fmt.Fprintf(&b, " (actual: %s)", timeutil.FormatMinutes(*a.ActualMinutes))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

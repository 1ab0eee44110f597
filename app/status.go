package app

import (
	"fmt"
	"strings"

	"github.com/parkervanroy/sith/internal/models"
	"github.com/parkervanroy/sith/internal/timeutil"
	"github.com/parkervanroy/sith/internal/ui"
)

func formatStatus(st *models.Status, style timeutil.DisplayStyle) string {
	var s strings.Builder

	row := func(label, value string) {
		fmt.Fprintf(&s, "%-10s %s\n", label+":", value)
	}

	row("State", ui.State(st.Working))
	row("App", st.App)
	row("Session", timeutil.FormatSeconds(st.WorkedSeconds, style))
	row("Today", timeutil.FormatSeconds(st.TodaySeconds, style))
	row("Updated", st.UpdatedAt.Format("15:04:05"))

	return s.String()
}

package timer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/parkervanroy/sith/internal/config"
	"github.com/parkervanroy/sith/internal/detect"
	"github.com/parkervanroy/sith/internal/timeutil"
	"github.com/parkervanroy/sith/stats"
)

const padding = 1

func (t *Timer) styles(cfg *config.Config) (main, hint lipgloss.Style) {
	main = lipgloss.NewStyle().Bold(true)
	hint = lipgloss.NewStyle().Faint(true)

	if t.noColor {
		return main, hint
	}

	color := cfg.Colors.GlassInactive
	if t.snap.Working() {
		color = cfg.Colors.GlassWorking
	}

	return main.Foreground(lipgloss.Color(color)), hint
}

func (t *Timer) statusView(hint lipgloss.Style) string {
	app := t.snap.App
	if app == "" {
		app = detect.Unknown
	}

	return hint.Render(app + " · " + t.snap.State.String())
}

func (t *Timer) summaryView(style timeutil.DisplayStyle) string {
	var s strings.Builder

	day := stats.DayReport{
		Date:  timeutil.DayKey(t.snap.Time),
		Total: t.snap.Today,
		Apps:  t.snap.TodayApps,
	}

	day.Render(&s, style)

	return strings.TrimRight(s.String(), "\n")
}

func (t *Timer) View() string {
	cfg := t.cfg.Current()
	style := timeutil.DisplayStyle(cfg.TimeDisplayStyle)
	main, hint := t.styles(cfg)

	var s strings.Builder

	s.WriteString(main.Render(timeutil.FormatSeconds(t.snap.Worked, style)))

	if cfg.ShowStatusBar {
		s.WriteString("\n" + t.statusView(hint))
	}

	if t.notice != "" {
		s.WriteString("\n" + hint.Render(t.notice))
	}

	if t.showSummary {
		s.WriteString("\n" + t.summaryView(style))
	}

	s.WriteString("\n\n" + t.help.View(defaultKeymap))

	return lipgloss.NewStyle().Padding(padding, padding*2).Render(s.String())
}

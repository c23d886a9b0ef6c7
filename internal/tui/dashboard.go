package tui

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/fittrack/internal/datekey"
	"github.com/sadopc/fittrack/internal/stats"
	"github.com/sadopc/fittrack/internal/tracker"
)

type dashboardModel struct {
	session *tracker.Session
	width   int
	height  int

	bar progress.Model
}

func newDashboardModel(s *tracker.Session) dashboardModel {
	return dashboardModel{
		session: s,
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(30),
		),
	}
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
	barWidth := w/4 - 4
	if barWidth < 10 {
		barWidth = 10
	}
	d.bar.Width = barWidth
}

// The dashboard is read-only; all mutations happen in the other views.
func (d dashboardModel) update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	return d, nil
}

func (d dashboardModel) view() string {
	w := d.width - 4
	rec := d.session.Active()
	key := d.session.Key()

	heading := titleStyle.Render("Daily Overview")
	if key == datekey.Today() {
		heading = lipgloss.JoinHorizontal(lipgloss.Bottom, heading, "  ", successStyle.Render("today"))
	}

	var rows []string
	rows = append(rows, heading, "")
	for i, p := range stats.Metrics(rec) {
		rows = append(rows, d.renderMetric(i, p, metricDetail(rec, p.Name)))
	}

	cards := panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	chart := panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Goal progress (%)"), "", d.renderChart(rec),
	))
	return lipgloss.JoinVertical(lipgloss.Left, cards, chart)
}

func (d dashboardModel) renderMetric(i int, p stats.Progress, detail string) string {
	name := lipgloss.NewStyle().Width(10).Bold(true).Foreground(metricColors[i%len(metricColors)]).Render(p.Name)
	value := lipgloss.NewStyle().Width(22).Render(
		fmt.Sprintf("%s / %s %s", formatHours(p.Value), formatHours(p.Goal), p.Unit),
	)
	pct := lipgloss.NewStyle().Width(6).Align(lipgloss.Right).Render(fmt.Sprintf("%.0f%%", p.Percent()))
	return fmt.Sprintf("  %s %s %s %s  %s", name, value, d.bar.ViewAs(max(0, p.Percent())/100), pct, mutedStyle.Render(detail))
}

func metricDetail(rec stats.DailyRecord, name string) string {
	switch name {
	case "Calories":
		return fmt.Sprintf("%d burned • %d remaining", rec.Calories.Burned, stats.CaloriesRemaining(rec))
	case "Water":
		return fmt.Sprintf("%d more to go", stats.WaterRemaining(rec))
	case "Steps":
		return fmt.Sprintf("%d%% of daily goal", stats.StepsPercentRounded(rec))
	case "Sleep":
		return fmt.Sprintf("Quality: %d/10", rec.Sleep.Quality)
	case "Workouts":
		return fmt.Sprintf("%d of %d completed", rec.Workouts.Completed, rec.Workouts.Goal)
	}
	return ""
}

func (d dashboardModel) renderChart(rec stats.DailyRecord) string {
	chartWidth := d.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if d.height > 36 {
		chartHeight = 14
	}

	chart := barchart.New(chartWidth, chartHeight)
	var bars []barchart.BarData
	for i, p := range stats.Metrics(rec) {
		style := lipgloss.NewStyle().Foreground(metricColors[i%len(metricColors)])
		bars = append(bars, barchart.BarData{
			Label:  p.Name,
			Values: []barchart.BarValue{{Name: p.Name, Value: max(0, p.Percent()), Style: style}},
		})
	}
	chart.PushAll(bars)
	chart.Draw()
	return chart.View()
}

package main

import (
	"fmt"
	"strings"

	"github.com/2beens/fittracker/internal/activities"
	"github.com/2beens/fittracker/internal/analytics"
	"github.com/2beens/fittracker/internal/profile"
	"github.com/2beens/fittracker/internal/water"

	"github.com/charmbracelet/lipgloss"
)

const barWidth = 24

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4A90E2"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#04B575")).
		Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F7DC6F"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#874BFD")).
			Padding(0, 1)
)

func renderActivities(list []activities.Activity) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-14s %-10s %-16s %6s %8s %6s", "ID", "DATE", "ACTIVITY", "MIN", "KM", "KCAL")))
	for _, a := range list {
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%-14s %-10s %-16s %6d %8.2f %6d", a.ID, a.Date, a.Activity, a.Duration, a.Distance, a.Calories))
		if a.Notes != "" {
			b.WriteString("\n")
			b.WriteString(mutedStyle.Render("  " + a.Notes))
		}
	}
	return b.String()
}

func renderSummary(s analytics.Summary) string {
	totals := strings.Join([]string{
		titleStyle.Render("Totals"),
		fmt.Sprintf("activities  %d", s.Totals.Count),
		fmt.Sprintf("duration    %s", s.Totals.DurationLabel),
		fmt.Sprintf("distance    %s", s.Totals.DistanceLabel),
		fmt.Sprintf("calories    %d", s.Totals.Calories),
	}, "\n")

	breakdown := []string{titleStyle.Render(s.DatasetLabel)}
	maxMinutes := 0
	for _, td := range s.Breakdown {
		maxMinutes = max(maxMinutes, td.DurationMinutes)
	}
	for _, td := range s.Breakdown {
		width := 0
		if maxMinutes > 0 {
			width = td.DurationMinutes * barWidth / maxMinutes
		}
		breakdown = append(breakdown, fmt.Sprintf("%-14s %s %d",
			td.Activity, progressStyle.Render(strings.Repeat("█", width)), td.DurationMinutes))
	}
	if len(s.Breakdown) == 0 {
		breakdown = append(breakdown, mutedStyle.Render("nothing logged"))
	}

	w := s.Weekly
	weekly := strings.Join([]string{
		titleStyle.Render(fmt.Sprintf("Week %s .. %s", w.From, w.To)),
		progressLine("duration", w.DurationPercentage, w.DurationLabel),
		progressLine("distance", w.DistancePercentage, w.DistanceLabel),
		progressLine("calories", w.CaloriesPercentage, w.CaloriesLabel),
	}, "\n")

	return lipgloss.JoinVertical(lipgloss.Left,
		boxStyle.Render(totals),
		boxStyle.Render(strings.Join(breakdown, "\n")),
		boxStyle.Render(weekly),
	)
}

func progressLine(name string, pct float64, label string) string {
	filled := int(pct / 100 * barWidth)
	bar := progressStyle.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", barWidth-filled))
	return fmt.Sprintf("%-9s %s %3.0f%% %s", name, bar, pct, label)
}

func renderWater(intake water.Intake) string {
	return boxStyle.Render(fmt.Sprintf("%s\n%s  %d glasses",
		titleStyle.Render("Water"), intake.Date, intake.Count))
}

func renderProfile(p profile.Profile, view profile.View) string {
	name := p.Name
	if name == "" {
		name = mutedStyle.Render("(no name)")
	}
	return boxStyle.Render(strings.Join([]string{
		titleStyle.Render("Profile"),
		fmt.Sprintf("name    %s", name),
		fmt.Sprintf("weight  %g kg", p.Weight),
		fmt.Sprintf("height  %g cm", p.Height),
		fmt.Sprintf("BMI     %s", view.ValueLabel),
	}, "\n"))
}

func renderBMI(view profile.View) string {
	if !view.Available {
		return boxStyle.Render(fmt.Sprintf("%s\n%s\n%s",
			titleStyle.Render("BMI"), view.ValueLabel, mutedStyle.Render(view.Category)))
	}
	return boxStyle.Render(fmt.Sprintf("%s\n%s  %s",
		titleStyle.Render("BMI"), view.ValueLabel, okStyle.Render(view.Category)))
}

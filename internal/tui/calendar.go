package tui

import (
	"strconv"
	"time"

	lipgloss "charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

var weekdays = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// monthGrid returns the weeks of t's month as rows of seven cells,
// Monday first. Days outside the month are empty.
func monthGrid(t time.Time) [][]string {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	days := first.AddDate(0, 1, -1).Day()
	lead := (int(first.Weekday()) + 6) % 7

	var (
		rows [][]string
		week = make([]string, 7)
	)
	col := lead
	for day := 1; day <= days; day++ {
		week[col] = strconv.Itoa(day)
		col++
		if col == 7 {
			rows = append(rows, week)
			week = make([]string, 7)
			col = 0
		}
	}
	if col > 0 {
		rows = append(rows, week)
	}
	return rows
}

// Calendar renders the month around now with today highlighted. It is
// the content of the top drawer.
func Calendar(now time.Time) string {
	rows := monthGrid(now)
	today := strconv.Itoa(now.Day())

	cell := lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderHeader(false).
		Headers(weekdays...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return cell.Foreground(colorBlue).Bold(true)
			case rows[row][col] == today:
				return cell.Background(colorOrange).Foreground(colorInk).Bold(true)
			case col >= 5:
				return cell.Foreground(colorGray)
			default:
				return cell.Foreground(colorWhite)
			}
		})

	title := calendarTitleStyle.Render(now.Format("January 2006") + "  " + now.Format("15:04"))
	return calendarStyle.Render(lipgloss.JoinVertical(lipgloss.Center, title, t.Render()))
}

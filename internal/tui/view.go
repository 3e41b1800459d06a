package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/loggr/internal/session"
	"github.com/jask/loggr/internal/timesheet"
)

const (
	minPaneWidth   = 24
	projectsShare  = 3 // projects pane gets 1/projectsShare of the width
	popupMinWidth  = 36
	addPromptLabel = "Enter new project name:"
)

func (a *App) View() string {
	snap := a.sess.Snapshot()
	if snap.Mode == session.ModeExiting {
		return ""
	}
	a.keys.mode = snap.Mode

	header := titleStyle.Render("Loggr")
	footer := a.help.View(a.keys)
	status := renderStatus(snap)

	var body string
	if snap.Mode == session.ModeProjectAdding {
		body = a.renderAddPopup(snap, a.bodyHeight(header, footer, status))
	} else {
		body = a.renderPanes(snap)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status, footer)
}

func (a *App) bodyHeight(parts ...string) int {
	used := 0
	for _, p := range parts {
		used += lipgloss.Height(p)
	}
	return max(a.height-used, 5)
}

func (a *App) renderPanes(snap session.Snapshot) string {
	leftW, rightW := minPaneWidth, minPaneWidth*2
	if a.width > 0 {
		leftW = max(a.width/projectsShare, minPaneWidth)
		rightW = max(a.width-leftW, minPaneWidth)
	}
	frame := paneStyle.GetHorizontalFrameSize()

	left := paneStyle
	right := paneStyle
	switch snap.Mode {
	case session.ModeProjectList:
		left = focusedPaneStyle
	case session.ModeMain:
		right = focusedPaneStyle
	}
	projects := left.Width(leftW - frame).Render(renderProjects(snap))
	entries := right.Width(rightW - frame).Render(a.renderEntries(snap))
	return lipgloss.JoinHorizontal(lipgloss.Top, projects, entries)
}

func renderProjects(snap session.Snapshot) string {
	var b strings.Builder
	b.WriteString(paneTitleStyle.Render("Projects"))
	if len(snap.Projects) == 0 {
		b.WriteString("\n" + mutedStyle.Render("no projects, press a to add"))
		return b.String()
	}
	for i, name := range snap.Projects {
		marker := "  "
		if i == snap.HighlightedProject {
			marker = cursorStyle.Render("> ")
		}
		label := name
		if i == snap.SelectedProject {
			label = selectedStyle.Render(name)
		}
		b.WriteString("\n" + marker + label)
	}
	return b.String()
}

func (a *App) renderEntries(snap session.Snapshot) string {
	var b strings.Builder
	if !snap.Loaded {
		b.WriteString(paneTitleStyle.Render("Entries"))
		b.WriteString("\n" + mutedStyle.Render("no project loaded"))
		return b.String()
	}
	b.WriteString(paneTitleStyle.Render("Entries: " + snap.LoadedName))
	if len(snap.Entries) == 0 {
		b.WriteString("\n" + mutedStyle.Render("no entries, press c in projects to clock in"))
		return b.String()
	}

	for i, e := range snap.Entries {
		marker := "  "
		if i == snap.HighlightedEntry && snap.Mode == session.ModeMain {
			marker = cursorStyle.Render("> ")
		}
		b.WriteString("\n" + marker + entryRow(e, a.clock))
	}
	b.WriteString("\n" + totalStyle.Render("total "+timesheet.FormatDuration(timesheet.Timesheet{Entries: snap.Entries}.Total(a.clock))))
	return b.String()
}

func entryRow(e timesheet.Entry, clock timesheet.Clock) string {
	row := fmt.Sprintf("%s, %s, %s", e.Date, e.TimeIn, e.TimeOut)
	if e.Open() {
		return row + "  " + openStyle.Render("(open)")
	}
	if d, ok := e.Duration(clock); ok {
		row += "  " + mutedStyle.Render(timesheet.FormatDuration(d))
	}
	return row
}

func (a *App) renderAddPopup(snap session.Snapshot, height int) string {
	content := addPromptLabel + "\n\n" + inputStyle.Render(snap.Input+"_")
	box := popupStyle.Width(max(popupMinWidth, lipgloss.Width(snap.Input)+4)).Render(content)
	width := a.width
	if width == 0 {
		width = lipgloss.Width(box)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

func renderStatus(snap session.Snapshot) string {
	if snap.StatusErr {
		return statusErrStyle.Render(snap.Status)
	}
	return statusStyle.Render(snap.Status)
}

package controller

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// reportDelegate renders one report per list row.
type reportDelegate struct {
	offset int
}

func (d reportDelegate) Height() int  { return 1 }
func (d reportDelegate) Spacing() int { return 0 }
func (d reportDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d reportDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	result, ok := item.(reportItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()
	fileWidth := m.Width() - 44 // status, line and kind columns plus spacing

	statusStyle, lineStyle, kindStyle, fileStyle := d.styles(result, isSelected)

	displayFile := truncateText(result.path, fileWidth)
	if isSelected {
		displayFile = animateScroll(result.path, fileWidth, d.offset)
	}

	line := fmt.Sprintf("%s  %s  %s  %s",
		statusStyle.Render(result.status),
		lineStyle.Render(result.lineText()),
		kindStyle.Render(truncateText(result.kind, 30)),
		fileStyle.Render(displayFile),
	)
	_, _ = fmt.Fprint(w, line)
}

func (d reportDelegate) styles(result reportItem, isSelected bool) (lipgloss.Style, lipgloss.Style, lipgloss.Style, lipgloss.Style) {
	if isSelected {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)

		return selected.Width(8).Align(lipgloss.Left),
			selected.Width(5).Align(lipgloss.Right),
			selected.Width(30).Align(lipgloss.Left),
			selected
	}

	statusColorMap := map[string]lipgloss.Color{
		"ok":       lipgloss.Color("2"), // Green
		"rejected": lipgloss.Color("1"), // Red
		"failed":   lipgloss.Color("3"), // Yellow
	}

	statusColor, ok := statusColorMap[result.status]
	if !ok {
		statusColor = lipgloss.Color("8")
	}

	return lipgloss.NewStyle().Foreground(statusColor).Bold(true).Width(8).Align(lipgloss.Left),
		lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Width(5).Align(lipgloss.Right),
		lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Width(30).Align(lipgloss.Left),
		lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
}

// checkModel shows live progress of a batch check and, once every source is
// verified (or saved reports are loaded), a browsable result list.
type checkModel struct {
	width           int
	height          int
	progressBar     progress.Model
	totalSources    int
	completedCount  int
	progressPercent float64
	threads         int
	shardIndex      int
	totalShards     int
	threadFiles     map[int]string
	viewing         bool
	rendered        bool
	finished        bool
	results         []reportItem
	resultsList     list.Model
	delegate        reportDelegate
	animOffset      int
	lastSelected    int
	showDetail      bool
}

func newCheckModel() checkModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	delegate := reportDelegate{}
	resultsList := list.New([]list.Item{}, delegate, 80, 20)
	resultsList.SetShowPagination(false)
	resultsList.SetShowFilter(true)
	resultsList.SetShowHelp(false)
	resultsList.SetShowTitle(false)
	resultsList.SetShowStatusBar(false)
	resultsList.FilterInput.Placeholder = "Filter results…"

	return checkModel{
		width:        80,
		height:       24,
		progressBar:  prog,
		resultsList:  resultsList,
		delegate:     delegate,
		threadFiles:  make(map[int]string),
		lastSelected: -1,
	}
}

func (m checkModel) Init() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m checkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.handleWindowSize(msg)

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)

	case tickMsg:
		return m.handleTickMsg(msg)

	case concurrencyMsg:
		m.threads = msg.threads
		m.shardIndex = msg.shardIndex
		m.totalShards = msg.shards
		m.progressPercent = 0

	case upcomingMsg:
		m.totalSources = msg.count
		m.completedCount = 0
		m.progressPercent = 0
		m.rendered = true
		m.finished = msg.count == 0

	case startedMsg:
		m.threadFiles[msg.thread] = msg.path
		m.rendered = true

	case completedMsg:
		m = m.handleCompleted(msg)

	case reportsMsg:
		m = m.handleReports(msg)
	}

	return m, cmd
}

func (m checkModel) View() string {
	if !m.rendered {
		if m.viewing {
			return "Loading reports…\n"
		}

		return "Initializing…\n"
	}

	if m.finished {
		return m.viewResults()
	}

	return m.viewProgress()
}

var (
	accentColor  = lipgloss.Color("6")
	accentStyle  = lipgloss.NewStyle().Foreground(accentColor)
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(1, 0, 0, 2)
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 0, 1, 2)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Align(lipgloss.Center)
)

// frame stacks the title, a summary line of "label: value" pairs, the body
// and a key hint.
func (m checkModel) frame(title string, pairs [][2]string, body []string, hint string) string {
	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, p[0]+": "+accentStyle.Render(p[1]))
	}

	rows := []string{
		titleStyle.Render(title),
		summaryStyle.Render(strings.Join(parts, "  •  ")),
	}
	rows = append(rows, body...)
	rows = append(rows, hintStyle.Width(m.width).Render(hint))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m checkModel) viewProgress() string {
	pairs := [][2]string{
		{"Progress", fmt.Sprintf("%d / %d", m.completedCount, m.totalSources)},
		{"Threads", strconv.Itoa(m.threads)},
		{"Shard", fmt.Sprintf("%d / %d", m.shardIndex, m.totalShards)},
	}

	bar := lipgloss.NewStyle().Padding(0, 2).Render(m.progressBar.ViewAs(m.progressPercent))

	return m.frame("sjavac check", pairs, []string{bar, m.renderThreadBox()}, "Press q to quit")
}

// renderThreadBox lists the file each worker is verifying. Labels are only
// shown when more than one worker runs.
func (m checkModel) renderThreadBox() string {
	inner := m.width - 8 // box margin, border and padding

	label := func(int) string { return "" }
	if m.threads > 1 {
		digits := len(strconv.Itoa(m.threads - 1))
		label = func(i int) string { return fmt.Sprintf("Thread %*d: ", digits, i) }
	}

	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	rows := make([]string, 0, m.threads)
	for i := 0; i < m.threads; i++ {
		prefix := label(i)

		state := "idle"
		if path, busy := m.threadFiles[i]; busy && path != "" {
			state = pathStyle.Render(truncateText(path, max(inner-len(prefix), 10)))
		}

		rows = append(rows, prefix+state)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1).
		Margin(1, 1, 1, 0).
		Width(m.width - 4).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m checkModel) viewResults() string {
	pairs := [][2]string{
		{"Total", strconv.Itoa(len(m.results))},
		{"Accepted", strconv.Itoa(m.countStatus("ok"))},
		{"Rejected", strconv.Itoa(m.countStatus("rejected"))},
		{"Failed", strconv.Itoa(m.countStatus("failed"))},
	}

	return m.frame("sjavac results", pairs, []string{m.renderResultsBox()},
		"↑/k up • ↓/j down • / filter • enter/space details • q quit")
}

func (m checkModel) renderResultsBox() string {
	listWidth := m.width - 4
	detail := m.renderDetailBox(listWidth)

	listHeight := m.height - 9 - lipgloss.Height(detail)
	if detail == "" {
		listHeight = m.height - 9
	}

	if listHeight < 5 {
		listHeight = 5
	}

	m.resultsList.SetHeight(listHeight)
	m.resultsList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-8s  %5s  %-30s  %s", "Status", "Line", "Violation", "File"))

	resultsBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, headers, m.resultsList.View()))

	if detail == "" {
		return resultsBox
	}

	return lipgloss.JoinVertical(lipgloss.Left, resultsBox, detail)
}

func (m checkModel) renderDetailBox(width int) string {
	if !m.showDetail {
		return ""
	}

	result, ok := m.resultsList.SelectedItem().(reportItem)
	if !ok || strings.TrimSpace(result.message) == "" {
		return ""
	}

	contentWidth := max(width-4, 10)

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Render(truncateText(fmt.Sprintf("%s:%s", result.path, result.lineText()), contentWidth))

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("9")).
		Width(contentWidth).
		Render(result.message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

func (m checkModel) countStatus(status string) int {
	count := 0

	for _, result := range m.results {
		if result.status == status {
			count++
		}
	}

	return count
}

func (m checkModel) handleCompleted(msg completedMsg) checkModel {
	m.completedCount++
	m.results = append(m.results, newReportItem(msg.report))
	m = m.syncItems()

	for thread, file := range m.threadFiles {
		if file == string(msg.report.Source.Path()) {
			delete(m.threadFiles, thread)
		}
	}

	if m.totalSources > 0 {
		m.progressPercent = float64(m.completedCount) / float64(m.totalSources)
		if m.completedCount >= m.totalSources {
			m.finished = true
		}
	}

	return m
}

func (m checkModel) handleReports(msg reportsMsg) checkModel {
	m.results = make([]reportItem, 0, len(msg.reports))
	for _, report := range msg.reports {
		m.results = append(m.results, newReportItem(report))
	}

	m.totalSources = len(m.results)
	m.completedCount = len(m.results)
	m.progressPercent = 1
	m.rendered = true
	m.finished = true

	return m.syncItems()
}

func (m checkModel) syncItems() checkModel {
	items := make([]list.Item, 0, len(m.results))
	for _, r := range m.results {
		items = append(items, r)
	}

	m.resultsList.SetItems(items)

	return m
}

func (m checkModel) handleKeyMsg(msg tea.KeyMsg) (checkModel, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	}

	if !m.finished {
		return m, nil
	}

	if m.resultsList.FilterState() != list.Filtering && (msg.String() == "enter" || msg.String() == " ") {
		m.showDetail = !m.showDetail
		return m, nil
	}

	var cmd tea.Cmd

	m.resultsList, cmd = m.resultsList.Update(msg)

	if m.resultsList.Index() != m.lastSelected {
		m.lastSelected = m.resultsList.Index()
		m.animOffset = 0
		m.delegate.offset = 0
		m.resultsList.SetDelegate(m.delegate)
		m.showDetail = false
	}

	return m, cmd
}

func (m checkModel) handleWindowSize(msg tea.WindowSizeMsg) checkModel {
	m.width = max(msg.Width, 40)
	m.height = max(msg.Height, 10)

	m.progressBar.Width = max(m.width-8, 20)

	return m
}

func (m checkModel) handleTickMsg(_ tickMsg) (checkModel, tea.Cmd) {
	if m.finished && m.resultsList.FilterState() != list.Filtering {
		m.animOffset++
		m.delegate.offset = m.animOffset
		m.resultsList.SetDelegate(m.delegate)
	}

	return m, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// animateScroll returns a width-wide window of text that scrolls one rune per
// tick after a short pause, or text itself when it fits.
func animateScroll(text string, width int, offset int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const (
		gap   = "   "
		pause = 5
	)

	if offset < pause {
		return truncateText(text, width)
	}

	runes := []rune(text + gap)
	n := len(runes)
	start := (offset - pause) % n

	res := make([]rune, 0, width)
	for i := 0; i < width; i++ {
		res = append(res, runes[(start+i)%n])
	}

	return string(res)
}

func truncateText(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

package controller

import (
	"strconv"
	"time"

	m "github.com/mouse-blink/sjavac/internal/model"
)

// Message types.
type tickMsg time.Time

type upcomingMsg struct {
	count int
}

type startedMsg struct {
	thread int
	path   string
}

type completedMsg struct {
	report m.Report
}

type reportsMsg struct {
	reports []m.Report
}

type concurrencyMsg struct {
	threads    int
	shardIndex int
	shards     int
}

// List item types.
type reportItem struct {
	path    string
	status  string
	line    int
	kind    string
	message string
}

func newReportItem(report m.Report) reportItem {
	return reportItem{
		path:    string(report.Source.Path()),
		status:  formatStatus(report.Status()),
		line:    report.Line,
		kind:    report.Kind,
		message: report.Message,
	}
}

func (r reportItem) FilterValue() string {
	return r.path + " " + r.status + " " + r.kind
}

func (r reportItem) lineText() string {
	if r.line <= 0 {
		return "-"
	}

	return strconv.Itoa(r.line)
}

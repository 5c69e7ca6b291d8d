package controller

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/sjavac/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command

	out      sync.Mutex
	mu       sync.Mutex
	mode     StartMode
	reports  []m.Report
	upcoming int
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.mode = cfg.mode
	s.reports = nil
	s.upcoming = 0

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait prints the summary table of a finished check. It returns immediately
// in view mode.
func (s *SimpleUI) Wait() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != ModeCheck || s.upcoming == 0 {
		return
	}

	s.renderTable(s.reports)
}

// DisplayConcurrencyInfo shows concurrency settings.
func (s *SimpleUI) DisplayConcurrencyInfo(threads int, shardIndex int, shardCount int) {
	s.printf("Running %d worker(s), shard %d/%d\n", threads, shardIndex, shardCount)
}

// DisplayUpcomingCount shows the number of sources about to be verified.
func (s *SimpleUI) DisplayUpcomingCount(count int) {
	s.mu.Lock()
	s.upcoming = count
	s.mu.Unlock()

	s.printf("Sources to verify: %d\n", count)
}

// DisplayStarted is silent in plain output.
func (s *SimpleUI) DisplayStarted(_ m.Source, _ int) {}

// DisplayCompleted prints one line per verified source.
func (s *SimpleUI) DisplayCompleted(report m.Report) {
	s.mu.Lock()
	s.reports = append(s.reports, report)
	s.mu.Unlock()

	if report.Code == 0 {
		s.printf("%-8s %s\n", formatStatus(report.Status()), report.Source.Path())
		return
	}

	s.printf("%-8s %s: %s\n", formatStatus(report.Status()), location(report), report.Message)
}

// DisplayReports prints saved reports as a table.
func (s *SimpleUI) DisplayReports(reports []m.Report) error {
	if len(reports) == 0 {
		s.printf("No reports found\n")
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.renderTable(reports)

	return nil
}

func (s *SimpleUI) renderTable(reports []m.Report) {
	sorted := make([]m.Report, len(reports))
	copy(sorted, reports)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Source.Path() < sorted[j].Source.Path()
	})

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Status", "Line", "Violation"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})

	counts := make(map[m.Status]int)

	for _, report := range sorted {
		counts[report.Status()]++

		line := ""
		if report.Line > 0 {
			line = strconv.Itoa(report.Line)
		}

		table.Append([]string{string(report.Source.Path()), formatStatus(report.Status()), line, report.Kind})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(sorted)),
		fmt.Sprintf("%d accepted", counts[m.Accepted]),
		"",
		fmt.Sprintf("%d rejected %d failed", counts[m.Rejected], counts[m.Failed]),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.out.Lock()
	defer s.out.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func formatStatus(status m.Status) string {
	switch status {
	case m.Accepted:
		return "ok"
	case m.Rejected:
		return "rejected"
	default:
		return "failed"
	}
}

func location(report m.Report) string {
	if report.Line > 0 {
		return fmt.Sprintf("%s:%d", report.Source.Path(), report.Line)
	}

	return string(report.Source.Path())
}

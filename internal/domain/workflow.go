// Package domain wires the verification core to sources on disk: single-file
// verification, parallel batch checking and saved-report viewing.
package domain

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/sjavac/internal/adapter"
	"github.com/mouse-blink/sjavac/internal/controller"
	"github.com/mouse-blink/sjavac/internal/diag"
	m "github.com/mouse-blink/sjavac/internal/model"
)

var log = commonlog.GetLogger("sjavac.domain")

var (
	// ErrRejected is returned by Check when at least one source was not accepted.
	ErrRejected = errors.New("one or more sources were not accepted")
	// ErrWrongExtension marks a path that does not carry the .sjava extension.
	ErrWrongExtension = errors.New("source file must have the " + m.SourceExt + " extension")
)

// CheckArgs configures a batch run.
type CheckArgs struct {
	Paths           []m.Path
	Exclude         []string
	Threads         int
	ShardIndex      int
	TotalShardCount int
	// Reports is the directory reports are saved to; empty disables saving.
	Reports m.Path
}

// ViewArgs configures report viewing.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the verification use cases exposed to the CLI.
type Workflow interface {
	Verify(path m.Path) m.Report
	Check(args CheckArgs) error
	View(args ViewArgs) error
}

type workflow struct {
	fsAdapter   adapter.SourceFSAdapter
	reportStore adapter.ReportStore
	ui          controller.UI
	checker     Checker
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	checker Checker,
) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		reportStore: reportStore,
		ui:          ui,
		checker:     checker,
	}
}

// Verify checks a single file. A path without the .sjava extension is an I/O
// failure and never reaches the checker.
func (w *workflow) Verify(path m.Path) m.Report {
	source := m.Source{Origin: &m.File{Path: path}}

	if filepath.Ext(string(path)) != m.SourceExt {
		return m.Report{
			Source:  source,
			Code:    diag.CodeIOFailure,
			Message: fmt.Sprintf("%s: %v", path, ErrWrongExtension),
		}
	}

	report := w.checker.Check(source)
	log.Debugf("verified %s: code %d", path, report.Code)

	return report
}

// Check verifies every selected source of the shard in parallel, streaming
// progress to the UI, and persists the reports when a directory is set.
func (w *workflow) Check(args CheckArgs) error {
	sources, err := w.fsAdapter.Get(args.Paths)
	if err != nil {
		return fmt.Errorf("get sources: %w", err)
	}

	rule, err := parseExcludeRule(args.Exclude)
	if err != nil {
		return err
	}

	sources = shardSources(rule.filter(sources), args.ShardIndex, args.TotalShardCount)

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	log.Infof("checking %d source(s) with %d worker(s)", len(sources), threads)

	if err := w.ui.Start(controller.WithCheckMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}

	defer w.ui.Close()

	index, total := normalizeShard(args.ShardIndex, args.TotalShardCount)
	w.ui.DisplayConcurrencyInfo(threads, index, total)
	w.ui.DisplayUpcomingCount(len(sources))

	reports := w.checkAll(sources, threads)

	if args.Reports != "" {
		if err := w.saveReports(args.Reports, sources, reports); err != nil {
			return err
		}
	}

	w.ui.Wait()

	for _, report := range reports {
		if report.Code != diag.CodeAccepted {
			return ErrRejected
		}
	}

	return nil
}

func (w *workflow) checkAll(sources []m.Source, threads int) []m.Report {
	reports := make([]m.Report, len(sources))

	jobs := make(chan int, len(sources))
	for i := range sources {
		jobs <- i
	}

	close(jobs)

	var g errgroup.Group
	g.SetLimit(threads)

	for thread := 0; thread < threads; thread++ {
		thread := thread

		g.Go(func() error {
			for i := range jobs {
				w.ui.DisplayStarted(sources[i], thread)

				report := w.checker.Check(sources[i])
				if report.Code != diag.CodeAccepted {
					log.Debugf("%s: %s", sources[i].Path(), report.Message)
				}

				reports[i] = report

				w.ui.DisplayCompleted(report)
			}

			return nil
		})
	}

	_ = g.Wait()

	return reports
}

func (w *workflow) saveReports(dir m.Path, sources []m.Source, reports []m.Report) error {
	if err := w.reportStore.CleanReports(dir, sources); err != nil {
		return fmt.Errorf("clean reports: %w", err)
	}

	if err := w.reportStore.SaveReports(dir, reports); err != nil {
		return fmt.Errorf("save reports: %w", err)
	}

	if err := w.reportStore.RegenerateIndex(dir); err != nil {
		return fmt.Errorf("regenerate index: %w", err)
	}

	return nil
}

// View loads previously saved reports and displays them.
func (w *workflow) View(args ViewArgs) error {
	reports, err := w.reportStore.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	if err := w.ui.Start(controller.WithViewMode()); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}

	defer w.ui.Close()

	if err := w.ui.DisplayReports(reports); err != nil {
		return fmt.Errorf("display reports: %w", err)
	}

	w.ui.Wait()

	return nil
}

func normalizeShard(index, total int) (int, int) {
	if total <= 0 || index < 0 || index >= total {
		return 0, 1
	}

	return index, total
}

// shardSources keeps every total-th source starting at index.
func shardSources(sources []m.Source, index, total int) []m.Source {
	index, total = normalizeShard(index, total)
	if total == 1 {
		return sources
	}

	shard := make([]m.Source, 0, len(sources)/total+1)

	for i, source := range sources {
		if i%total == index {
			shard = append(shard, source)
		}
	}

	return shard
}

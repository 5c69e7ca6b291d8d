// Package cmd provides the root command and CLI setup for sjavac.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	"github.com/mouse-blink/sjavac/internal/adapter"
	"github.com/mouse-blink/sjavac/internal/controller"
	"github.com/mouse-blink/sjavac/internal/diag"
	"github.com/mouse-blink/sjavac/internal/domain"
	m "github.com/mouse-blink/sjavac/internal/model"
)

// version is overridden at build time with -ldflags "-X".
var version = "dev"

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var checker domain.Checker
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	checker = domain.NewChecker(fsAdapter)
	workflow = domain.NewWorkflow(
		fsAdapter,
		reportStore,
		ui,
		checker,
	)
}

var verboseFlag int
var reportsOutputDirFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

// exitCodeError carries a process exit code out of a command. Its output has
// already been written.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sjavac FILE.sjava",
		Short: "S-Java verifier",
		Long: `sjavac verifies that an S-Java program is legal. It prints 0 when the
program is accepted, 1 when it is rejected and 2 on I/O problems, and
exits with the same code. The reason for a rejection is printed on stderr.

Use "sjavac check" to verify many files at once.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			commonlog.Configure(verboseFlag, nil)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return verifyFile(cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}
	cmd.PersistentFlags().CountVarP(&verboseFlag, "verbose", "v", "increase log verbosity (can be repeated)")
	cmd.PersistentFlags().StringVarP(&reportsOutputDirFlag, "output", "o", ".sjavac-reports", "reports directory")

	return cmd
}

func verifyFile(stdout, stderr io.Writer, args []string) error {
	if len(args) != 1 {
		_, _ = fmt.Fprintln(stdout, diag.CodeIOFailure)
		_, _ = fmt.Fprintln(stderr, "usage: sjavac FILE.sjava")

		return &exitCodeError{code: diag.CodeIOFailure}
	}

	report := workflow.Verify(m.Path(args[0]))

	_, _ = fmt.Fprintln(stdout, report.Code)

	if report.Message != "" {
		if report.Line > 0 {
			_, _ = fmt.Fprintf(stderr, "%s:%d: %s\n", report.Source.Path(), report.Line, report.Message)
		} else {
			_, _ = fmt.Fprintln(stderr, report.Message)
		}
	}

	if report.Code != diag.CodeAccepted {
		return &exitCodeError{code: report.Code}
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	os.Exit(exitCode(os.Stderr, err))
}

func exitCode(stderr io.Writer, err error) int {
	var exitErr *exitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}

	_, _ = fmt.Fprintln(stderr, "Error:", err)

	return diag.CodeIOFailure
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"./..."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func parseShardFlag(shard string) (int, int) {
	if shard == "" {
		return 0, 1
	}

	var index, total int

	_, err := fmt.Sscanf(shard, "%d/%d", &index, &total)
	if err != nil || total <= 0 || index < 0 || index >= total {
		return 0, 1
	}

	return index, total
}

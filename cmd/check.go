package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/sjavac/internal/diag"
	"github.com/mouse-blink/sjavac/internal/domain"
	m "github.com/mouse-blink/sjavac/internal/model"
)

const checkLongDescription = `Verify every .sjava file under the given paths and save one report per file.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./a ./b        scan multiple directories
  - prog.sjava     a single file

Exits with 1 when any file is rejected.`

var checkParallelFlag int
var checkShardFlag string
var checkExcludeFlags []string

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Verify many S-Java files",
		Long:  checkLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			shardIndex, totalShards := parseShardFlag(checkShardFlag)

			err := workflow.Check(domain.CheckArgs{
				Paths:           parsePaths(args),
				Exclude:         checkExcludeFlags,
				Threads:         checkParallelFlag,
				ShardIndex:      shardIndex,
				TotalShardCount: totalShards,
				Reports:         m.Path(reportsOutputDirFlag),
			})
			if errors.Is(err, domain.ErrRejected) {
				return &exitCodeError{code: diag.CodeRejected}
			}

			return err
		},
	}
	cmd.Flags().IntVarP(&checkParallelFlag, "parallel", "p", 1, "number of parallel verification workers")
	cmd.Flags().StringVarP(&checkShardFlag, "shard", "s", "", "shard index and total shard count in the format INDEX/TOTAL (e.g., 0/3)")
	cmd.Flags().StringArrayVarP(&checkExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

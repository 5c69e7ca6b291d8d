package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/sjavac/internal/lsp"
)

type stdioServer interface {
	RunStdio() error
}

var newLanguageServer = func() stdioServer {
	return lsp.NewServer(version, fsAdapter)
}

// lspCmd represents the lsp command.
var lspCmd = newLspCmd()

func newLspCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Run the S-Java language server on stdio",
		Long:  "Run a language server that reports the first violation of every open .sjava document.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return newLanguageServer().RunStdio()
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(lspCmd)
}

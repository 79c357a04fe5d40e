package cmd

import (
	"github.com/itsmostafa/rpncalc/internal/loop"
	"github.com/itsmostafa/rpncalc/internal/source"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read commands interactively",
	Long:  `Read commands from standard input until 'exit' or end of input.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := newLoopConfig(cmd)
		cfg.Source = source.Stdin{Reader: cmd.InOrStdin()}
		_, err := loop.Run(cmd.Context(), cfg)
		return err
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

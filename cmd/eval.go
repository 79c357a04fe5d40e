package cmd

import (
	"github.com/itsmostafa/rpncalc/internal/loop"
	"github.com/itsmostafa/rpncalc/internal/source"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <line>...",
	Short: "Run commands given as arguments",
	Long: `Run each argument as one command line, e.g.

  rpncalc eval "PUSH 3" "PUSH 4" + PRINT`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := newLoopConfig(cmd)
		cfg.Source = source.Lines(args)
		_, err := loop.Run(cmd.Context(), cfg)
		return err
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

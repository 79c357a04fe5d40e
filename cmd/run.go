package cmd

import (
	"github.com/itsmostafa/rpncalc/internal/loop"
	"github.com/itsmostafa/rpncalc/internal/source"
	"github.com/spf13/cobra"
)

var watch bool

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run a command script",
	Long: `Run every line of a script file. Errors are reported to stderr and the
script continues with the next line.

With --watch the script is run again, from an empty stack, whenever the
file is written.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := newLoopConfig(cmd)
		cfg.Source = source.File{Path: args[0]}

		if watch {
			return loop.Watch(cmd.Context(), cfg)
		}
		_, err := loop.Run(cmd.Context(), cfg)
		return err
	},
}

func init() {
	runCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-run the script whenever the file changes")
	rootCmd.AddCommand(runCmd)
}

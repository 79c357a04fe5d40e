package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/itsmostafa/rpncalc/internal/calc"
	"github.com/itsmostafa/rpncalc/internal/loop"
	"github.com/itsmostafa/rpncalc/internal/version"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var strict bool
var precision int
var debug bool
var noColor bool
var summary bool

const precisionUsage = "Significant digits printed by PRINT (0 = default of 6, negative = shortest exact)"

var rootCmd = &cobra.Command{
	Use:   "rpncalc [file]",
	Short: "Reverse Polish notation calculator",
	Long: `rpncalc reads one command per line and runs it against an operand stack
and a table of named parameters.

Commands: PUSH <number|name>, POP, PRINT, DEFINE <name> [value], SQRT,
+, -, *, / and # for comments.

With a file argument the script is run; without one commands are read
interactively until 'exit' or end of input.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := loop.DetectMode(args)
		if err != nil {
			return err
		}

		src, err := loop.SourceFor(mode, args, cmd.InOrStdin())
		if err != nil {
			return err
		}

		cfg := newLoopConfig(cmd)
		cfg.Source = src
		_, err = loop.Run(cmd.Context(), cfg)
		return err
	},
}

func init() {
	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("rpncalc %s\n", version.String()))

	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Reject arguments given to commands that take none")

	// Precision and debug flags with env var fallback
	defaultPrecision := calc.DefaultPrecision
	if envPrecision := os.Getenv("RPNCALC_PRECISION"); envPrecision != "" {
		if p, err := strconv.Atoi(envPrecision); err == nil {
			defaultPrecision = p
		}
	}
	rootCmd.PersistentFlags().IntVarP(&precision, "precision", "p", defaultPrecision, precisionUsage)
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", os.Getenv("RPNCALC_DEBUG") != "", "Log every dispatched command to stderr")

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&summary, "stats", false, "Print a run summary to stderr when input ends")
}

// newLoopConfig builds the loop configuration shared by every subcommand
func newLoopConfig(cmd *cobra.Command) loop.Config {
	errOut := cmd.ErrOrStderr()
	return loop.Config{
		Factory:   calc.Factory{Strict: strict},
		Precision: precision,
		Out:       cmd.OutOrStdout(),
		Err:       errOut,
		Prompt:    isTerminal(cmd.InOrStdin()),
		NoColor:   noColor || !isTerminal(errOut),
		Summary:   summary,
		Logger:    loop.NewLogger(errOut, debug),
	}
}

// isTerminal reports whether v is a file attached to a terminal
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		// Interrupted: the conventional 128+SIGINT status, no message.
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"toyrobot/internal/interpreter"
	"toyrobot/internal/logging"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "toyrobot",
		Short: "Drive a toy robot around a 5x5 table",
		Long: `toyrobot reads commands from standard input, one per line:

  PLACE X,Y,NORTH|EAST|SOUTH|WEST
  MOVE
  LEFT
  RIGHT
  REPORT

It stops at the end of input.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			log := logging.New(cmd.ErrOrStderr(), level)
			ctx := interpreter.NewContext(cmd.OutOrStdout(), log)
			return interpreter.Run(ctx, cmd.InOrStdin())
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log ignored commands to stderr")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/traitchain/cmd/traitchain/commands"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "traitchain",
	Short: "Deduce the hidden traits of a combo chain",
	Long: `traitchain narrows the hidden traits of every node in a combo chain
using the hidden-trait pool, required trait counts and the crew catalog,
then lists the crew worth trying next for each unsolved node.

Examples:
  traitchain solve                          # solve player.json with defaults
  traitchain solve -a "Kira Nerys" -a Odo   # exclude crew already tried
  traitchain solve --difficulty nm -v       # another chain, with debug logs
  traitchain config show                    # print the effective config`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file (default: ./traitchain.toml or ~/.config/traitchain/traitchain.toml)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase log verbosity")

	rootCmd.AddCommand(commands.SolveCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		stop()
		os.Exit(1)
	}
}

// Package commands implements the traitchain subcommands.
package commands

import (
	"github.com/katalvlaran/traitchain/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// flagKeys maps command-line flags onto config keys.
var flagKeys = map[string]string{
	"puzzle":         "puzzle.path",
	"catalog":        "catalog.path",
	"difficulty":     "puzzle.difficulty",
	"translation":    "translation.path",
	"max-iterations": "solver.max_iterations",
}

// loadConfig builds the layered config for cmd, binding whichever of its
// flags map onto config keys.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	v, err := config.New(path)
	if err != nil {
		return nil, err
	}
	bindFlags(cmd, v)

	return config.Load(v)
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}
	if noLexico, _ := cmd.Flags().GetBool("no-lexico"); noLexico {
		v.Set("solver.lexicographic", false)
	}
	if verbose, _ := cmd.Flags().GetCount("verbose"); verbose > 0 {
		v.Set("log.level", "debug")
	}
}

package commands

import (
	"github.com/katalvlaran/traitchain/config"
	"github.com/spf13/cobra"
)

// ConfigCmd groups configuration helpers.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect traitchain configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration after applying defaults, traitchain.toml and
TRAITCHAIN_* environment variables. The output is a valid traitchain.toml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		return config.Encode(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	ConfigCmd.AddCommand(configShowCmd)
}

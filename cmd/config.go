package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/tarot-assets/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the tarot-assets config file",
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config file",
	Args:  cobra.NoArgs,
	// The config file may not exist or be broken yet
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		created, err := config.WriteDefaultConfig(configPath)
		if err != nil {
			return err
		}

		if created {
			fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", configPath)
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Config file already exists at:", configPath)
		}
		return nil
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the location of the config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), configPath)
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

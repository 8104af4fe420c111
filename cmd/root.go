package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/tarot-assets/internal/config"
	"github.com/arcanaland/tarot-assets/internal/log"
)

var (
	verbose    bool
	configPath string

	// appConfig is loaded before any subcommand runs
	appConfig = config.Default()
	logger    *zap.Logger
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "tarot-assets",
	Short: "Tool for downloading and checking tarot card images",
	Long: `tarot-assets downloads the 78 Rider-Waite-Smith card images from Wikipedia
and checks that the card JSON dataset only references images that exist on disk.

Every setting has a built-in default; an optional config file can override them
(see 'tarot-assets config init').`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogger(); err != nil {
			return err
		}

		cfg, err := config.LoadConfigFile(configPath)
		if err != nil {
			return err
		}
		appConfig = cfg
		log.Debugw("Configuration loaded", "path", configPath)

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			// Sync can fail on terminals even though the logs were written
			_ = logger.Sync()
		}
	},
}

func setupLogger() error {
	var err error
	logger, err = log.NewZap(verbose)
	if err != nil {
		return fmt.Errorf("error creating logger: %w", err)
	}
	log.SetLogger(logger.Sugar())
	return nil
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	RootCmd.PersistentFlags().StringVar(&configPath, "config", config.GetConfigFilePath(), "Path to the config file")

	RootCmd.AddCommand(fetchCmd)
	RootCmd.AddCommand(verifyCmd)
	RootCmd.AddCommand(previewCmd)
	RootCmd.AddCommand(configCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/tarot-assets/internal/config"
	"github.com/arcanaland/tarot-assets/internal/log"
	"github.com/arcanaland/tarot-assets/internal/validator"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [path]",
	Short: "Check that every card in the JSON dataset has an image on disk",
	Long: `Verify reads the card JSON dataset (data/json/tarot_card_all.json by default)
and lists every card that has no image path or whose image file doesn't exist.
Problems are reported as text; the command always exits successfully.`,
	Args: cobra.MaximumNArgs(1),
	// A broken config file is reported but never fails the check
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogger(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		}

		cfg, err := config.LoadConfigFile(configPath)
		if err != nil {
			log.Warnw("Couldn't load config, using defaults", "path", configPath, "error", err)
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v (using default settings)\n", err)
			cfg = config.Default()
		}
		appConfig = cfg

		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		path := appConfig.Verify.CardsJSON
		if len(args) > 0 {
			path = args[0]
		}

		validator.CheckTarotCardImages(cmd.OutOrStdout(), path)
	},
}

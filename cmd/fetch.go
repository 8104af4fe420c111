package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/arcanaland/tarot-assets/internal/fetcher"
	"github.com/arcanaland/tarot-assets/internal/log"
	"github.com/arcanaland/tarot-assets/internal/progress"
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the 78 tarot card images from Wikipedia",
	Long: `Fetch scrapes the Rider-Waite-Smith gallery on Wikipedia and saves every card
as data/image/cards/<card-name>.png. Images already on disk are skipped, so the
command can be re-run safely. Any network error or a gallery that doesn't list
exactly 78 cards aborts the run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f := fetcher.New(appConfig.Fetch, nil)
		return runFetch(cmd.Context(), cmd.OutOrStdout(), f)
	},
}

func runFetch(ctx context.Context, out io.Writer, f *fetcher.Fetcher) error {
	cards, err := f.CollectCards(ctx)
	if err != nil {
		return err
	}

	bar := progress.New(out, "Downloading", len(cards))
	bar.Start()

	downloaded := 0
	for _, c := range cards {
		ok, err := f.Download(ctx, c)
		if err != nil {
			bar.Finish()
			return err
		}
		if ok {
			downloaded++
		}
		bar.Increment()
	}
	bar.Finish()

	log.Infow("Download finished", "downloaded", downloaded, "skipped", len(cards)-downloaded)

	fmt.Fprintf(out, "✅ All %d images are ready inside '%s'\n", len(cards), f.SaveDir())

	return nil
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dcode-github/property_listing_card/components"
	"github.com/dcode-github/property_listing_card/config"
	"github.com/dcode-github/property_listing_card/models"
)

var (
	recordFile string
	currency   string
	locale     string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a listing card from a JSON record",
	Long: `render reads one property record as JSON (from --file, or stdin) and
writes the card markup to stdout.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := cmd.InOrStdin()
		if recordFile != "" {
			f, err := os.Open(recordFile)
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}
		return renderCard(in, cmd.OutOrStdout(), renderOptions())
	},
}

func init() {
	renderCmd.Flags().StringVarP(&recordFile, "file", "f", "", "JSON property record (default stdin)")
	renderCmd.Flags().StringVar(&currency, "currency", "", "currency symbol")
	renderCmd.Flags().StringVar(&locale, "locale", "", "BCP 47 locale for digit grouping")
}

func renderOptions() components.CardOptions {
	cfg := config.Default()
	if currency != "" {
		cfg.Card.Currency = currency
	}
	if locale != "" {
		cfg.Card.Locale = locale
	}
	return cfg.CardOptions()
}

func renderCard(in io.Reader, out io.Writer, opts components.CardOptions) error {
	var p models.Property
	if err := json.NewDecoder(in).Decode(&p); err != nil {
		return fmt.Errorf("decode property: %w", err)
	}

	renderer, err := components.NewRenderer(opts)
	if err != nil {
		return err
	}
	return renderer.Card(out, p)
}

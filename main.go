package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "listingcard",
	Short: "Property listings with server-rendered cards",
	Long: `listingcard serves the property listing API and renders listing cards
as HTML, either over HTTP or straight from a JSON record.`,
	SilenceUsage: true,
}

func init() {
	serveCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file (optional)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renderCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scraperfix/internal/core"
	"scraperfix/internal/patch"
	"scraperfix/internal/tui"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scraperfix",
	Short: "Rewrite the downloadImage method of src/ImageScraper.ts in place",
	Long: `scraperfix reads src/ImageScraper.ts, replaces the body of its
downloadImage method with a known-good implementation, and writes the file
back to the same path. If the method is not found the file is rewritten
unchanged and the run still succeeds.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := core.Run(patch.TargetFile); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		fmt.Println("ImageScraper.ts updated successfully")
	},
}

// previewCmd shows the pending change in a TUI before anything is written.
var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Inspect the pending change and apply it interactively",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := tui.Run(patch.TargetFile); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

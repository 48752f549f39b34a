package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	apiKey    string
	outputDir string
	debugMode bool
)

var rootCmd = &cobra.Command{
	Use:   "gamenote <slug>",
	Short: "Import RAWG game data into a Markdown vault note",
	Long: `Fetches a game's metadata from the RAWG catalog by slug, downloads its
cover image, and writes a Markdown note with YAML front matter into the
output directory. Re-running updates the catalog fields while keeping
manually edited ones (progress, physical_game, physical_edition,
collection_image).`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		slug := args[0]

		// Get API key
		if apiKey == "" {
			apiKey = os.Getenv("RAWG_API_KEY")
		}
		if apiKey == "" {
			log.Fatal("API key required: use --api-key flag or RAWG_API_KEY environment variable")
		}

		if debugMode {
			SetDebugMode(true)
		}

		if err := ensureConfigExists(); err != nil {
			log.Fatalf("Failed to set up config: %v", err)
		}
		settings, err := loadSettings()
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
		if outputDir != "" {
			settings.OutputDirectory = outputDir
		}

		importer := NewImporter(apiKey, settings)
		result, err := importer.Import(slug)
		if err != nil {
			log.Fatalf("Import failed: %v", err)
		}

		log.Printf("Wrote %s", result.NoteFile)
	},
}

func init() {
	rootCmd.Flags().StringVar(&apiKey, "api-key", "", "RAWG API key")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory to write notes to (overrides settings)")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

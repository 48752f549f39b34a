package main

import (
	"fmt"
	"log"
	"path/filepath"
)

var debugEnabled bool

// SetDebugMode enables or disables debug logging
func SetDebugMode(enabled bool) {
	debugEnabled = enabled
}

func debugLog(format string, args ...interface{}) {
	if debugEnabled {
		log.Printf("[DEBUG] "+format, args...)
	}
}

// Importer runs the import pipeline for one game: fetch metadata, download
// the cover, merge with any existing note, write the note.
type Importer struct {
	client   *RawgClient
	images   *ImageDownloader
	settings *Settings
}

// NewImporter creates an importer from the API key and loaded settings.
func NewImporter(apiKey string, settings *Settings) *Importer {
	timeout := settings.APITimeout()
	return &Importer{
		client:   NewRawgClient(apiKey, settings.API.BaseURL, timeout),
		images:   NewImageDownloader(timeout),
		settings: settings,
	}
}

// Import processes a single slug. Fetch and write failures are fatal and
// returned; a failed cover download or unparsable existing front matter is
// logged and the run continues with degraded output.
func (im *Importer) Import(slug string) (*ImportResult, error) {
	log.Printf("  → Fetching metadata for %s...", slug)
	record, err := im.client.FetchGame(slug)
	if err != nil {
		return nil, fmt.Errorf("fetching metadata: %w", err)
	}

	notePath := filepath.Join(im.settings.OutputDirectory, slug+".md")

	preserved, err := readPreservedFields(notePath)
	if err != nil {
		log.Printf("Warning: %v; using default fields", err)
	}

	if record.CoverImageURL != "" {
		log.Printf("  → Downloading cover image...")
	}
	coverRel, err := im.images.Download(record.CoverImageURL, im.settings.OutputDirectory, slug)
	if err != nil {
		log.Printf("Warning: %v; writing note without cover", err)
		coverRel = ""
	}

	log.Printf("  → Writing note: %s", notePath)
	fm := mergeFrontMatter(record, preserved, coverRel)
	if err := writeNote(notePath, fm, record.Description); err != nil {
		return nil, err
	}

	return &ImportResult{
		Slug:      slug,
		NoteFile:  notePath,
		ImageFile: coverRel,
		Progress:  fm.Progress,
	}, nil
}

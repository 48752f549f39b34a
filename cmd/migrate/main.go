package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Renames vault notes produced by the old title-based importer
// ("The Witcher 3 Wild Hunt.md") to the slug-derived scheme the importer now
// reads and writes ("the-witcher-3-wild-hunt.md"). Cover images keep their
// old names; the next import re-downloads them under the slug.

func main() {
	if len(os.Args) < 3 {
		log.Fatal("Usage: migrate slugify <notes-directory>")
	}

	command := os.Args[1]
	notesDir := os.Args[2]

	switch command {
	case "slugify":
		if err := slugifyNotes(notesDir); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("Unknown command %q", command)
	}
}

func slugifyNotes(notesDir string) error {
	return filepath.WalkDir(notesDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // Continue on errors
		}

		if !d.IsDir() && strings.HasSuffix(path, ".md") {
			if err := renameNote(path); err != nil {
				log.Printf("Error processing %s: %v", path, err)
			}
		}

		return nil
	})
}

func renameNote(notePath string) error {
	content, err := os.ReadFile(notePath)
	if err != nil {
		return fmt.Errorf("reading note %s: %w", notePath, err)
	}

	title := extractTitle(string(content))
	if title == "" {
		log.Printf("No title found in %s, skipping", notePath)
		return nil
	}

	slug := slugFromTitle(title)
	fileName := filepath.Base(notePath)
	newFileName := slug + ".md"
	if fileName == newFileName {
		return nil
	}

	newPath := filepath.Join(filepath.Dir(notePath), newFileName)
	if _, err := os.Stat(newPath); err == nil {
		log.Printf("Target %s already exists, skipping %s", newFileName, fileName)
		return nil
	}

	log.Printf("Renaming %s -> %s", fileName, newFileName)
	return os.Rename(notePath, newPath)
}

func extractTitle(content string) string {
	re := regexp.MustCompile(`(?m)^title:\s*"?([^"\n]+?)"?\s*$`)
	matches := re.FindStringSubmatch(content)
	if len(matches) >= 2 {
		return strings.TrimSpace(matches[1])
	}
	return ""
}

func slugFromTitle(title string) string {
	slug := strings.ToLower(title)
	slug = regexp.MustCompile(`[^a-z0-9]+`).ReplaceAllString(slug, "-")
	slug = regexp.MustCompile(`-+`).ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	// Limit length to avoid filesystem issues
	if len(slug) > 50 {
		slug = slug[:50]
		slug = strings.Trim(slug, "-")
	}

	if slug == "" {
		return "game"
	}

	return slug
}

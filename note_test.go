package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadPreservedFieldsMissingFile(t *testing.T) {
	fields, err := readPreservedFields(filepath.Join(t.TempDir(), "nope.md"))
	if err != nil {
		t.Fatalf("readPreservedFields() error = %v, want nil for missing file", err)
	}

	if fields.Progress != "backlog" {
		t.Errorf("Progress = %q, want %q", fields.Progress, "backlog")
	}
	if fields.PhysicalGame != "" || fields.PhysicalEdition != "" || fields.CollectionImage != "" {
		t.Error("physical fields should default to empty strings")
	}
}

func TestReadPreservedFieldsExistingNote(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hades.md")
	content := `---
title: Hades
released: "2020-09-17"
platforms:
  - PC
progress: playing
physical_game: "yes"
physical_edition: Collector's Edition
collection_image: images/hades-box.jpg
rating: 9
---

# Hades
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	fields, err := readPreservedFields(path)
	if err != nil {
		t.Fatalf("readPreservedFields() error = %v", err)
	}

	if fields.Progress != "playing" {
		t.Errorf("Progress = %q, want %q", fields.Progress, "playing")
	}
	if fields.PhysicalGame != "yes" {
		t.Errorf("PhysicalGame = %q, want %q", fields.PhysicalGame, "yes")
	}
	if fields.PhysicalEdition != "Collector's Edition" {
		t.Errorf("PhysicalEdition = %q, want %q", fields.PhysicalEdition, "Collector's Edition")
	}
	if fields.CollectionImage != "images/hades-box.jpg" {
		t.Errorf("CollectionImage = %q, want %q", fields.CollectionImage, "images/hades-box.jpg")
	}

	// Unmanaged keys survive; managed catalog keys do not leak into Extra.
	if fields.Extra["rating"] != 9 {
		t.Errorf("Extra[rating] = %v, want 9", fields.Extra["rating"])
	}
	for _, key := range []string{"title", "released", "platforms", "progress"} {
		if _, ok := fields.Extra[key]; ok {
			t.Errorf("Extra should not contain managed key %q", key)
		}
	}
}

func TestReadPreservedFieldsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"no front matter", "# Just a heading\n"},
		{"unterminated marker", "---\ntitle: Stray\n"},
		{"invalid yaml", "---\ntitle: [unclosed\n---\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "note.md")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			fields, err := readPreservedFields(path)
			if err == nil {
				t.Fatal("readPreservedFields() should report malformed front matter")
			}
			if _, ok := err.(*ParseError); !ok {
				t.Errorf("error type = %T, want *ParseError", err)
			}
			if fields.Progress != "backlog" {
				t.Errorf("Progress = %q, want default %q after parse failure", fields.Progress, "backlog")
			}
		})
	}
}

func TestMergeFrontMatter(t *testing.T) {
	rec := &GameRecord{
		Title:       "Celeste",
		Platforms:   []string{"PC", "Switch"},
		Genres:      []string{"Platformer"},
		ReleaseDate: "2018-01-25",
	}
	prev := PreservedFields{
		Progress:     "completed",
		PhysicalGame: "yes",
		Extra:        map[string]any{"rating": 10},
	}

	fm := mergeFrontMatter(rec, prev, "images/celeste.jpg")

	if fm.Title != "Celeste" || fm.Released != "2018-01-25" {
		t.Errorf("catalog fields = (%q, %q), want fresh record values", fm.Title, fm.Released)
	}
	if fm.Progress != "completed" {
		t.Errorf("Progress = %q, want preserved %q", fm.Progress, "completed")
	}
	if fm.PhysicalGame != "yes" {
		t.Errorf("PhysicalGame = %q, want preserved %q", fm.PhysicalGame, "yes")
	}
	if fm.Cover != "images/celeste.jpg" {
		t.Errorf("Cover = %q, want %q", fm.Cover, "images/celeste.jpg")
	}
	if fm.Extra["rating"] != 10 {
		t.Errorf("Extra[rating] = %v, want carried over", fm.Extra["rating"])
	}
}

func TestWriteNoteLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "celeste.md")
	fm := FrontMatter{
		Title:     "Celeste",
		Released:  "2018-01-25",
		Platforms: []string{"PC"},
		Genres:    []string{"Platformer"},
		Progress:  "backlog",
		Cover:     "images/celeste.jpg",
	}

	if err := writeNote(path, fm, "Climb the mountain."); err != nil {
		t.Fatalf("writeNote() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(content)

	if !strings.HasPrefix(got, "---\n") {
		t.Error("note should start with a front matter marker")
	}
	// Managed fields keep declaration order.
	titleIdx := strings.Index(got, "title: Celeste")
	progressIdx := strings.Index(got, "progress: backlog")
	if titleIdx < 0 || progressIdx < 0 || titleIdx > progressIdx {
		t.Errorf("front matter order wrong:\n%s", got)
	}
	for _, want := range []string{
		"released: \"2018-01-25\"",
		"cover: images/celeste.jpg",
		"\n# Celeste\n",
		"![](images/celeste.jpg)",
		"Climb the mountain.\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("note missing %q:\n%s", want, got)
		}
	}
}

func TestWriteNoteOmitsEmptyCover(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.md")
	fm := FrontMatter{Title: "Stray", Progress: "backlog"}

	if err := writeNote(path, fm, ""); err != nil {
		t.Fatalf("writeNote() error = %v", err)
	}

	content, _ := os.ReadFile(path)
	if strings.Contains(string(content), "cover:") {
		t.Error("front matter should omit cover when no image was written")
	}
	if strings.Contains(string(content), "![](") {
		t.Error("body should omit the embed when no image was written")
	}
}

func TestWriteNoteAppendsExtraFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.md")
	fm := FrontMatter{
		Title:    "Hades",
		Progress: "playing",
		Extra:    map[string]any{"rating": 9, "aliases": []any{"hades-game"}},
	}

	if err := writeNote(path, fm, ""); err != nil {
		t.Fatalf("writeNote() error = %v", err)
	}

	content, _ := os.ReadFile(path)
	got := string(content)

	front, err := frontMatterBlock(content)
	if err != nil {
		t.Fatalf("written note has invalid front matter: %v", err)
	}
	for _, want := range []string{"rating: 9", "aliases:"} {
		if !strings.Contains(string(front), want) {
			t.Errorf("front matter missing unmanaged field %q:\n%s", want, got)
		}
	}
	// Unmanaged fields come after the managed block.
	if strings.Index(got, "rating: 9") < strings.Index(got, "progress: playing") {
		t.Errorf("unmanaged fields should follow managed ones:\n%s", got)
	}
}

func TestWriteNoteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.md")

	if err := writeNote(path, FrontMatter{Title: "Stray"}, ""); err != nil {
		t.Fatalf("writeNote() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "note.md" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory contents = %v, want only note.md", names)
	}
}

func TestWriteNoteError(t *testing.T) {
	dir := t.TempDir()
	// A file where the note directory should be makes MkdirAll fail.
	blocker := filepath.Join(dir, "games")
	if err := os.WriteFile(blocker, []byte("in the way"), 0644); err != nil {
		t.Fatal(err)
	}

	err := writeNote(filepath.Join(blocker, "note.md"), FrontMatter{Title: "Stray"}, "")
	if err == nil {
		t.Fatal("writeNote() should fail when the directory cannot be created")
	}
	if _, ok := err.(*WriteError); !ok {
		t.Errorf("error type = %T, want *WriteError", err)
	}
}

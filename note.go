package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// managedKeys are the front matter fields the importer owns or carries over
// explicitly. Anything else in an existing note is unmanaged and preserved
// verbatim in PreservedFields.Extra.
var managedKeys = map[string]bool{
	"title":            true,
	"released":         true,
	"platforms":        true,
	"genres":           true,
	"progress":         true,
	"physical_game":    true,
	"physical_edition": true,
	"collection_image": true,
	"cover":            true,
}

// readPreservedFields reads the front matter of an existing note and returns
// the user-edited values to carry into the rewrite. A missing file yields
// defaults and no error. Malformed front matter yields defaults and a
// *ParseError, which callers treat as non-fatal.
func readPreservedFields(path string) (PreservedFields, error) {
	defaults := defaultPreservedFields()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaults, nil
	}
	if err != nil {
		return defaults, &ParseError{Path: path, Err: err}
	}

	front, err := frontMatterBlock(data)
	if err != nil {
		return defaults, &ParseError{Path: path, Err: err}
	}

	var fields map[string]any
	if err := yaml.Unmarshal(front, &fields); err != nil {
		return defaults, &ParseError{Path: path, Err: err}
	}

	preserved := defaults
	if v, ok := fields["progress"].(string); ok && v != "" {
		preserved.Progress = v
	}
	if v, ok := fields["physical_game"].(string); ok {
		preserved.PhysicalGame = v
	}
	if v, ok := fields["physical_edition"].(string); ok {
		preserved.PhysicalEdition = v
	}
	if v, ok := fields["collection_image"].(string); ok {
		preserved.CollectionImage = v
	}
	for key, value := range fields {
		if managedKeys[key] {
			continue
		}
		if preserved.Extra == nil {
			preserved.Extra = make(map[string]any)
		}
		preserved.Extra[key] = value
	}

	return preserved, nil
}

// frontMatterBlock returns the bytes between the leading --- marker and its
// closing marker.
func frontMatterBlock(data []byte) ([]byte, error) {
	lines := bytes.Split(data, []byte("\n"))
	if len(lines) == 0 || !bytes.Equal(bytes.TrimSpace(lines[0]), []byte("---")) {
		return nil, fmt.Errorf("no front matter marker")
	}

	for i := 1; i < len(lines); i++ {
		if bytes.Equal(bytes.TrimSpace(lines[i]), []byte("---")) {
			return bytes.Join(lines[1:i], []byte("\n")), nil
		}
	}

	return nil, fmt.Errorf("unterminated front matter")
}

// mergeFrontMatter combines a fresh fetch with the fields preserved from a
// prior note. Every catalog-owned field comes from the record; the user
// fields come from prev.
func mergeFrontMatter(rec *GameRecord, prev PreservedFields, coverRel string) FrontMatter {
	return FrontMatter{
		Title:           rec.Title,
		Released:        rec.ReleaseDate,
		Platforms:       rec.Platforms,
		Genres:          rec.Genres,
		Progress:        prev.Progress,
		PhysicalGame:    prev.PhysicalGame,
		PhysicalEdition: prev.PhysicalEdition,
		CollectionImage: prev.CollectionImage,
		Cover:           coverRel,
		Extra:           prev.Extra,
	}
}

// writeNote serializes the note and writes it atomically: the content goes to
// a temp file in the target directory which is then renamed onto the final
// path, so a crash never leaves a partial note behind. Failures come back as
// *WriteError.
func writeNote(path string, fm FrontMatter, description string) error {
	content, err := renderNote(fm, description)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".note-*")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &WriteError{Path: path, Err: err}
	}

	return nil
}

// renderNote produces the full note: YAML front matter, a heading, the cover
// embed when present, and the description body.
func renderNote(fm FrontMatter, description string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("---\n")
	managed, err := yaml.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("marshaling front matter: %w", err)
	}
	buf.Write(managed)
	if len(fm.Extra) > 0 {
		extra, err := yaml.Marshal(fm.Extra)
		if err != nil {
			return nil, fmt.Errorf("marshaling extra fields: %w", err)
		}
		buf.Write(extra)
	}
	buf.WriteString("---\n\n")

	fmt.Fprintf(&buf, "# %s\n\n", fm.Title)
	if fm.Cover != "" {
		fmt.Fprintf(&buf, "![](%s)\n\n", fm.Cover)
	}
	if desc := strings.TrimSpace(description); desc != "" {
		buf.WriteString(desc)
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

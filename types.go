package main

// GameRecord is the normalized result of a catalog fetch. It is produced
// fresh on every run and never persisted outside the note it becomes.
type GameRecord struct {
	Slug          string
	Title         string
	Platforms     []string
	Genres        []string
	ReleaseDate   string // ISO date, empty for unreleased games
	CoverImageURL string
	Description   string // Markdown, may be empty
}

// FrontMatter is the managed YAML header of a game note. yaml.v3 emits struct
// fields in declaration order, so this is also the on-disk field order.
type FrontMatter struct {
	Title           string   `yaml:"title"`
	Released        string   `yaml:"released"`
	Platforms       []string `yaml:"platforms"`
	Genres          []string `yaml:"genres"`
	Progress        string   `yaml:"progress"`
	PhysicalGame    string   `yaml:"physical_game"`
	PhysicalEdition string   `yaml:"physical_edition"`
	CollectionImage string   `yaml:"collection_image"`
	Cover           string   `yaml:"cover,omitempty"`

	// Extra holds front matter keys the importer does not manage. They are
	// re-emitted after the managed fields so user additions survive re-runs.
	Extra map[string]any `yaml:"-"`
}

// PreservedFields are the user-edited values carried over from an existing
// note when a game is re-imported. Extra collects any front matter keys the
// importer does not manage so they survive the rewrite too.
type PreservedFields struct {
	Progress        string
	PhysicalGame    string
	PhysicalEdition string
	CollectionImage string
	Extra           map[string]any
}

// defaultPreservedFields is what a note starts with on first import.
func defaultPreservedFields() PreservedFields {
	return PreservedFields{Progress: "backlog"}
}

// ImportResult reports what a single import run produced.
type ImportResult struct {
	Slug      string
	NoteFile  string
	ImageFile string // relative to the output directory, empty when no cover was written
	Progress  string
}

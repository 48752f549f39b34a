package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// RawgClient fetches game metadata from the RAWG catalog API.
type RawgClient struct {
	apiKey    string
	baseURL   string
	client    *http.Client
	converter *md.Converter
}

// NewRawgClient creates a client for the RAWG games endpoint.
func NewRawgClient(apiKey, baseURL string, timeout time.Duration) *RawgClient {
	return &RawgClient{
		apiKey:    apiKey,
		baseURL:   baseURL,
		client:    &http.Client{Timeout: timeout},
		converter: md.NewConverter("", true, nil),
	}
}

// rawgGame mirrors the fields of the RAWG game-detail payload this tool uses.
type rawgGame struct {
	Name      string `json:"name"`
	Released  string `json:"released"`
	Platforms []struct {
		Platform struct {
			Name string `json:"name"`
		} `json:"platform"`
	} `json:"platforms"`
	Genres []struct {
		Name string `json:"name"`
	} `json:"genres"`
	BackgroundImage string `json:"background_image"`
	DescriptionRaw  string `json:"description_raw"`
	Description     string `json:"description"`
}

// rawgError is the JSON body RAWG returns alongside non-200 statuses.
type rawgError struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

// FetchGame retrieves the game with the given slug and normalizes it into a
// GameRecord. Non-200 responses become *APIError; transport failures are
// returned wrapped.
func (c *RawgClient) FetchGame(slug string) (*GameRecord, error) {
	endpoint := fmt.Sprintf("%s/games/%s?key=%s", c.baseURL, url.PathEscape(slug), url.QueryEscape(c.apiKey))
	debugLog("GET %s/games/%s", c.baseURL, slug)

	resp, err := c.client.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("fetching game %q: %w", slug, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Slug:       slug,
			Detail:     readErrorDetail(resp.Body),
		}
	}

	var game rawgGame
	if err := json.NewDecoder(resp.Body).Decode(&game); err != nil {
		return nil, fmt.Errorf("decoding response for %q: %w", slug, err)
	}

	record := &GameRecord{
		Slug:          slug,
		Title:         game.Name,
		ReleaseDate:   game.Released,
		CoverImageURL: game.BackgroundImage,
		Description:   c.normalizeDescription(game),
	}
	for _, p := range game.Platforms {
		record.Platforms = append(record.Platforms, p.Platform.Name)
	}
	for _, g := range game.Genres {
		record.Genres = append(record.Genres, g.Name)
	}

	return record, nil
}

// normalizeDescription prefers the plain-text description_raw; when only the
// HTML description is present it is converted to Markdown. Conversion failure
// degrades to an empty description rather than failing the fetch.
func (c *RawgClient) normalizeDescription(game rawgGame) string {
	if game.DescriptionRaw != "" {
		return game.DescriptionRaw
	}
	if game.Description == "" {
		return ""
	}

	text, err := c.converter.ConvertString(game.Description)
	if err != nil {
		log.Printf("Warning: converting description HTML: %v", err)
		return ""
	}
	return text
}

// readErrorDetail extracts the human-readable message RAWG puts in error
// bodies. A missing or unparsable body yields an empty string.
func readErrorDetail(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}

	var e rawgError
	if err := json.Unmarshal(data, &e); err != nil {
		return ""
	}
	if e.Detail != "" {
		return e.Detail
	}
	return e.Error
}

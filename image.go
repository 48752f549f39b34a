package main

import (
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"
)

// ImageDownloader retrieves cover images into the vault's images/ folder.
type ImageDownloader struct {
	client *http.Client
}

// NewImageDownloader creates a downloader with the given timeout.
func NewImageDownloader(timeout time.Duration) *ImageDownloader {
	return &ImageDownloader{client: &http.Client{Timeout: timeout}}
}

// Download fetches rawURL and writes it to <outputDir>/images/<base><ext>,
// overwriting any previous cover for the same game. It returns the image path
// relative to outputDir, suitable for embedding in the note. An empty rawURL
// is a no-op. Failures come back as *DownloadError; callers treat them as
// non-fatal and write the note without a cover.
func (d *ImageDownloader) Download(rawURL, outputDir, base string) (string, error) {
	if rawURL == "" {
		return "", nil
	}

	imagesDir := filepath.Join(outputDir, "images")
	if err := os.MkdirAll(imagesDir, 0755); err != nil {
		return "", &DownloadError{URL: rawURL, Err: err}
	}

	target := filepath.Join(imagesDir, base+imageExt(rawURL))
	debugLog("downloading cover %s -> %s", rawURL, target)

	resp, err := d.client.Get(rawURL)
	if err != nil {
		return "", &DownloadError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &DownloadError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &DownloadError{URL: rawURL, Err: err}
	}
	if err := os.WriteFile(target, data, 0644); err != nil {
		return "", &DownloadError{URL: rawURL, Err: err}
	}

	return path.Join("images", base+imageExt(rawURL)), nil
}

// imageExt derives the file extension from the URL path, defaulting to .jpg
// for extension-less CDN URLs.
func imageExt(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ".jpg"
	}
	if ext := path.Ext(u.Path); ext != "" {
		return ext
	}
	return ".jpg"
}

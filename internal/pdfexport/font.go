package pdfexport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"
)

// FontSource locates the TTF used for PDF text.
type FontSource struct {
	// Path is a local TTF. It wins over URL.
	Path string
	// URL is downloaded once into CacheDir.
	URL      string
	CacheDir string
	Client   *http.Client
}

// Configured reports whether any font is available to load.
func (f FontSource) Configured() bool {
	return f.Path != "" || f.URL != ""
}

// Load returns the font bytes, downloading and caching when needed.
func (f FontSource) Load(ctx context.Context) ([]byte, error) {
	if f.Path != "" {
		data, err := os.ReadFile(f.Path)
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
		return data, nil
	}
	if f.URL == "" {
		return nil, fmt.Errorf("no font configured")
	}

	cached := f.cachePath()
	if data, err := os.ReadFile(cached); err == nil && len(data) > 0 {
		return data, nil
	}

	data, err := f.download(ctx)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(cached), 0o755); err != nil {
		return nil, fmt.Errorf("create font cache: %w", err)
	}
	tmp := cached + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return nil, fmt.Errorf("cache font: %w", err)
	}
	if err := os.Rename(tmp, cached); err != nil {
		return nil, fmt.Errorf("cache font: %w", err)
	}
	return data, nil
}

func (f FontSource) cachePath() string {
	name := path.Base(f.URL)
	if name == "" || name == "/" || name == "." {
		name = "font.ttf"
	}
	return filepath.Join(f.CacheDir, "fonts", name)
}

func (f FontSource) download(ctx context.Context) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: 2 * time.Minute}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("font request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download font: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download font: unexpected status %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("download font: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("download font: empty body")
	}
	return data, nil
}

package artwork

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/nfnt/resize"

	"karolbroda.com/lyroverlay/internal/colors"
)

const fetchTimeout = 5 * time.Second

var ErrEmptyURL = errors.New("empty artwork url")

// Fetcher loads album art by URL and keeps the last few images in memory so a
// track that comes back does not hit the network again.
type Fetcher struct {
	client *http.Client
	limit  int

	mu    sync.Mutex
	order []string
	cache map[string]image.Image
}

func NewFetcher(client *http.Client, limit int) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	if limit <= 0 {
		limit = 8
	}
	return &Fetcher{
		client: client,
		limit:  limit,
		cache:  make(map[string]image.Image),
	}
}

func (f *Fetcher) Fetch(ctx context.Context, artworkURL string) (image.Image, error) {
	if artworkURL == "" {
		return nil, ErrEmptyURL
	}

	f.mu.Lock()
	img, ok := f.cache[artworkURL]
	f.mu.Unlock()
	if ok {
		return img, nil
	}

	img, err := f.load(ctx, artworkURL)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.cache[artworkURL]; !ok {
		f.order = append(f.order, artworkURL)
		if len(f.order) > f.limit {
			delete(f.cache, f.order[0])
			f.order = f.order[1:]
		}
	}
	f.cache[artworkURL] = img
	return img, nil
}

func (f *Fetcher) load(ctx context.Context, artworkURL string) (image.Image, error) {
	if path, ok := strings.CutPrefix(artworkURL, "file://"); ok {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open artwork file: %w", err)
		}
		defer file.Close()

		img, _, err := image.Decode(file)
		if err != nil {
			return nil, fmt.Errorf("failed to decode artwork image: %w", err)
		}
		return img, nil
	}

	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, artworkURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch artwork: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("artwork fetch returned status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode artwork: %w", err)
	}

	return img, nil
}

// RenderHalfBlockArt draws img as targetHeight rows of upper-half blocks, two
// pixels per cell. Transparent pixels are left blank.
func RenderHalfBlockArt(img image.Image, targetWidth int, targetHeight int) []string {
	if img == nil || targetWidth < 4 || targetHeight < 2 {
		return nil
	}

	actualHeight := targetHeight * 2

	resized := resize.Resize(uint(targetWidth), uint(actualHeight), img, resize.Lanczos3)
	bounds := resized.Bounds()

	lines := make([]string, targetHeight)

	for y := 0; y < targetHeight; y++ {
		var line strings.Builder
		topY := y * 2
		bottomY := topY + 1

		for x := 0; x < bounds.Dx(); x++ {
			topR, topG, topB, topA := resized.At(bounds.Min.X+x, bounds.Min.Y+topY).RGBA()

			var bottomR, bottomG, bottomB, bottomA uint32
			if bottomY < bounds.Dy() {
				bottomR, bottomG, bottomB, bottomA = resized.At(bounds.Min.X+x, bounds.Min.Y+bottomY).RGBA()
			} else {
				bottomR, bottomG, bottomB, bottomA = topR, topG, topB, topA
			}

			if topA>>8 < 128 && bottomA>>8 < 128 {
				line.WriteString(" ")
				continue
			}

			top := colors.RGB{R: int(topR >> 8), G: int(topG >> 8), B: int(topB >> 8)}.Hex()
			bottom := colors.RGB{R: int(bottomR >> 8), G: int(bottomG >> 8), B: int(bottomB >> 8)}.Hex()

			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom))

			line.WriteString(style.Render("▀"))
		}
		lines[y] = line.String()
	}

	return lines
}

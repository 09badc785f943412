// Package update asks a release endpoint whether a newer build exists.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"karolbroda.com/lyroverlay/internal/config"
)

// ErrUnreachable covers a missing endpoint, network failures and a 404 from
// the release server. Callers treat it as "up to date".
var ErrUnreachable = errors.New("update server unreachable")

var (
	httpClient     *http.Client
	httpClientOnce sync.Once
)

func getHTTPClient() *http.Client {
	httpClientOnce.Do(func() {
		transport := &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   2 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        2,
			IdleConnTimeout:     30 * time.Second,
			TLSHandshakeTimeout: 2 * time.Second,
		}
		httpClient = &http.Client{
			Transport: transport,
			Timeout:   time.Duration(config.HTTPTimeoutSeconds) * time.Second,
		}
	})
	return httpClient
}

// Manifest is the release description served by the update endpoint.
type Manifest struct {
	Version string `json:"version"`
	Notes   string `json:"notes,omitempty"`
	PubDate string `json:"pub_date,omitempty"`
}

type Result struct {
	Current   string
	Latest    string
	Notes     string
	Available bool
}

// Check fetches the manifest at url and compares it against current. Any
// error other than ErrUnreachable should be shown to the user.
func Check(ctx context.Context, client *http.Client, url string, current string) (Result, error) {
	res := Result{Current: current}
	if url == "" {
		return res, fmt.Errorf("no update url configured: %w", ErrUnreachable)
	}
	if client == nil {
		client = getHTTPClient()
	}

	m, err := fetchManifest(ctx, client, url, current)
	if err != nil {
		return res, err
	}

	if _, err := parseVersion(m.Version); err != nil {
		return res, fmt.Errorf("manifest has invalid version %q: %w", m.Version, err)
	}

	cmp, err := Compare(m.Version, current)
	if err != nil {
		return res, fmt.Errorf("invalid current version %q: %w", current, err)
	}

	res.Latest = m.Version
	res.Notes = m.Notes
	res.Available = cmp > 0
	return res, nil
}

func fetchManifest(ctx context.Context, client *http.Client, url string, current string) (*Manifest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build http request: %w", err)
	}
	req.Header.Set("User-Agent", "lyroverlay/"+current)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not fetch %s: %v: %w", url, err, ErrUnreachable)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("status 404 from %s: %w", url, ErrUnreachable)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("update server returned status %d: %s", resp.StatusCode, string(body))
	}

	var m Manifest
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode update manifest: %w", err)
	}
	return &m, nil
}

// Compare orders two dotted versions. A leading "v" and any pre-release or
// build suffix are ignored; missing components count as zero.
func Compare(a, b string) (int, error) {
	av, err := parseVersion(a)
	if err != nil {
		return 0, err
	}
	bv, err := parseVersion(b)
	if err != nil {
		return 0, err
	}

	for i := 0; i < max(len(av), len(bv)); i++ {
		var x, y int
		if i < len(av) {
			x = av[i]
		}
		if i < len(bv) {
			y = bv[i]
		}
		switch {
		case x > y:
			return 1, nil
		case x < y:
			return -1, nil
		}
	}
	return 0, nil
}

func parseVersion(v string) ([]int, error) {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	if i := strings.IndexAny(v, "-+"); i >= 0 {
		v = v[:i]
	}
	if v == "" {
		return nil, errors.New("empty version")
	}

	parts := strings.Split(v, ".")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad version component %q", p)
		}
		out[i] = n
	}
	return out, nil
}

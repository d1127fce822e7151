package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/paulfryers/coronavirus-dashboard/internal/domain"
)

// maxDocumentSize bounds how much of a single document is read.
const maxDocumentSize = 64 << 20

// Loader reads dataset documents from files or http(s) URLs.
type Loader struct {
	Client *http.Client
}

// NewLoader returns a Loader using client, or http.DefaultClient when nil.
func NewLoader(client *http.Client) *Loader {
	if client == nil {
		client = http.DefaultClient
	}
	return &Loader{Client: client}
}

// IsRemote reports whether src names an http(s) URL.
func IsRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// Load reads and parses a single combined document.
func (l *Loader) Load(ctx context.Context, src string) (*domain.Dataset, error) {
	data, err := l.read(ctx, src)
	if err != nil {
		return nil, err
	}
	ds, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", src, err)
	}
	return ds, nil
}

// LoadSplit reads the four documents of the split layout concurrently and
// merges them into one Dataset. The first failure cancels the others.
func (l *Loader) LoadSplit(ctx context.Context, overview, countries, regions, utlas string) (*domain.Dataset, error) {
	var parts Parts
	g, gctx := errgroup.WithContext(ctx)

	fetch := func(src string, dst *[]byte) {
		g.Go(func() error {
			data, err := l.read(gctx, src)
			if err != nil {
				return err
			}
			*dst = data
			return nil
		})
	}
	fetch(overview, &parts.Overview)
	fetch(countries, &parts.Countries)
	fetch(regions, &parts.Regions)
	fetch(utlas, &parts.Utlas)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ParseParts(parts)
}

// Load is a convenience wrapper around a default Loader.
func Load(ctx context.Context, src string) (*domain.Dataset, error) {
	return NewLoader(nil).Load(ctx, src)
}

// LoadSplit is a convenience wrapper around a default Loader.
func LoadSplit(ctx context.Context, overview, countries, regions, utlas string) (*domain.Dataset, error) {
	return NewLoader(nil).LoadSplit(ctx, overview, countries, regions, utlas)
}

func (l *Loader) read(ctx context.Context, src string) ([]byte, error) {
	if src == "" {
		return nil, fmt.Errorf("no data source configured")
	}
	if IsRemote(src) {
		return l.fetch(ctx, src)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src, err)
	}
	return data, nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %s", url, resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", url, err)
	}
	return data, nil
}

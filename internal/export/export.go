// Package export writes the dashboard charts to image files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulfryers/coronavirus-dashboard/internal/charts"
	"github.com/paulfryers/coronavirus-dashboard/internal/domain"
)

// Supported formats
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// Canvas size and margins shared by both writers, in pixels.
const (
	canvasWidth  = 800
	canvasHeight = 400
	marginLeft   = 80
	marginRight  = 30
	marginTop    = 50
	marginBottom = 50
)

// plot maps sample indexes and values onto the canvas.
type plot struct {
	n   int
	max int64
}

func newPlot(c charts.Chart) plot {
	return plot{n: len(c.Samples), max: c.Max()}
}

func (p plot) width() int  { return canvasWidth - marginLeft - marginRight }
func (p plot) height() int { return canvasHeight - marginTop - marginBottom }
func (p plot) bottom() int { return marginTop + p.height() }

// x returns the centre of sample i.
func (p plot) x(i int) int {
	if p.n <= 1 {
		return marginLeft + p.width()/2
	}
	return marginLeft + i*p.width()/(p.n-1)
}

func (p plot) y(v int64) int {
	if p.max <= 0 || v <= 0 {
		return p.bottom()
	}
	return p.bottom() - int(v*int64(p.height())/p.max)
}

// barWidth is the width of one bar with a one pixel gap.
func (p plot) barWidth() int {
	if p.n == 0 {
		return 0
	}
	w := p.width()/p.n - 1
	if w < 1 {
		w = 1
	}
	return w
}

// ExportAll writes every chart of ds into dir as <chart id>.<format> and
// returns the written paths.
func ExportAll(dir, format string, ds *domain.Dataset) ([]string, error) {
	format = strings.ToLower(format)
	if format != FormatSVG && format != FormatPNG {
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	var files []string
	for _, c := range charts.FromDataset(ds) {
		path := filepath.Join(dir, c.ID+"."+format)
		var err error
		if format == FormatPNG {
			err = WritePNG(path, c)
		} else {
			err = writeSVGFile(path, c)
		}
		if err != nil {
			return files, fmt.Errorf("failed to export %s: %w", c.ID, err)
		}
		files = append(files, path)
	}
	return files, nil
}

func writeSVGFile(path string, c charts.Chart) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return WriteSVG(f, c)
}

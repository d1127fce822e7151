package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulfryers/coronavirus-dashboard/internal/charts"
	"github.com/paulfryers/coronavirus-dashboard/internal/domain"
)

func series() []domain.Sample {
	return []domain.Sample{
		{Date: "2020-04-05", Value: 10},
		{Date: "2020-04-06", Value: 40},
		{Date: "2020-04-07", Value: 25},
	}
}

func testDataset() *domain.Dataset {
	return &domain.Dataset{
		Overview: domain.NewAreaSet(domain.Area{
			Code:             domain.UnitedKingdomCode,
			DailyDeaths:      series(),
			DailyTotalDeaths: series(),
		}),
		Countries: domain.NewAreaSet(domain.Area{
			Code:                     domain.EnglandCode,
			DailyConfirmedCases:      series(),
			DailyTotalConfirmedCases: series(),
		}),
	}
}

func TestWriteSVGLine(t *testing.T) {
	var buf bytes.Buffer
	c := charts.Chart{Title: "Total cases", Kind: charts.Line, Samples: series()}
	require.NoError(t, WriteSVG(&buf, c))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<title>Total cases</title>")
	assert.Contains(t, out, "<polyline")
	assert.Contains(t, out, "5 Apr 2020")
	assert.Contains(t, out, "7 Apr 2020")
	assert.Contains(t, out, "</svg>")
}

func TestWriteSVGBars(t *testing.T) {
	var buf bytes.Buffer
	c := charts.Chart{Title: "Daily", Kind: charts.Bar, Samples: series()}
	require.NoError(t, WriteSVG(&buf, c))

	// background plus one rect per sample
	assert.Equal(t, 1+len(series()), strings.Count(buf.String(), "<rect"))
	assert.NotContains(t, buf.String(), "<polyline")
}

func TestWriteSVGEmptySeries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSVG(&buf, charts.Chart{Title: "Empty"}))
	assert.NotContains(t, buf.String(), "<polyline")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestWriteSVGReportsWriteErrors(t *testing.T) {
	err := WriteSVG(failingWriter{}, charts.Chart{Samples: series()})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrClosed)
}

func TestEncodePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, charts.Chart{Title: "Daily", Kind: charts.Bar, Samples: series()}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestExportAll(t *testing.T) {
	for _, format := range []string{FormatSVG, FormatPNG} {
		t.Run(format, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "charts")
			files, err := ExportAll(dir, strings.ToUpper(format), testDataset())
			require.NoError(t, err)
			require.Len(t, files, 4)

			for _, f := range files {
				assert.Equal(t, "."+format, filepath.Ext(f))
				info, err := os.Stat(f)
				require.NoError(t, err)
				assert.Positive(t, info.Size())
			}
			assert.Equal(t, filepath.Join(dir, "total-cases."+format), files[0])
		})
	}
}

func TestExportAllRejectsUnknownFormat(t *testing.T) {
	_, err := ExportAll(t.TempDir(), "gif", testDataset())
	assert.ErrorContains(t, err, "unsupported export format")
}

package export

import (
	"fmt"
	"io"

	"git.sr.ht/~sbinet/gg"

	"github.com/paulfryers/coronavirus-dashboard/internal/charts"
	uilogic "github.com/paulfryers/coronavirus-dashboard/internal/ui/logic"
)

// WritePNG draws c and saves it as a PNG file at path.
func WritePNG(path string, c charts.Chart) error {
	if err := drawPNG(c).SavePNG(path); err != nil {
		return fmt.Errorf("failed to write png: %w", err)
	}
	return nil
}

// EncodePNG draws c and encodes it as PNG into w.
func EncodePNG(w io.Writer, c charts.Chart) error {
	if err := drawPNG(c).EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

func drawPNG(c charts.Chart) *gg.Context {
	p := newPlot(c)
	dc := gg.NewContext(canvasWidth, canvasHeight)

	dc.SetHexColor("#ffffff")
	dc.Clear()

	dc.SetHexColor("#222222")
	dc.DrawString(c.Title, marginLeft, marginTop/2)

	dc.SetHexColor("#888888")
	dc.SetLineWidth(1)
	dc.DrawLine(marginLeft, marginTop, marginLeft, float64(p.bottom()))
	dc.DrawLine(marginLeft, float64(p.bottom()), canvasWidth-marginRight, float64(p.bottom()))
	dc.Stroke()

	dc.SetHexColor("#555555")
	dc.DrawStringAnchored(uilogic.FormatCount(p.max), marginLeft-6, marginTop, 1, 0.5)
	dc.DrawStringAnchored("0", marginLeft-6, float64(p.bottom()), 1, 0.5)
	if p.n > 0 {
		dc.DrawStringAnchored(dateLabel(c.Samples[0].Date), marginLeft, float64(p.bottom()+16), 0, 0.5)
		dc.DrawStringAnchored(dateLabel(c.Samples[p.n-1].Date), canvasWidth-marginRight, float64(p.bottom()+16), 1, 0.5)
	}

	switch c.Kind {
	case charts.Bar:
		bw := p.barWidth()
		dc.SetHexColor("#2b8cbe")
		for i, s := range c.Samples {
			top := p.y(s.Value)
			dc.DrawRectangle(float64(p.x(i)-bw/2), float64(top), float64(bw), float64(p.bottom()-top))
		}
		dc.Fill()
	default:
		if p.n == 0 {
			break
		}
		dc.SetHexColor("#08519c")
		dc.SetLineWidth(2)
		for i, s := range c.Samples {
			x, y := float64(p.x(i)), float64(p.y(s.Value))
			if i == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.Stroke()
	}
	return dc
}

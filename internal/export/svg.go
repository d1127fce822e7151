package export

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/paulfryers/coronavirus-dashboard/internal/charts"
	uilogic "github.com/paulfryers/coronavirus-dashboard/internal/ui/logic"
)

// errWriter remembers the first write error; svgo itself ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// WriteSVG draws c as an SVG document.
func WriteSVG(w io.Writer, c charts.Chart) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	p := newPlot(c)

	canvas.Start(canvasWidth, canvasHeight)
	canvas.Title(c.Title)
	canvas.Rect(0, 0, canvasWidth, canvasHeight, "fill:white")
	canvas.Text(marginLeft, marginTop/2, c.Title, "font-family:sans-serif;font-size:14px;fill:#222")

	canvas.Gstyle("stroke:#888;stroke-width:1")
	canvas.Line(marginLeft, marginTop, marginLeft, p.bottom())
	canvas.Line(marginLeft, p.bottom(), canvasWidth-marginRight, p.bottom())
	canvas.Gend()

	axis := "font-family:sans-serif;font-size:11px;fill:#555"
	canvas.Text(marginLeft-6, marginTop+4, uilogic.FormatCount(p.max), axis+";text-anchor:end")
	canvas.Text(marginLeft-6, p.bottom()+4, "0", axis+";text-anchor:end")

	if p.n > 0 {
		first := c.Samples[0].Date
		last := c.Samples[p.n-1].Date
		canvas.Text(marginLeft, p.bottom()+18, dateLabel(first), axis)
		canvas.Text(canvasWidth-marginRight, p.bottom()+18, dateLabel(last), axis+";text-anchor:end")
	}

	switch c.Kind {
	case charts.Bar:
		bw := p.barWidth()
		canvas.Gstyle("fill:#2b8cbe")
		for i, s := range c.Samples {
			top := p.y(s.Value)
			canvas.Rect(p.x(i)-bw/2, top, bw, p.bottom()-top)
		}
		canvas.Gend()
	default:
		xs := make([]int, p.n)
		ys := make([]int, p.n)
		for i, s := range c.Samples {
			xs[i] = p.x(i)
			ys[i] = p.y(s.Value)
		}
		if p.n > 0 {
			canvas.Polyline(xs, ys, "fill:none;stroke:#08519c;stroke-width:2")
		}
	}

	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("failed to write svg: %w", ew.err)
	}
	return nil
}

func dateLabel(s string) string {
	t, ok := uilogic.ParseUTC(s)
	if !ok {
		return s
	}
	return t.Format("2 Jan 2006")
}

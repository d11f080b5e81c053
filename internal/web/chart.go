package web

import (
	"fmt"
	"strings"

	"IntradayScope/internal/model"
)

const (
	chartWidth  = 800
	chartHeight = 300
	chartPad    = 10
)

// chart is a close-price line ready for an SVG polyline.
type chart struct {
	Width, Height int
	Points        string
	Min, Max      float64
	From, To      string
}

// buildChart scales closes into the drawing box. A flat series is drawn
// through the vertical middle.
func buildChart(closes []model.ClosePoint, width, height int) chart {
	c := chart{Width: width, Height: height}
	if len(closes) == 0 {
		return c
	}

	c.Min, c.Max = closes[0].Close, closes[0].Close
	for _, p := range closes {
		c.Min = min(c.Min, p.Close)
		c.Max = max(c.Max, p.Close)
	}
	c.From = closes[0].Time.Format("2006-01-02 15:04")
	c.To = closes[len(closes)-1].Time.Format("2006-01-02 15:04")

	innerW := float64(width - 2*chartPad)
	innerH := float64(height - 2*chartPad)
	span := c.Max - c.Min

	var b strings.Builder
	for i, p := range closes {
		x := float64(chartPad)
		if len(closes) > 1 {
			x += innerW * float64(i) / float64(len(closes)-1)
		}
		y := float64(chartPad) + innerH/2
		if span > 0 {
			y = float64(chartPad) + innerH*(c.Max-p.Close)/span
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.1f,%.1f", x, y)
	}
	c.Points = b.String()
	return c
}

package chart

import (
	"bytes"
	"fmt"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type Style struct {
	Width   int
	Height  int
	Padding float64
	Colors  [][3]float64
}

func DefaultStyle() Style {
	return Style{
		Width:   960,
		Height:  540,
		Padding: 60,
		Colors: [][3]float64{
			{0.19, 0.18, 0.51}, // indigo
			{0.96, 0.62, 0.04}, // amber
			{0.06, 0.73, 0.51},
		},
	}
}

// RenderPNG draws c as a stacked bar chart and returns the encoded PNG.
func RenderPNG(c StackedBar, style Style) ([]byte, error) {
	start := time.Now()
	defer func() {
		log.WithField("duration_ms", time.Since(start).Milliseconds()).
			WithField("bars", len(c.Periods)).
			Debug("chart rendering completed")
	}()

	if len(c.Periods) == 0 {
		return nil, fmt.Errorf("chart %q has no periods", c.Layout.Title)
	}

	titleFace, err := loadFont(gobold.TTF, 16)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	labelFace, err := loadFont(goregular.TTF, 11)
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	dc := gg.NewContext(style.Width, style.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	w, h := float64(style.Width), float64(style.Height)
	pad := style.Padding
	plotW := w - 2*pad
	plotH := h - 2*pad
	top := c.MaxStack()
	if top <= 0 {
		top = 1
	}

	// Title
	dc.SetFontFace(titleFace)
	dc.SetRGB(0.1, 0.1, 0.1)
	dc.DrawStringAnchored(c.Layout.Title, w/2, pad/2, 0.5, 0.5)

	// Axes
	dc.SetFontFace(labelFace)
	dc.SetRGB(0.4, 0.4, 0.4)
	dc.SetLineWidth(1)
	dc.DrawLine(pad, pad, pad, h-pad)
	dc.DrawLine(pad, h-pad, w-pad, h-pad)
	dc.Stroke()
	dc.DrawStringAnchored(c.Layout.XAxisTitle, w/2, h-pad/3, 0.5, 0.5)
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), pad/4, h/2)
	dc.DrawStringAnchored(c.Layout.YAxisTitle, pad/4, h/2, 0.5, 0.5)
	dc.Pop()

	for i := 0; i <= 4; i++ {
		v := top * float64(i) / 4
		y := h - pad - plotH*float64(i)/4
		dc.DrawStringAnchored(shortAmount(v), pad-4, y, 1, 0.5)
	}

	// Bars
	barW := plotW / float64(len(c.Periods))
	for i := range c.Periods {
		x := pad + float64(i)*barW
		y := h - pad
		for s, series := range c.Series {
			col := style.Colors[s%len(style.Colors)]
			bh := plotH * series.Values[i] / top
			dc.SetRGB(col[0], col[1], col[2])
			dc.DrawRectangle(x, y-bh, max(barW*0.9, 0.5), bh)
			dc.Fill()
			y -= bh
		}
	}

	// Legend
	lx, ly := w-pad-220, pad+10
	for s, series := range c.Series {
		col := style.Colors[s%len(style.Colors)]
		dc.SetRGB(col[0], col[1], col[2])
		dc.DrawRectangle(lx, ly+float64(s)*18, 12, 12)
		dc.Fill()
		dc.SetRGB(0.1, 0.1, 0.1)
		dc.DrawStringAnchored(series.Name, lx+18, ly+float64(s)*18+6, 0, 0.5)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

func shortAmount(v float64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%.0fk", v/1_000)
	}
	return fmt.Sprintf("%.0f", v)
}

// loadFont loads a font from byte data
func loadFont(fontData []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(fontData)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

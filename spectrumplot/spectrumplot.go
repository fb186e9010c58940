// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package spectrumplot renders captured vibration spectra as charts, for
// reports or for dashboards that serve images.
package spectrumplot

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/jordanjparker/devices/adis16000"
	"github.com/jordanjparker/devices/common"
)

// Opts represents the options available for a chart.
type Opts struct {
	// Width and height of the rendered image, in pixels.
	Width  int
	Height int
	// Title drawn above the plot area.
	Title string

	_ struct{}
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	Width:  800,
	Height: 400,
}

const margin = 48.0

// Render draws both axes of a record as magnitude over frequency traces,
// x in blue and y in red.
func Render(rec *adis16000.FFTRecord, opts *Opts) (image.Image, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("spectrumplot: invalid size %dx%d", opts.Width, opts.Height)
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: 12}))

	plotW := float64(opts.Width) - 2*margin
	plotH := float64(opts.Height) - 2*margin

	x, y := rec.Magnitudes()
	peak := 0.0
	for i := range x {
		if x[i] > peak {
			peak = x[i]
		}
		if y[i] > peak {
			peak = y[i]
		}
	}
	if peak == 0 {
		peak = 1
	}

	// Frame and frequency grid.
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawRectangle(margin, margin, plotW, plotH)
	dc.Stroke()
	const ticks = 4
	for i := 0; i <= ticks; i++ {
		px := margin + plotW*float64(i)/ticks
		if i > 0 && i < ticks {
			dc.SetRGBA(0, 0, 0, 0.2)
			dc.DrawLine(px, margin, px, margin+plotH)
			dc.Stroke()
		}
		freq := common.BinFrequency(i*adis16000.RecordLength/ticks, adis16000.RecordLength, rec.SampleRate)
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(freq.String(), px, margin+plotH+14, 0.5, 0.5)
	}
	dc.DrawStringAnchored(fmt.Sprintf("%.3fg", peak), margin-4, margin, 1, 0.5)
	dc.DrawStringAnchored("0g", margin-4, margin+plotH, 1, 0.5)

	trace := func(bins []float64, r, g, b float64) {
		dc.SetRGB(r, g, b)
		for i, v := range bins {
			px := margin + plotW*float64(i)/float64(len(bins)-1)
			py := margin + plotH*(1-v/peak)
			if i == 0 {
				dc.MoveTo(px, py)
			} else {
				dc.LineTo(px, py)
			}
		}
		dc.Stroke()
	}
	trace(x, 0, 0, 0.8)
	trace(y, 0.8, 0, 0)

	dc.SetRGB(0, 0, 0.8)
	dc.DrawString("x", margin+plotW-28, margin+16)
	dc.SetRGB(0.8, 0, 0)
	dc.DrawString("y", margin+plotW-14, margin+16)

	if opts.Title != "" {
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(opts.Title, float64(opts.Width)/2, margin/2, 0.5, 0.5)
	}
	return dc.Image(), nil
}

// WritePNG renders a record and encodes it as PNG.
func WritePNG(w io.Writer, rec *adis16000.FFTRecord, opts *Opts) error {
	img, err := Render(rec, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

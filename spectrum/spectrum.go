// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package spectrum implements a 1D vibration spectrum monitor that outputs
// to terminal (stdout) using ANSI color codes.
//
// Useful to eyeball a machine's vibration signature while the logging
// pipeline that consumes the records is still being built.
package spectrum

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"

	"github.com/jordanjparker/devices/adis16000"
	"github.com/jordanjparker/devices/common"
)

// Opts represents the options available for this display.
type Opts struct {
	// Width is the number of terminal columns. Bins are peak decimated to
	// fit.
	Width int
	// FloorDB and CeilDB bound the color ramp. Zero values select
	// -80..0 dB relative to the strongest bin.
	FloorDB float64
	CeilDB  float64
	Palette *ansi256.Palette

	_ struct{}
}

// Dev is a 1D spectrum monitor that outputs to the console.
type Dev struct {
	w       io.Writer
	width   int
	floor   float64
	ceil    float64
	palette ansi256.Palette

	buf bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	return NewWriter(colorable.NewColorableStdout(), opts)
}

// NewWriter returns a Dev that displays to an arbitrary writer.
//
// Permits local testing without a terminal.
func NewWriter(w io.Writer, opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	floor, ceil := opts.FloorDB, opts.CeilDB
	if floor == 0 && ceil == 0 {
		floor, ceil = -80, 0
	}
	return &Dev{
		w:       w,
		width:   opts.Width,
		floor:   floor,
		ceil:    ceil,
		palette: *p,
	}
}

func (d *Dev) String() string {
	return "Spectrum"
}

// Halt implements conn.Resource.
//
// It ends the line and resets the terminal attributes.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Draw renders the per bin envelope of both axes of a record. The line is
// redrawn in place so successive records animate.
func (d *Dev) Draw(rec *adis16000.FFTRecord) error {
	x, y := rec.Magnitudes()
	envelope := make([]float64, len(x))
	for i := range x {
		envelope[i] = x[i]
		if y[i] > envelope[i] {
			envelope[i] = y[i]
		}
	}
	_, err := d.Write(envelope)
	return err
}

// Write renders one line of magnitude bins, peak decimated to the display
// width, colored by level on a dB scale.
func (d *Dev) Write(bins []float64) (int, error) {
	if d.width <= 0 {
		return 0, fmt.Errorf("spectrum: display width %d", d.width)
	}
	norm := common.Normalize(bins)
	// This code is designed to minimize the amount of memory allocated per
	// call.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	for col := 0; col < d.width; col++ {
		lo := col * len(norm) / d.width
		hi := (col + 1) * len(norm) / d.width
		peak := 0.0
		for _, v := range norm[lo:hi] {
			if v > peak {
				peak = v
			}
		}
		_, _ = io.WriteString(&d.buf, d.palette.Block(d.color(peak)))
	}
	_, _ = d.buf.WriteString("\033[0m ")
	_, err := d.buf.WriteTo(d.w)
	return len(bins), err
}

// color maps a normalized magnitude onto a black, red, yellow, white heat
// ramp through the dB window.
func (d *Dev) color(v float64) color.NRGBA {
	db := common.Decibels(v)
	t := (db - d.floor) / (d.ceil - d.floor)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	switch {
	case t < 1./3:
		return color.NRGBA{R: uint8(t * 3 * 255), A: 255}
	case t < 2./3:
		return color.NRGBA{R: 255, G: uint8((t - 1./3) * 3 * 255), A: 255}
	default:
		return color.NRGBA{R: 255, G: 255, B: uint8((t - 2./3) * 3 * 255), A: 255}
	}
}

var _ fmt.Stringer = &Dev{}

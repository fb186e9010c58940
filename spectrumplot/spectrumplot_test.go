// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package spectrumplot

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"periph.io/x/conn/v3/physic"

	"github.com/jordanjparker/devices/adis16000"
)

func testRecord() *adis16000.FFTRecord {
	rec := &adis16000.FFTRecord{
		Range:      adis16000.Range5G,
		SampleRate: 20480 * physic.Hertz,
	}
	for i := range rec.X {
		rec.X[i] = int16(i % 100)
		rec.Y[i] = int16(200 - i%200)
	}
	rec.X[32] = 5000
	return rec
}

func TestRender(t *testing.T) {
	img, err := Render(testRecord(), &Opts{Width: 320, Height: 200})
	if err != nil {
		t.Fatal(err)
	}
	if got, want := img.Bounds(), image.Rect(0, 0, 320, 200); got != want {
		t.Fatalf("bounds %v, want %v", got, want)
	}
	// The traces must have put ink somewhere inside the plot area.
	white := color.NRGBAModel.Convert(color.White)
	inked := false
	for x := 50; x < 270 && !inked; x++ {
		for y := 50; y < 150; y++ {
			if color.NRGBAModel.Convert(img.At(x, y)) != white {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("plot area is blank")
	}
}

func TestRenderDefaults(t *testing.T) {
	img, err := Render(testRecord(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := img.Bounds(), image.Rect(0, 0, DefaultOpts.Width, DefaultOpts.Height); got != want {
		t.Fatalf("bounds %v, want %v", got, want)
	}
}

func TestRenderInvalidSize(t *testing.T) {
	if _, err := Render(testRecord(), &Opts{Width: -1, Height: 10}); err == nil {
		t.Fatal("expected an error for a negative width")
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, testRecord(), &Opts{Width: 160, Height: 120, Title: "pump 3"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 160 || cfg.Height != 120 {
		t.Errorf("decoded %dx%d, want 160x120", cfg.Width, cfg.Height)
	}
}

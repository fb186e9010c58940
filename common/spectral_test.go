// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package common

import (
	"math"
	"testing"

	"periph.io/x/conn/v3/physic"
)

func TestBinFrequency(t *testing.T) {
	var tests = []struct {
		bin        int
		bins       int
		sampleRate physic.Frequency
		result     physic.Frequency
	}{
		{bin: 0, bins: 256, sampleRate: 20480 * physic.Hertz, result: 0},
		{bin: 1, bins: 256, sampleRate: 20480 * physic.Hertz, result: 40 * physic.Hertz},
		{bin: 255, bins: 256, sampleRate: 20480 * physic.Hertz, result: 10200 * physic.Hertz},
		{bin: 128, bins: 256, sampleRate: 5120 * physic.Hertz, result: 1280 * physic.Hertz},
		{bin: 10, bins: 0, sampleRate: 20480 * physic.Hertz, result: 0},
	}
	for _, test := range tests {
		res := BinFrequency(test.bin, test.bins, test.sampleRate)
		if res != test.result {
			t.Errorf("BinFrequency(%d, %d, %s)!=%s received %s", test.bin, test.bins, test.sampleRate, test.result, res)
		}
	}
}

func TestDecibels(t *testing.T) {
	var tests = []struct {
		magnitude float64
		result    float64
	}{
		{magnitude: 1, result: 0},
		{magnitude: 10, result: 20},
		{magnitude: 0.1, result: -20},
		{magnitude: 0, result: -120},
		{magnitude: -3, result: -120},
		{magnitude: 1e-9, result: -120},
	}
	for _, test := range tests {
		res := Decibels(test.magnitude)
		if math.Abs(res-test.result) > 1e-9 {
			t.Errorf("Decibels(%g)!=%g received %g", test.magnitude, test.result, res)
		}
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize([]float64{0, 2, 4, 1})
	want := []float64{0, 0.5, 1, 0.25}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Normalize[%d]!=%g received %g", i, want[i], got[i])
		}
	}
	for i, v := range Normalize([]float64{0, 0, 0}) {
		if v != 0 {
			t.Errorf("Normalize of zero input has %g at %d", v, i)
		}
	}
	if got := Normalize(nil); len(got) != 0 {
		t.Errorf("Normalize(nil) length %d", len(got))
	}
}

// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains functions used across multiple packages. For
// example, mapping FFT bins to frequencies.
package common

import (
	"math"

	"periph.io/x/conn/v3/physic"
)

// BinFrequency returns the center frequency of bin in a single sided
// spectrum of bins entries spanning DC to half the sample rate.
func BinFrequency(bin, bins int, sampleRate physic.Frequency) physic.Frequency {
	if bins == 0 {
		return 0
	}
	return sampleRate / 2 * physic.Frequency(bin) / physic.Frequency(bins)
}

// dbFloor bounds Decibels for zero or negative magnitudes, which otherwise
// have no logarithm.
const dbFloor = -120.0

// Decibels converts a linear magnitude to dB relative to 1.
func Decibels(magnitude float64) float64 {
	if magnitude <= 0 {
		return dbFloor
	}
	db := 20 * math.Log10(magnitude)
	if db < dbFloor {
		return dbFloor
	}
	return db
}

// Normalize rescales bins into 0..1 against the largest entry. A slice with
// no positive entry comes back all zero.
func Normalize(bins []float64) []float64 {
	max := 0.0
	for _, v := range bins {
		if v > max {
			max = v
		}
	}
	out := make([]float64, len(bins))
	if max == 0 {
		return out
	}
	for i, v := range bins {
		if v > 0 {
			out[i] = v / max
		}
	}
	return out
}

// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adis16000

import (
	"fmt"

	"periph.io/x/conn/v3/physic"

	"github.com/jordanjparker/devices/common"
)

// RecordLength is the number of spectral bins per axis in one record. The
// sensor captures 512 time samples and returns the single sided magnitude
// spectrum.
const RecordLength = 256

// baseSampleRate is the sample rate with the divider at zero. RecCtrl2
// halves it per divider step.
const baseSampleRate = 20480 * physic.Hertz

// RecordMode selects how the sensor triggers a capture.
type RecordMode int

const (
	// ManualFFT captures a record each time CmdRecordStart is issued.
	ManualFFT RecordMode = iota
	// AutomaticFFT re-captures on the REC_PRD period without further
	// commands.
	AutomaticFFT
	// ManualTime captures raw time domain samples instead of a spectrum.
	ManualTime
)

// Window selects the window function applied before the on-sensor FFT.
type Window int

const (
	Rectangular Window = iota
	Hanning
	FlatTop
)

// RecordConfig is the capture configuration written to REC_CTRL1/REC_CTRL2.
type RecordConfig struct {
	Mode   RecordMode
	Window Window
	Range  Range
	// RateDivider halves the 20.48 kSPS base sample rate per step, 0..7.
	RateDivider uint8
}

// SampleRate returns the sample rate the divider selects.
func (c RecordConfig) SampleRate() physic.Frequency {
	return baseSampleRate >> c.RateDivider
}

func (c RecordConfig) ctrl1Value() uint16 {
	return uint16(c.Mode)&0x03 | (uint16(c.Window)&0x03)<<2 | c.Range.bits()<<8
}

// AlarmConfig is a spectral alarm band. Bins inside [LowBin, HighBin] are
// compared against the warning (level 1) and critical (level 2) thresholds,
// in raw FFT output codes.
type AlarmConfig struct {
	LowBin  uint16
	HighBin uint16

	XWarning  uint16
	YWarning  uint16
	XCritical uint16
	YCritical uint16

	// Latching keeps the alarm flag raised until the status register is
	// read even if the vibration subsides.
	Latching bool
	Enabled  bool
}

func (c AlarmConfig) ctrlValue() uint16 {
	var v uint16
	if c.Enabled {
		v |= 0x0001
	}
	if c.Latching {
		v |= 0x0002
	}
	return v
}

// FFTRecord is one captured magnitude spectrum for both sensing axes.
type FFTRecord struct {
	X [RecordLength]int16
	Y [RecordLength]int16

	// Range and SampleRate describe the capture settings the record was
	// taken with; they drive the scaled accessors.
	Range      Range
	SampleRate physic.Frequency
}

// MagnitudeX returns the scaled magnitude of a single x axis bin, in g.
func (r *FFTRecord) MagnitudeX(bin int) float64 {
	return ScaleFFT(r.X[bin], r.Range)
}

// MagnitudeY returns the scaled magnitude of a single y axis bin, in g.
func (r *FFTRecord) MagnitudeY(bin int) float64 {
	return ScaleFFT(r.Y[bin], r.Range)
}

// Magnitudes returns both axes scaled to g, one element per bin.
func (r *FFTRecord) Magnitudes() (x, y []float64) {
	x = make([]float64, RecordLength)
	y = make([]float64, RecordLength)
	for i := 0; i < RecordLength; i++ {
		x[i] = ScaleFFT(r.X[i], r.Range)
		y[i] = ScaleFFT(r.Y[i], r.Range)
	}
	return x, y
}

// BinFrequency returns the center frequency of a bin. The spectrum spans DC
// to half the sample rate.
func (r *FFTRecord) BinFrequency(bin int) physic.Frequency {
	return common.BinFrequency(bin, RecordLength, r.SampleRate)
}

func (r *FFTRecord) String() string {
	return fmt.Sprintf("FFTRecord{%d bins, %s, %s}", RecordLength, r.Range, r.SampleRate)
}

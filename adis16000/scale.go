// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adis16000

import (
	"fmt"

	"periph.io/x/conn/v3/physic"
)

// Range is the measurement range of the accelerometer, in ±g.
type Range int

// Supported ranges.
const (
	Range1G  Range = 1
	Range5G  Range = 5
	Range10G Range = 10
	Range20G Range = 20
)

func (r Range) String() string {
	return fmt.Sprintf("±%dg", int(r))
}

// Set sets the Range to a value represented by the string s. Set implements
// the flag.Value interface.
func (r *Range) Set(s string) error {
	switch s {
	case "1", "1g":
		*r = Range1G
	case "5", "5g":
		*r = Range5G
	case "10", "10g":
		*r = Range10G
	case "20", "20g":
		*r = Range20G
	default:
		return fmt.Errorf("unknown range %q: expected 1, 5, 10 or 20", s)
	}
	return nil
}

// bits returns the REC_CTRL1 range field encoding.
func (r Range) bits() uint16 {
	switch r {
	case Range5G:
		return 1
	case Range10G:
		return 2
	case Range20G:
		return 3
	default:
		return 0
	}
}

// Output codes are two's complement; the scale factors below are mg/LSB per
// the data sheet, one table for time domain captures and a finer one for
// FFT magnitudes.
func (r Range) timeLSB() float64 {
	switch r {
	case Range5G:
		return 0.1526
	case Range10G:
		return 0.3052
	case Range20G:
		return 0.6104
	default:
		return 0.0305
	}
}

func (r Range) fftLSB() float64 {
	switch r {
	case Range5G:
		return 0.0763
	case Range10G:
		return 0.1526
	case Range20G:
		return 0.3052
	default:
		return 0.0153
	}
}

// ScaleTime converts a raw time domain sample to acceleration in g.
func ScaleTime(raw int16, r Range) float64 {
	return float64(raw) * r.timeLSB() / 1000
}

// ScaleFFT converts a raw FFT magnitude bin to acceleration in g.
func ScaleFFT(raw int16, r Range) float64 {
	return float64(raw) * r.fftLSB() / 1000
}

// supplyLSB is 0.44 mV per code.
const supplyLSB = 440 * physic.MicroVolt

// ScaleSupply converts a raw SUPPLY_OUT reading to a voltage.
func ScaleSupply(raw int16) physic.ElectricPotential {
	return physic.ElectricPotential(raw) * supplyLSB
}

// tempLSB is 0.0815 °C per code, relative to 0x0000 at 0 °C.
const tempLSB = 81500 * physic.MicroKelvin

// ScaleTemperature converts a raw TEMP_OUT reading to a temperature.
func ScaleTemperature(raw int16) physic.Temperature {
	return physic.ZeroCelsius + physic.Temperature(raw)*tempLSB
}

// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adis16000

import (
	"fmt"
	"testing"

	"periph.io/x/conn/v3/physic"
)

func TestRecordConfigCtrl1(t *testing.T) {
	var tests = []struct {
		cfg    RecordConfig
		result uint16
	}{
		{cfg: RecordConfig{}, result: 0x0000},
		{cfg: RecordConfig{Mode: AutomaticFFT}, result: 0x0001},
		{cfg: RecordConfig{Mode: ManualTime}, result: 0x0002},
		{cfg: RecordConfig{Window: Hanning}, result: 0x0004},
		{cfg: RecordConfig{Window: FlatTop}, result: 0x0008},
		{cfg: RecordConfig{Range: Range5G}, result: 0x0100},
		{cfg: RecordConfig{Range: Range20G}, result: 0x0300},
		{cfg: RecordConfig{Mode: AutomaticFFT, Window: Hanning, Range: Range10G}, result: 0x0205},
	}
	for _, test := range tests {
		if res := test.cfg.ctrl1Value(); res != test.result {
			t.Errorf("ctrl1Value(%+v)!=%#04x received %#04x", test.cfg, test.result, res)
		}
	}
}

func TestRecordConfigSampleRate(t *testing.T) {
	var tests = []struct {
		divider uint8
		result  physic.Frequency
	}{
		{divider: 0, result: 20480 * physic.Hertz},
		{divider: 1, result: 10240 * physic.Hertz},
		{divider: 3, result: 2560 * physic.Hertz},
	}
	for _, test := range tests {
		cfg := RecordConfig{RateDivider: test.divider}
		if res := cfg.SampleRate(); res != test.result {
			t.Errorf("SampleRate(divider %d)!=%s received %s", test.divider, test.result, res)
		}
	}
}

func TestAlarmConfigCtrl(t *testing.T) {
	if got := (AlarmConfig{}).ctrlValue(); got != 0 {
		t.Errorf("disabled alarm encodes %#04x", got)
	}
	if got := (AlarmConfig{Enabled: true}).ctrlValue(); got != 0x0001 {
		t.Errorf("enabled alarm encodes %#04x", got)
	}
	if got := (AlarmConfig{Enabled: true, Latching: true}).ctrlValue(); got != 0x0003 {
		t.Errorf("latching alarm encodes %#04x", got)
	}
}

func TestFFTRecordAccessors(t *testing.T) {
	rec := &FFTRecord{
		Range:      Range5G,
		SampleRate: 20480 * physic.Hertz,
	}
	rec.X[10] = 1000
	rec.Y[10] = -1000
	if got, want := rec.MagnitudeX(10), ScaleFFT(1000, Range5G); got != want {
		t.Errorf("MagnitudeX = %g, want %g", got, want)
	}
	if got, want := rec.MagnitudeY(10), ScaleFFT(-1000, Range5G); got != want {
		t.Errorf("MagnitudeY = %g, want %g", got, want)
	}
	x, y := rec.Magnitudes()
	if len(x) != RecordLength || len(y) != RecordLength {
		t.Fatalf("magnitudes length %d/%d", len(x), len(y))
	}
	if x[10] != rec.MagnitudeX(10) || y[10] != rec.MagnitudeY(10) {
		t.Errorf("magnitudes at bin 10: %g/%g", x[10], y[10])
	}
	// Bin spacing is half the sample rate over the record length.
	if got, want := rec.BinFrequency(1), 40*physic.Hertz; got != want {
		t.Errorf("BinFrequency(1) = %s, want %s", got, want)
	}
	if got, want := rec.BinFrequency(128), 5120*physic.Hertz; got != want {
		t.Errorf("BinFrequency(128) = %s, want %s", got, want)
	}
}

func TestFFTRecordString(t *testing.T) {
	rec := &FFTRecord{Range: Range1G, SampleRate: 20480 * physic.Hertz}
	want := fmt.Sprintf("FFTRecord{256 bins, ±1g, %s}", rec.SampleRate)
	if got := rec.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

//go:build examples
// +build examples

// Copyright 2017 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package spectrum_test

import (
	"log"
	"time"

	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/jordanjparker/devices/adis16000"
	"github.com/jordanjparker/devices/spectrum"
)

// Live vibration monitor: redraws the spectrum of sensor 1 once a second.
func Example() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	p, err := spireg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	d, err := adis16000.New(p, nil, &adis16000.DefaultOpts)
	if err != nil {
		log.Fatal(err)
	}

	disp := spectrum.New(&spectrum.Opts{Width: 80})
	defer disp.Halt()

	cfg := adis16000.RecordConfig{Range: adis16000.Range10G}
	for {
		rec, err := d.ReadFFTBuffer(1, cfg)
		if err != nil {
			log.Fatal(err)
		}
		if err := disp.Draw(rec); err != nil {
			log.Fatal(err)
		}
		time.Sleep(time.Second)
	}
}

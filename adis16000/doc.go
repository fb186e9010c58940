// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package adis16000 drives the Analog Devices ADIS16000 wireless vibration
// sensing gateway and its ADIS16229 remote nodes.
//
// The gateway is a digital MEMS vibration sensor hub with an embedded RF
// transceiver. The host talks SPI to the gateway only; up to six remote
// sensors are reached through the gateway's paged register map, one page
// per enrolled sensor ID. Remote sensors capture two axis vibration
// records, run an FFT on board and return 256 magnitude bins per axis.
//
// All calls are synchronous and block until the underlying transaction
// completes; the driver keeps exactly one SPI transaction in flight.
//
// Refer to the data sheet for more information.
//
// https://www.analog.com/media/en/technical-documentation/data-sheets/ADIS16000.pdf
package adis16000

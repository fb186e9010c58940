// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package devices is a container for device drivers built around the
// ADIS16000 wireless vibration sensing gateway and for tooling that
// consumes the spectral data it produces.
package devices

// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adis16000

import (
	"fmt"
	"strings"
)

// Status is a decoded DIAG_STAT or DIAG_STAT_G register.
type Status struct {
	// Fault conditions.
	RFError    bool // RF frame lost or not acknowledged
	SPIError   bool // malformed SPI transaction
	FlashError bool // settings save failed
	SupplyHigh bool // supply above the rated maximum
	SupplyLow  bool // supply below the rated minimum
	SelfTest   bool // self test failed

	// Spectral alarm levels. Not faults; reported separately by Err.
	AlarmWarning  bool
	AlarmCritical bool
}

func decodeStatus(v uint16) Status {
	return Status{
		RFError:       v&diagRFError != 0,
		SPIError:      v&diagSPIError != 0,
		FlashError:    v&diagFlashError != 0,
		SupplyHigh:    v&diagSupplyHigh != 0,
		SupplyLow:     v&diagSupplyLow != 0,
		SelfTest:      v&diagSelfTest != 0,
		AlarmWarning:  v&diagAlarm1 != 0,
		AlarmCritical: v&diagAlarm2 != 0,
	}
}

// Err returns an error describing the active fault conditions, or nil when
// the device reports none. Alarm flags are not faults.
func (s Status) Err() error {
	var faults []string
	if s.RFError {
		faults = append(faults, "RF link failure")
	}
	if s.SPIError {
		faults = append(faults, "SPI transaction error")
	}
	if s.FlashError {
		faults = append(faults, "flash update failure")
	}
	if s.SupplyHigh {
		faults = append(faults, "supply over voltage")
	}
	if s.SupplyLow {
		faults = append(faults, "supply under voltage")
	}
	if s.SelfTest {
		faults = append(faults, "self test failure")
	}
	if len(faults) == 0 {
		return nil
	}
	return fmt.Errorf("adis16000: %s", strings.Join(faults, ", "))
}

func (s Status) String() string {
	if err := s.Err(); err != nil {
		return err.Error()
	}
	switch {
	case s.AlarmCritical:
		return "ok, critical alarm raised"
	case s.AlarmWarning:
		return "ok, warning alarm raised"
	}
	return "ok"
}

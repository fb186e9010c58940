// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adis16000

import "time"

// controller abstracts the register transport so the command sequences can
// be exercised against a recording fake in tests.
type controller interface {
	setPage(page uint8) error
	writeRegister(addr uint8, value uint16) error
	readRegister(addr uint8) (uint16, error)
	stall(d time.Duration)
}

const (
	// The gateway needs time to open an enrollment window before it will
	// accept the sensor ID in CMD_DATA.
	enrollDelay = 500 * time.Microsecond

	// Worst case for a full record: 2048 samples at the slowest rate
	// option, FFT processing, and the RF transfer of the result frames.
	captureDelay = 250 * time.Millisecond

	// Restart time before the register file is usable again after a
	// software reset.
	resetRecovery = 50 * time.Millisecond
)

const gatewayPage = 0x00

// addSensor opens an enrollment window and hands the gateway the ID of the
// sensor to enroll.
func addSensor(c controller, id SensorID) error {
	if err := c.setPage(gatewayPage); err != nil {
		return err
	}
	if err := c.writeRegister(GlobCmdG, CmdAddSensor); err != nil {
		return err
	}
	c.stall(enrollDelay)
	return c.writeRegister(CmdData, uint16(id))
}

// removeSensor drops an enrolled sensor. The ID is staged in CMD_DATA before
// the command is issued.
func removeSensor(c controller, id SensorID) error {
	if err := c.setPage(gatewayPage); err != nil {
		return err
	}
	if err := c.writeRegister(CmdData, uint16(id)); err != nil {
		return err
	}
	return c.writeRegister(GlobCmdG, CmdRemoveSensor)
}

func saveGatewaySettings(c controller) error {
	if err := c.setPage(gatewayPage); err != nil {
		return err
	}
	return c.writeRegister(GlobCmdG, CmdSaveSettings)
}

// saveSensorSettings stages a flash save on the sensor page, then has the
// gateway push the command over the RF link.
func saveSensorSettings(c controller, id SensorID) error {
	if err := c.setPage(uint8(id)); err != nil {
		return err
	}
	if err := c.writeRegister(GlobCmdS, CmdSaveSettings); err != nil {
		return err
	}
	if err := c.setPage(gatewayPage); err != nil {
		return err
	}
	return c.writeRegister(GlobCmdG, CmdUpdateSensor)
}

// softResetSensor stages a software reset on the sensor page, has the
// gateway push it over the RF link, then waits out the restart.
func softResetSensor(c controller, id SensorID) error {
	if err := c.setPage(uint8(id)); err != nil {
		return err
	}
	if err := c.writeRegister(GlobCmdS, CmdSoftReset); err != nil {
		return err
	}
	if err := c.setPage(gatewayPage); err != nil {
		return err
	}
	if err := c.writeRegister(GlobCmdG, CmdUpdateSensor); err != nil {
		return err
	}
	c.stall(resetRecovery)
	return nil
}

// captureFFT runs a full record on the sensor and drains both axis buffers.
// BUF_PNTR auto-increments on every buffer read, so the two axes are read
// interleaved in a single pass.
func captureFFT(c controller, id SensorID, rec *FFTRecord) error {
	if err := c.setPage(uint8(id)); err != nil {
		return err
	}
	if err := c.writeRegister(BufPntr, 0); err != nil {
		return err
	}
	if err := c.writeRegister(GlobCmdS, CmdRecordStart); err != nil {
		return err
	}
	if err := c.setPage(gatewayPage); err != nil {
		return err
	}
	if err := c.writeRegister(GlobCmdG, CmdUpdateSensor); err != nil {
		return err
	}
	c.stall(captureDelay)
	if err := c.setPage(uint8(id)); err != nil {
		return err
	}
	for i := 0; i < RecordLength; i++ {
		x, err := c.readRegister(XBuf)
		if err != nil {
			return err
		}
		y, err := c.readRegister(YBuf)
		if err != nil {
			return err
		}
		rec.X[i] = int16(x)
		rec.Y[i] = int16(y)
	}
	return c.setPage(gatewayPage)
}

// readFFTSample reads a single bin of the last record without restarting a
// capture.
func readFFTSample(c controller, id SensorID, bin int) (x, y int16, err error) {
	if err = c.setPage(uint8(id)); err != nil {
		return 0, 0, err
	}
	if err = c.writeRegister(BufPntr, uint16(bin)); err != nil {
		return 0, 0, err
	}
	xv, err := c.readRegister(XBuf)
	if err != nil {
		return 0, 0, err
	}
	yv, err := c.readRegister(YBuf)
	if err != nil {
		return 0, 0, err
	}
	if err = c.setPage(gatewayPage); err != nil {
		return 0, 0, err
	}
	return int16(xv), int16(yv), nil
}

// setDataReady routes the data ready signal to one of the gateway DIO lines.
func setDataReady(c controller, line uint16) error {
	if err := c.setPage(gatewayPage); err != nil {
		return err
	}
	return c.writeRegister(GPOCtrl, line)
}

// setPeriodicMode programs the sensor's autonomous update interval and kicks
// off the first record.
func setPeriodicMode(c controller, id SensorID, interval uint16, scale uint8) error {
	if err := c.setPage(uint8(id)); err != nil {
		return err
	}
	if err := c.writeRegister(UpdatInt, interval); err != nil {
		return err
	}
	if err := c.writeRegister(IntScl, uint16(scale)); err != nil {
		return err
	}
	if err := c.writeRegister(GlobCmdS, CmdRecordStart); err != nil {
		return err
	}
	return c.setPage(gatewayPage)
}

func setRecordControl(c controller, id SensorID, cfg RecordConfig) error {
	if err := c.setPage(uint8(id)); err != nil {
		return err
	}
	if err := c.writeRegister(RecCtrl1, cfg.ctrl1Value()); err != nil {
		return err
	}
	if err := c.writeRegister(RecCtrl2, uint16(cfg.RateDivider)); err != nil {
		return err
	}
	return c.setPage(gatewayPage)
}

func setAlarm(c controller, id SensorID, cfg AlarmConfig) error {
	if err := c.setPage(uint8(id)); err != nil {
		return err
	}
	regs := []struct {
		addr  uint8
		value uint16
	}{
		{AlmFLow, cfg.LowBin},
		{AlmFHigh, cfg.HighBin},
		{AlmXMag1, cfg.XWarning},
		{AlmYMag1, cfg.YWarning},
		{AlmXMag2, cfg.XCritical},
		{AlmYMag2, cfg.YCritical},
		{AlmCtrl, cfg.ctrlValue()},
	}
	for _, r := range regs {
		if err := c.writeRegister(r.addr, r.value); err != nil {
			return err
		}
	}
	return c.setPage(gatewayPage)
}

// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adis16000

// The register map is paged. PAGE_ID at address 0x00 selects the page for
// every following access: page 0x00 addresses the gateway itself, pages
// 0x01..0x06 address the remote sensor with the matching ID. Registers are
// 16 bits wide and occupy two consecutive byte addresses; the named address
// is the lower (even) one.
const (
	PageID = 0x00 // PAGE_ID, page selection, present on every page

	// Gateway registers, page 0x00.

	SensAvail = 0x04 // SENS_AVAIL, bitmask of enrolled sensor IDs
	CmdData   = 0x08 // CMD_DATA, argument register for gateway commands
	GPOCtrl   = 0x0A // GPO_CTRL, general purpose output / data ready routing
	DiagStatG = 0x0C // DIAG_STAT_G, gateway error flags
	GlobCmdG  = 0x0E // GLOB_CMD_G, gateway global command
	ProdIDG   = 0x56 // PROD_ID_G, reads 0x3E80 (16000 decimal)

	// Remote sensor registers, pages 0x01..0x06. Reads and writes are
	// proxied over the RF link by the gateway.

	TempOut   = 0x02 // TEMP_OUT, internal temperature
	SupplyOut = 0x04 // SUPPLY_OUT, supply voltage
	FFTAvg1   = 0x06 // FFT_AVG1, spectral averaging, first set
	FFTAvg2   = 0x08 // FFT_AVG2, spectral averaging, second set
	BufPntr   = 0x0A // BUF_PNTR, capture buffer read pointer
	RecPntr   = 0x0C // REC_PNTR, record pointer
	XBuf      = 0x0E // X_BUF, x axis capture buffer output
	YBuf      = 0x10 // Y_BUF, y axis capture buffer output
	UpdatInt  = 0x12 // UPDAT_INT, periodic mode update interval
	IntScl    = 0x14 // INT_SCL, update interval scale factor
	RecCtrl1  = 0x16 // REC_CTRL1, record mode, window, g-range
	RecCtrl2  = 0x18 // REC_CTRL2, sample rate divider
	RecPrd    = 0x1A // REC_PRD, automatic record period
	AlmFLow   = 0x20 // ALM_F_LOW, alarm band lower bin
	AlmFHigh  = 0x22 // ALM_F_HIGH, alarm band upper bin
	AlmXMag1  = 0x24 // ALM_X_MAG1, x axis warning threshold
	AlmYMag1  = 0x26 // ALM_Y_MAG1, y axis warning threshold
	AlmXMag2  = 0x28 // ALM_X_MAG2, x axis critical threshold
	AlmYMag2  = 0x2A // ALM_Y_MAG2, y axis critical threshold
	AlmPntr   = 0x2C // ALM_PNTR, bin that tripped the last alarm
	AlmSMag   = 0x2E // ALM_S_MAG, magnitude that tripped the last alarm
	AlmCtrl   = 0x30 // ALM_CTRL, alarm enable and latch control
	AvgCnt    = 0x32 // AVG_CNT, decimation filter setting
	DiagStat  = 0x36 // DIAG_STAT, sensor error flags
	GlobCmdS  = 0x3E // GLOB_CMD, sensor global command
	ProdID    = 0x56 // PROD_ID, reads 0x3F65 (16229 decimal)
)

// GLOB_CMD_G and GLOB_CMD bit assignments. Writing a command bit starts the
// operation; the bit self-clears when the device finishes.
const (
	CmdAddSensor    = 0x0001 // enroll the sensor whose ID is in CMD_DATA
	CmdUpdateSensor = 0x0002 // push staged settings/commands to the sensor
	CmdSaveSettings = 0x0040 // save the current page settings to flash
	CmdSoftReset    = 0x0080 // software reset of the addressed device
	CmdRemoveSensor = 0x0100 // drop the sensor whose ID is in CMD_DATA
	CmdRecordStart  = 0x0800 // start a capture on the addressed sensor
)

// GPO_CTRL data ready routing.
const (
	gpoDataReadyDIO1 = 0x0008
	gpoDataReadyDIO2 = 0x0020
)

// DIAG_STAT and DIAG_STAT_G flag bits.
const (
	diagRFError    = 0x0001 // RF frame lost or not acknowledged
	diagSPIError   = 0x0002 // malformed SPI transaction
	diagFlashError = 0x0004 // settings save failed
	diagSupplyHigh = 0x0008 // supply above the rated maximum
	diagSupplyLow  = 0x0010 // supply below the rated minimum
	diagSelfTest   = 0x0020 // self test failed
	diagAlarm1     = 0x0100 // spectral alarm, warning level
	diagAlarm2     = 0x0200 // spectral alarm, critical level
)

// Expected PROD_ID values.
const (
	ProductIDGateway = 0x3E80 // ADIS16000
	ProductIDSensor  = 0x3F65 // ADIS16229
)

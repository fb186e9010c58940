// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package adis16000

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// SPI bus parameters. The device tops out at 2.25 MHz; 1 MHz leaves margin
// on long harnesses.
var (
	SPIFrequency = 1 * physic.MegaHertz
	SPIMode      = spi.Mode3
	SPIBits      = 8
)

// MaxSensors is the number of remote sensors one gateway can serve.
const MaxSensors = 6

// SensorID addresses an enrolled remote sensor, 1..MaxSensors. The ID
// doubles as the register page for the sensor.
type SensorID uint8

func checkID(id SensorID) error {
	if id < 1 || id > MaxSensors {
		return fmt.Errorf("adis16000: sensor ID %d out of range 1..%d", id, MaxSensors)
	}
	return nil
}

// Opts holds the configuration options.
type Opts struct {
	// ExpectedProductID is compared against PROD_ID_G in New. Zero skips
	// the check.
	ExpectedProductID uint16
	// StallTime is the wait between SPI frames. The data sheet requires
	// 40µs between accesses; zero selects that default.
	StallTime time.Duration
}

// DefaultOpts is the recommended default options.
var DefaultOpts = Opts{
	ExpectedProductID: ProductIDGateway,
}

const defaultStallTime = 40 * time.Microsecond

// Dev is a handle to an ADIS16000 vibration sensing gateway.
//
// All methods are synchronous and issue one SPI transaction at a time.
// Command sequences return with the gateway page selected; single register
// reads leave the addressed page selected and rely on the page cache.
type Dev struct {
	c    spi.Conn
	rst  gpio.PinOut
	opts Opts

	// Current PAGE_ID, tracked to skip redundant page writes.
	page      uint8
	pageKnown bool

	// time.Sleep, replaceable in tests.
	sleep func(time.Duration)
}

// New opens an ADIS16000 on the provided SPI port. rst is the hardware
// reset pin and may be nil if the line is not wired.
func New(p spi.Port, rst gpio.PinOut, opts *Opts) (*Dev, error) {
	c, err := p.Connect(SPIFrequency, SPIMode, SPIBits)
	if err != nil {
		return nil, err
	}
	d := &Dev{
		c:     c,
		rst:   rst,
		opts:  *opts,
		sleep: time.Sleep,
	}
	if d.opts.StallTime == 0 {
		d.opts.StallTime = defaultStallTime
	}
	if err := d.setPage(gatewayPage); err != nil {
		return nil, err
	}
	if d.opts.ExpectedProductID != 0 {
		id, err := d.readRegister(ProdIDG)
		if err != nil {
			return nil, err
		}
		if id != d.opts.ExpectedProductID {
			return nil, fmt.Errorf("adis16000: unexpected product ID %#04x, want %#04x", id, d.opts.ExpectedProductID)
		}
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("ADIS16000{%s}", d.c)
}

// Halt implements conn.Resource. It soft resets the gateway, which stops
// any periodic transfers in flight.
func (d *Dev) Halt() error {
	return d.SoftReset()
}

// Reset pulses the hardware reset line and waits for the device to come
// back up.
func (d *Dev) Reset(recovery time.Duration) error {
	if d.rst == nil {
		return fmt.Errorf("adis16000: no reset pin wired")
	}
	if err := d.rst.Out(gpio.Low); err != nil {
		return err
	}
	d.sleep(100 * time.Millisecond)
	if err := d.rst.Out(gpio.High); err != nil {
		return err
	}
	d.sleep(recovery)
	d.pageKnown = false
	return nil
}

// SoftReset issues the software reset command to the gateway.
func (d *Dev) SoftReset() error {
	if err := d.setPage(gatewayPage); err != nil {
		return err
	}
	if err := d.writeRegister(GlobCmdG, CmdSoftReset); err != nil {
		return err
	}
	d.stall(resetRecovery)
	d.pageKnown = false
	return nil
}

// SoftResetSensor issues the software reset command to a remote sensor
// through the RF link.
func (d *Dev) SoftResetSensor(id SensorID) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := softResetSensor(d, id); err != nil {
		return fmt.Errorf("adis16000: resetting sensor %d: %w", id, err)
	}
	return nil
}

// ProductID reads the gateway product identification register.
func (d *Dev) ProductID() (uint16, error) {
	return d.ReadRegister(gatewayPage, ProdIDG)
}

// Sensors returns the IDs of the sensors currently enrolled with the
// gateway.
func (d *Dev) Sensors() ([]SensorID, error) {
	v, err := d.ReadRegister(gatewayPage, SensAvail)
	if err != nil {
		return nil, err
	}
	var ids []SensorID
	for id := SensorID(1); id <= MaxSensors; id++ {
		if v&(1<<id) != 0 {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// AddSensor enrolls a remote sensor with the gateway. The sensor must be
// powered and in its pairing window.
func (d *Dev) AddSensor(id SensorID) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := addSensor(d, id); err != nil {
		return fmt.Errorf("adis16000: adding sensor %d: %w", id, err)
	}
	return nil
}

// RemoveSensor drops a remote sensor from the gateway's network.
func (d *Dev) RemoveSensor(id SensorID) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := removeSensor(d, id); err != nil {
		return fmt.Errorf("adis16000: removing sensor %d: %w", id, err)
	}
	return nil
}

// SaveGatewaySettings commits the gateway configuration to its flash.
func (d *Dev) SaveGatewaySettings() error {
	return saveGatewaySettings(d)
}

// SaveSensorSettings commits a remote sensor's configuration to its flash.
func (d *Dev) SaveSensorSettings(id SensorID) error {
	if err := checkID(id); err != nil {
		return err
	}
	if err := saveSensorSettings(d, id); err != nil {
		return fmt.Errorf("adis16000: saving sensor %d settings: %w", id, err)
	}
	return nil
}

// SetRecordControl programs the capture mode, window, range and sample rate
// of a remote sensor. The settings take effect on the next record.
func (d *Dev) SetRecordControl(id SensorID, cfg RecordConfig) error {
	if err := checkID(id); err != nil {
		return err
	}
	if cfg.RateDivider > 7 {
		return fmt.Errorf("adis16000: rate divider %d out of range 0..7", cfg.RateDivider)
	}
	return setRecordControl(d, id, cfg)
}

// SetAlarm programs a spectral alarm band on a remote sensor.
func (d *Dev) SetAlarm(id SensorID, cfg AlarmConfig) error {
	if err := checkID(id); err != nil {
		return err
	}
	if cfg.LowBin >= RecordLength || cfg.HighBin >= RecordLength {
		return fmt.Errorf("adis16000: alarm band [%d,%d] exceeds %d bins", cfg.LowBin, cfg.HighBin, RecordLength)
	}
	if cfg.LowBin > cfg.HighBin {
		return fmt.Errorf("adis16000: alarm band [%d,%d] is inverted", cfg.LowBin, cfg.HighBin)
	}
	return setAlarm(d, id, cfg)
}

// SetPeriodicMode puts a remote sensor in autonomous capture mode. The time
// between captures is interval * 2^scale update ticks; see the data sheet
// for the tick duration at each sample rate.
func (d *Dev) SetPeriodicMode(id SensorID, interval uint16, scale uint8) error {
	if err := checkID(id); err != nil {
		return err
	}
	return setPeriodicMode(d, id, interval, scale)
}

// SetDataReady routes the capture complete signal to DIO1 or DIO2 on the
// gateway.
func (d *Dev) SetDataReady(line int) error {
	switch line {
	case 1:
		return setDataReady(d, gpoDataReadyDIO1)
	case 2:
		return setDataReady(d, gpoDataReadyDIO2)
	default:
		return fmt.Errorf("adis16000: data ready line %d, want 1 or 2", line)
	}
}

// ReadFFTBuffer triggers a capture on a remote sensor and reads back the
// full magnitude spectrum for both axes. cfg describes how the sensor is
// configured so the record carries the right scaling.
func (d *Dev) ReadFFTBuffer(id SensorID, cfg RecordConfig) (*FFTRecord, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	rec := &FFTRecord{
		Range:      cfg.Range,
		SampleRate: cfg.SampleRate(),
	}
	if err := captureFFT(d, id, rec); err != nil {
		return nil, fmt.Errorf("adis16000: reading FFT buffer of sensor %d: %w", id, err)
	}
	return rec, nil
}

// ReadFFTSample reads one bin of the last captured record on both axes.
func (d *Dev) ReadFFTSample(id SensorID, bin int) (x, y int16, err error) {
	if err := checkID(id); err != nil {
		return 0, 0, err
	}
	if bin < 0 || bin >= RecordLength {
		return 0, 0, fmt.Errorf("adis16000: bin %d out of range 0..%d", bin, RecordLength-1)
	}
	return readFFTSample(d, id, bin)
}

// ReadTemperature reads the internal temperature of a remote sensor.
func (d *Dev) ReadTemperature(id SensorID) (physic.Temperature, error) {
	if err := checkID(id); err != nil {
		return 0, err
	}
	raw, err := d.ReadRegister(uint8(id), TempOut)
	if err != nil {
		return 0, err
	}
	return ScaleTemperature(int16(raw)), nil
}

// ReadSupply reads the supply voltage of a remote sensor.
func (d *Dev) ReadSupply(id SensorID) (physic.ElectricPotential, error) {
	if err := checkID(id); err != nil {
		return 0, err
	}
	raw, err := d.ReadRegister(uint8(id), SupplyOut)
	if err != nil {
		return 0, err
	}
	return ScaleSupply(int16(raw)), nil
}

// Status reads and decodes a remote sensor's DIAG_STAT register. Reading
// clears latched alarm flags.
func (d *Dev) Status(id SensorID) (Status, error) {
	if err := checkID(id); err != nil {
		return Status{}, err
	}
	v, err := d.ReadRegister(uint8(id), DiagStat)
	if err != nil {
		return Status{}, err
	}
	return decodeStatus(v), nil
}

// GatewayStatus reads and decodes the gateway's DIAG_STAT_G register.
func (d *Dev) GatewayStatus() (Status, error) {
	v, err := d.ReadRegister(gatewayPage, DiagStatG)
	if err != nil {
		return Status{}, err
	}
	return decodeStatus(v), nil
}

// ReadRegister reads a 16-bit register on an arbitrary page. It is the
// low level access for registers the typed methods do not cover.
func (d *Dev) ReadRegister(page, addr uint8) (uint16, error) {
	if err := d.setPage(page); err != nil {
		return 0, err
	}
	return d.readRegister(addr)
}

// WriteRegister writes a 16-bit register on an arbitrary page.
func (d *Dev) WriteRegister(page, addr uint8, value uint16) error {
	if err := d.setPage(page); err != nil {
		return err
	}
	return d.writeRegister(addr, value)
}

//
// controller implementation. One SPI frame is 16 bits: one Tx call, one
// chip select assertion. The stall between frames keeps the access rate
// within the data sheet limit.
//

func (d *Dev) setPage(page uint8) error {
	if d.pageKnown && d.page == page {
		return nil
	}
	if err := d.writeRegister(PageID, uint16(page)); err != nil {
		return err
	}
	d.page = page
	d.pageKnown = true
	return nil
}

// readRegister reads a register on the current page. The first frame clocks
// in the address, the second clocks out the data.
func (d *Dev) readRegister(addr uint8) (uint16, error) {
	var rx [2]byte
	if err := d.c.Tx([]byte{addr &^ 0x80, 0x00}, rx[:]); err != nil {
		return 0, fmt.Errorf("reading register %#02x: %w", addr, err)
	}
	d.stall(d.opts.StallTime)
	if err := d.c.Tx([]byte{0x00, 0x00}, rx[:]); err != nil {
		return 0, fmt.Errorf("reading register %#02x: %w", addr, err)
	}
	d.stall(d.opts.StallTime)
	return uint16(rx[0])<<8 | uint16(rx[1]), nil
}

// writeRegister writes a register on the current page. A 16-bit register is
// two byte locations, written low byte first with the write bit set.
func (d *Dev) writeRegister(addr uint8, value uint16) error {
	var rx [2]byte
	if err := d.c.Tx([]byte{0x80 | addr, byte(value)}, rx[:]); err != nil {
		return fmt.Errorf("writing register %#02x: %w", addr, err)
	}
	d.stall(d.opts.StallTime)
	if err := d.c.Tx([]byte{0x80 | (addr + 1), byte(value >> 8)}, rx[:]); err != nil {
		return fmt.Errorf("writing register %#02x: %w", addr, err)
	}
	d.stall(d.opts.StallTime)
	return nil
}

func (d *Dev) stall(t time.Duration) {
	d.sleep(t)
}

var _ controller = &Dev{}

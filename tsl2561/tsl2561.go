// Package tsl2561 is a register level driver for the TSL2560/TSL2561 light
// to digital converters. It reports raw ADC counts only.
package tsl2561

import "fmt"

// Dev is a TSL2561 bound to the bus it was created on.
type Dev struct {
	h   Handle
	bus Bus
}

// New returns a new TSL2561 device on bus. A zero addr selects DefaultAddr
// (0x39).
//
// New only creates the Dev value, it does not touch the device: call PowerOn
// before reading.
func New(bus Bus, addr Addr) *Dev {
	return &Dev{
		h:   NewHandle(addr),
		bus: bus,
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("tsl2561{%v}", d.h.Addr())
}

// Addr returns the slave address of the device.
func (d *Dev) Addr() Addr {
	return d.h.Addr()
}

// Handle returns the bus-less handle of the device.
func (d *Dev) Handle() Handle {
	return d.h
}

// PowerOn powers the device up. Readings are not available until one
// integration period has passed; waiting is up to the caller.
func (d *Dev) PowerOn() error {
	return d.h.PowerOn(d.bus)
}

// PowerOff powers the device down.
func (d *Dev) PowerOff() error {
	return d.h.PowerOff(d.bus)
}

// Raw returns the raw ADC count of ch.
func (d *Dev) Raw(ch Channel) (uint16, error) {
	return d.h.Raw(d.bus, ch)
}

// VisibleAndIR returns the raw count of channel 0 (visible and infrared).
func (d *Dev) VisibleAndIR() (uint16, error) {
	return d.h.VisibleAndIR(d.bus)
}

// IR returns the raw count of channel 1 (infrared only).
func (d *Dev) IR() (uint16, error) {
	return d.h.IR(d.bus)
}

// Channels reads both channels, channel 0 first. It issues two transactions;
// the counts may come from different integration periods.
func (d *Dev) Channels() (ch0, ch1 uint16, err error) {
	if ch0, err = d.VisibleAndIR(); err != nil {
		return 0, 0, err
	}
	if ch1, err = d.IR(); err != nil {
		return 0, 0, err
	}
	return ch0, ch1, nil
}

// SetTiming sets the integration time and gain. The settings share one
// register, so both are written in a single transaction and take effect at
// the start of the next integration period.
func (d *Dev) SetTiming(integ IntegrationTime, gain Gain) error {
	return d.h.SetTiming(d.bus, integ, gain)
}

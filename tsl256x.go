// Package tsl256x drives TSL2560/TSL2561 light sensors attached to a host
// I²C bus. It powers the sensor on when opened, reports raw ADC counts of
// both photodiode channels and keeps a short window of recent counts.
//
// Counts are not converted to lux.
package tsl256x

import (
	"fmt"
	"io"
	"time"

	"github.com/cgxeiji/tsl256x/tsl2561"
	"github.com/sirupsen/logrus"
	"periph.io/x/periph/conn/i2c/i2creg"
	"periph.io/x/periph/host"
)

// Device defines a TSL256x device.
type Device struct {
	dev    *tsl2561.Dev
	closer io.Closer
	log    *logrus.Entry
	closed bool

	visibleIR *tSeries
	ir        *tSeries
}

// Sample holds the raw counts of both channels.
type Sample struct {
	// VisibleIR is the channel 0 count (visible and infrared).
	VisibleIR uint16
	// IR is the channel 1 count (infrared only).
	IR uint16
	// Time is when the channel 1 read completed.
	Time time.Time
}

// New opens the I²C bus on the host, then returns a new TSL256x device that
// has been powered on.
//
// The first reading is available one integration period after New returns
// (402ms unless WithTiming says otherwise).
func New(opts ...Option) (*Device, error) {
	c := newConfig(opts)

	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("tsl256x: could not initialize host: %w", err)
	}

	bus, err := i2creg.Open(c.bus)
	if err != nil {
		return nil, fmt.Errorf("tsl256x: could not open I2C bus: %w", err)
	}
	c.log.WithField("bus", bus.String()).Debug("opened I2C bus")

	d, err := open(bus, bus, c)
	if err != nil {
		bus.Close()
		return nil, err
	}

	return d, nil
}

// NewWithBus returns a new TSL256x device that has been powered on, on a bus
// owned by the caller. Close does not close bus.
func NewWithBus(bus tsl2561.Bus, opts ...Option) (*Device, error) {
	return open(bus, nil, newConfig(opts))
}

func open(bus tsl2561.Bus, closer io.Closer, c *config) (*Device, error) {
	dev := tsl2561.New(bus, c.addr)
	d := &Device{
		dev:       dev,
		closer:    closer,
		log:       c.log.WithField("dev", dev.String()),
		visibleIR: newTSeries(c.window),
		ir:        newTSeries(c.window),
	}

	if err := d.dev.PowerOn(); err != nil {
		return nil, fmt.Errorf("tsl256x: could not power on: %w", err)
	}
	d.log.Debug("powered on")

	if t := c.timing; t != nil {
		if err := d.dev.SetTiming(t.integ, t.gain); err != nil {
			d.dev.PowerOff()
			return nil, fmt.Errorf("tsl256x: could not set timing: %w", err)
		}
		d.log.WithFields(logrus.Fields{
			"integration": t.integ,
			"gain":        t.gain,
		}).Debug("timing set")
	}

	return d, nil
}

// Close powers the device off and closes the bus if New opened it. Calling
// Close more than once is a no-op.
func (d *Device) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true

	err := d.dev.PowerOff()
	if err != nil {
		d.log.WithError(err).Warn("could not power off")
	} else {
		d.log.Debug("powered off")
	}

	if d.closer != nil {
		if cerr := d.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// ToTSL2561 returns the underlying register level device.
func (d *Device) ToTSL2561() *tsl2561.Dev {
	return d.dev
}

// Addr returns the slave address of the device.
func (d *Device) Addr() tsl2561.Addr {
	return d.dev.Addr()
}

// PowerOn powers the device up. Readings restart from zero.
func (d *Device) PowerOn() error {
	return d.dev.PowerOn()
}

// PowerOff powers the device down. The device forgets its timing settings.
func (d *Device) PowerOff() error {
	return d.dev.PowerOff()
}

// VisibleAndIR returns the raw count of channel 0 (visible and infrared).
func (d *Device) VisibleAndIR() (uint16, error) {
	return d.dev.VisibleAndIR()
}

// IR returns the raw count of channel 1 (infrared only).
func (d *Device) IR() (uint16, error) {
	return d.dev.IR()
}

// SetTiming sets the integration time and gain. The new settings apply from
// the next integration period; the current one finishes with the old ones.
func (d *Device) SetTiming(integ tsl2561.IntegrationTime, gain tsl2561.Gain) error {
	return d.dev.SetTiming(integ, gain)
}

// Sample reads both channels and records them in the channel windows. The
// windows are only updated when both reads succeed.
func (d *Device) Sample() (Sample, error) {
	ch0, ch1, err := d.dev.Channels()
	if err != nil {
		return Sample{}, err
	}

	d.visibleIR.add(ch0)
	d.ir.add(ch1)

	return Sample{
		VisibleIR: ch0,
		IR:        ch1,
		Time:      time.Now(),
	}, nil
}

// Window returns the statistics of the samples recorded for ch.
func (d *Device) Window(ch tsl2561.Channel) Stats {
	if ch == tsl2561.Channel1 {
		return d.ir.stats()
	}
	return d.visibleIR.stats()
}

// Reset clears the recorded samples. It does not touch the device.
func (d *Device) Reset() {
	d.visibleIR.reset()
	d.ir.reset()
}

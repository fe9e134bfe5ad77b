package tsl256x

import (
	"io"

	"github.com/cgxeiji/tsl256x/tsl2561"
	"github.com/sirupsen/logrus"
)

// An Option configures a device.
type Option func(c *config) Option

type timing struct {
	integ tsl2561.IntegrationTime
	gain  tsl2561.Gain
}

type config struct {
	bus    string
	addr   tsl2561.Addr
	log    *logrus.Entry
	timing *timing
	window int
}

func newConfig(opts []Option) *config {
	c := &config{
		window: defaultWindow,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.log = logrus.NewEntry(l)
	}
	if c.window < 1 {
		c.window = 1
	}
	return c
}

// OnBus can be used to specify I²C bus name
// ("/dev/i2c-2", "I2C2", "2"). By default, the bus name is "", which selects
// the first available bus.
func OnBus(name string) Option {
	return func(c *config) Option {
		old := c.bus
		c.bus = name
		return OnBus(old)
	}
}

// OnAddr can be used to specify alternative I²C address (tsl2561.AddrLow or
// tsl2561.AddrHigh). By default, the address is 0x39.
func OnAddr(addr tsl2561.Addr) Option {
	return func(c *config) Option {
		old := c.addr
		c.addr = addr
		return OnAddr(old)
	}
}

// WithLogger sets the logger used for lifecycle events. By default, nothing
// is logged.
func WithLogger(log *logrus.Entry) Option {
	return func(c *config) Option {
		old := c.log
		c.log = log
		return WithLogger(old)
	}
}

// WithTiming writes the integration time and gain right after power-on. By
// default, the timing register is left at its power-on value (402ms, 1x).
func WithTiming(integ tsl2561.IntegrationTime, gain tsl2561.Gain) Option {
	return restoreTiming(&timing{integ: integ, gain: gain})
}

func restoreTiming(t *timing) Option {
	return func(c *config) Option {
		old := c.timing
		c.timing = t
		return restoreTiming(old)
	}
}

// WindowSize sets how many samples Window statistics are computed over. By
// default, the last 16 samples are kept.
func WindowSize(n int) Option {
	return func(c *config) Option {
		old := c.window
		c.window = n
		return WindowSize(old)
	}
}

package tsl2561

// Handle addresses a TSL2561 without holding on to its bus. Every call takes
// the bus explicitly, so the caller decides which bus (and which lock) each
// transaction goes through.
//
// Handle keeps no copy of the device registers: the device is the only source
// of truth for its configuration and readings.
type Handle struct {
	addr Addr
}

// NewHandle returns a Handle for the device at addr. A zero addr selects
// DefaultAddr. The device is not touched.
func NewHandle(addr Addr) Handle {
	if addr == 0 {
		addr = DefaultAddr
	}
	return Handle{addr: addr}
}

// Addr returns the slave address of the device.
func (h Handle) Addr() Addr {
	return h.addr
}

// PowerOn powers the device up. Readings start from zero and are not
// available until one integration period has passed (402ms by default).
func (h Handle) PowerOn(bus Bus) error {
	return h.write(bus, Control, PowerUp)
}

// PowerOff powers the device down. The device clears its readings and its
// timing register.
func (h Handle) PowerOff(bus Bus) error {
	return h.write(bus, Control, PowerDown)
}

// Raw returns the raw ADC count of ch.
func (h Handle) Raw(bus Bus, ch Channel) (uint16, error) {
	w := [1]byte{NewCommand(ch.Register()).WithWord().Byte()}
	var r [2]byte
	if err := bus.Tx(uint16(h.addr), w[:], r[:]); err != nil {
		return 0, err
	}
	return DecodeWord(r[0], r[1]), nil
}

// VisibleAndIR returns the raw count of channel 0 (visible and infrared).
func (h Handle) VisibleAndIR(bus Bus) (uint16, error) {
	return h.Raw(bus, Channel0)
}

// IR returns the raw count of channel 1 (infrared only).
func (h Handle) IR(bus Bus) (uint16, error) {
	return h.Raw(bus, Channel1)
}

// SetTiming sets the integration time and gain in a single write. The new
// settings apply from the start of the next integration period.
func (h Handle) SetTiming(bus Bus, integ IntegrationTime, gain Gain) error {
	return h.write(bus, Timing, TimingByte(integ, gain))
}

func (h Handle) write(bus Bus, reg Register, data byte) error {
	w := [2]byte{NewCommand(reg).Byte(), data}
	return bus.Tx(uint16(h.addr), w[:], nil)
}

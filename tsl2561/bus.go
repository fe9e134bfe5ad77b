package tsl2561

import (
	"periph.io/x/periph/conn/i2c"
	"tinygo.org/x/drivers"
)

// Bus is the transport the driver talks through. Tx writes w to the peer at
// addr and then, if r is not empty, reads len(r) bytes back within the same
// transaction. A nil r is a plain write.
//
// Access to a Bus shared by several devices must be serialized by the caller.
type Bus interface {
	Tx(addr uint16, w, r []byte) error
}

// Host (periph.io) and MCU (TinyGo) buses are used as-is.
var (
	_ Bus = (i2c.Bus)(nil)
	_ Bus = (drivers.I2C)(nil)
)

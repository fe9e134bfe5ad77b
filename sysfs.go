package tsl256x

import (
	"errors"
	"fmt"
	"io"

	"github.com/cgxeiji/tsl256x/tsl2561"
	goi2c "github.com/swdee/go-i2c"
)

// ErrAddrMismatch is returned by a sysfs backed device when a transaction
// targets an address other than the one the connection was opened for.
var ErrAddrMismatch = errors.New("tsl256x: address does not match the I2C connection")

// sysfsConn is the part of a go-i2c connection the adapter uses.
type sysfsConn interface {
	GetAddr() uint8
	WriteBytes(buf []byte) (int, error)
	ReadBytes(buf []byte) (int, error)
	WriteThenReadBytes(writeBuf, readBuf []byte) (int, int, error)
}

var _ sysfsConn = (*goi2c.Options)(nil)

// sysfsBus adapts a /dev/i2c-N connection bound to a single slave address.
// A write followed by a read is sent as one I2C_RDWR transfer, with a
// repeated start and no stop in between.
type sysfsBus struct {
	conn sysfsConn
}

func (b sysfsBus) Tx(addr uint16, w, r []byte) error {
	if addr != uint16(b.conn.GetAddr()) {
		return ErrAddrMismatch
	}

	switch {
	case len(w) > 0 && len(r) > 0:
		nw, nr, err := b.conn.WriteThenReadBytes(w, r)
		if err != nil {
			return err
		}
		if nw < len(w) {
			return io.ErrShortWrite
		}
		if nr < len(r) {
			return io.ErrUnexpectedEOF
		}
	case len(w) > 0:
		n, err := b.conn.WriteBytes(w)
		if err != nil {
			return err
		}
		if n < len(w) {
			return io.ErrShortWrite
		}
	case len(r) > 0:
		n, err := b.conn.ReadBytes(r)
		if err != nil {
			return err
		}
		if n < len(r) {
			return io.ErrUnexpectedEOF
		}
	}

	return nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// NewSysfs returns a new TSL256x device that has been powered on, using an
// already open go-i2c connection. The connection address is used unless
// OnAddr is given. Close does not close conn.
func NewSysfs(conn *goi2c.Options, opts ...Option) (*Device, error) {
	c := newConfig(opts)
	if c.addr == 0 {
		c.addr = tsl2561.Addr(conn.GetAddr())
	}
	return open(sysfsBus{conn: conn}, nil, c)
}

// OpenSysfs opens the I²C character device at path ("/dev/i2c-1") for the
// configured address and returns a new TSL256x device that has been powered
// on. Close also closes the connection.
func OpenSysfs(path string, opts ...Option) (*Device, error) {
	c := newConfig(opts)
	if c.addr == 0 {
		c.addr = tsl2561.DefaultAddr
	}

	conn, err := goi2c.New(uint8(c.addr), path)
	if err != nil {
		return nil, fmt.Errorf("tsl256x: could not open %s: %w", path, err)
	}
	c.log.WithField("bus", path).Debug("opened sysfs I2C connection")

	closer := closerFunc(conn.Close)

	d, err := open(sysfsBus{conn: conn}, closer, c)
	if err != nil {
		closer.Close()
		return nil, err
	}

	return d, nil
}

package tsl256x

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// fakeConn records the calls a go-i2c connection receives.
type fakeConn struct {
	addr  uint8
	calls []string
	w     []byte
	resp  []byte
	short bool
	err   error
}

func (c *fakeConn) GetAddr() uint8 { return c.addr }

func (c *fakeConn) WriteBytes(buf []byte) (int, error) {
	c.calls = append(c.calls, "write")
	c.w = append([]byte(nil), buf...)
	if c.short {
		return len(buf) - 1, c.err
	}
	return len(buf), c.err
}

func (c *fakeConn) ReadBytes(buf []byte) (int, error) {
	c.calls = append(c.calls, "read")
	n := copy(buf, c.resp)
	if c.short {
		n--
	}
	return n, c.err
}

func (c *fakeConn) WriteThenReadBytes(w, r []byte) (int, int, error) {
	c.calls = append(c.calls, "write+read")
	c.w = append([]byte(nil), w...)
	nr := copy(r, c.resp)
	if c.short {
		nr--
	}
	return len(w), nr, c.err
}

func TestSysfsReadIsOneTransfer(t *testing.T) {
	conn := &fakeConn{addr: 0x39, resp: []byte{0x05, 0x01}}
	var r [2]byte
	if err := (sysfsBus{conn: conn}).Tx(0x39, []byte{0xAE}, r[:]); err != nil {
		t.Fatal(err)
	}
	if len(conn.calls) != 1 || conn.calls[0] != "write+read" {
		t.Errorf("got calls %v, want a single combined transfer", conn.calls)
	}
	if !bytes.Equal(conn.w, []byte{0xAE}) || r != [2]byte{0x05, 0x01} {
		t.Errorf("wrote %#v, read %#v", conn.w, r)
	}
}

func TestSysfsWrite(t *testing.T) {
	conn := &fakeConn{addr: 0x29}
	if err := (sysfsBus{conn: conn}).Tx(0x29, []byte{0x80, 0x03}, nil); err != nil {
		t.Fatal(err)
	}
	if len(conn.calls) != 1 || conn.calls[0] != "write" || !bytes.Equal(conn.w, []byte{0x80, 0x03}) {
		t.Errorf("got calls %v writing %#v", conn.calls, conn.w)
	}
}

func TestSysfsAddrMismatch(t *testing.T) {
	conn := &fakeConn{addr: 0x39}
	if err := (sysfsBus{conn: conn}).Tx(0x49, []byte{0x80, 0x03}, nil); err != ErrAddrMismatch {
		t.Fatalf("got error %v, want %v", err, ErrAddrMismatch)
	}
	if len(conn.calls) != 0 {
		t.Errorf("connection was used: %v", conn.calls)
	}
}

func TestSysfsShortTransfers(t *testing.T) {
	conn := &fakeConn{addr: 0x39, short: true, resp: []byte{0x10, 0x00}}
	bus := sysfsBus{conn: conn}

	if err := bus.Tx(0x39, []byte{0x80, 0x03}, nil); err != io.ErrShortWrite {
		t.Errorf("short write: got %v", err)
	}
	var r [2]byte
	if err := bus.Tx(0x39, []byte{0xAC}, r[:]); err != io.ErrUnexpectedEOF {
		t.Errorf("short combined read: got %v", err)
	}
	if err := bus.Tx(0x39, nil, r[:]); err != io.ErrUnexpectedEOF {
		t.Errorf("short read: got %v", err)
	}
}

func TestSysfsErrorPassesThrough(t *testing.T) {
	conn := &fakeConn{addr: 0x39, err: errNack}
	var r [2]byte
	if err := (sysfsBus{conn: conn}).Tx(0x39, []byte{0xAC}, r[:]); err != errNack {
		t.Fatalf("got error %v, want %v unchanged", err, errNack)
	}
}

func TestSysfsDevice(t *testing.T) {
	conn := &fakeConn{addr: 0x49, resp: []byte{0x10, 0x00}}
	d, err := open(sysfsBus{conn: conn}, nil, newConfig([]Option{OnAddr(0x49)}))
	if err != nil {
		t.Fatal(err)
	}
	v, err := d.VisibleAndIR()
	if err != nil {
		t.Fatal(err)
	}
	if v != 16 {
		t.Errorf("got %d, want 16", v)
	}
	want := []string{"write", "write+read"}
	if len(conn.calls) != len(want) || conn.calls[0] != want[0] || conn.calls[1] != want[1] {
		t.Errorf("got calls %v, want %v", conn.calls, want)
	}
}

func TestCloseReportsBusCloseError(t *testing.T) {
	errClose := errors.New("close failed")
	conn := &fakeConn{addr: 0x39}
	d, err := open(sysfsBus{conn: conn}, closerFunc(func() error { return errClose }), newConfig(nil))
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Close(); err != errClose {
		t.Errorf("got error %v, want %v", err, errClose)
	}
}

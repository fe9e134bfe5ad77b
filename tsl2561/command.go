package tsl2561

// Command is the first byte of every transaction. It selects the target
// register and the transfer mode.
type Command struct {
	Register Register
	// Word requests a two byte SMBus word transfer starting at Register.
	Word bool
	// Clear clears any pending interrupt.
	Clear bool
	// Block requests an SMBus block transfer.
	Block bool
}

// NewCommand returns a byte-protocol command for reg with no flags set.
func NewCommand(reg Register) Command {
	return Command{Register: reg}
}

// WithWord returns c with the word protocol flag set.
func (c Command) WithWord() Command {
	c.Word = true
	return c
}

// WithClear returns c with the clear interrupt flag set.
func (c Command) WithClear() Command {
	c.Clear = true
	return c
}

// WithBlock returns c with the block protocol flag set.
func (c Command) WithBlock() Command {
	c.Block = true
	return c
}

// Byte encodes the command. The command bit (7) is always set.
func (c Command) Byte() byte {
	b := c.Register.Addr() | cmdValid
	if c.Clear {
		b |= cmdClear
	}
	if c.Word {
		b |= cmdWord
	}
	if c.Block {
		b |= cmdBlock
	}
	return b
}

// DecodeWord assembles a little-endian 16 bit value.
func DecodeWord(lo, hi byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// EncodeWord splits v into its little-endian bytes.
func EncodeWord(v uint16) (lo, hi byte) {
	return byte(v), byte(v >> 8)
}

// TimingByte packs the integration time (bits 0-1) and the gain (bit 4) into
// the timing register value.
func TimingByte(integ IntegrationTime, gain Gain) byte {
	return byte(integ)&0b11 | (byte(gain)&0b1)<<4
}

package tsl2561

import (
	"fmt"
	"time"
)

// Register identifies one of the device registers reachable through the
// command byte.
type Register uint8

// Register addresses
const (
	Control        Register = 0x0
	Timing         Register = 0x1
	ThreshLowLow   Register = 0x2
	ThreshLowHigh  Register = 0x3
	ThreshHighLow  Register = 0x4
	ThreshHighHigh Register = 0x5
	Interrupt      Register = 0x6
	CRC            Register = 0x8
	ID             Register = 0xA
	Data0Low       Register = 0xC
	Data0High      Register = 0xD
	Data1Low       Register = 0xE
	Data1High      Register = 0xF
)

// Registers lists every register the device defines, in address order.
var Registers = []Register{
	Control, Timing,
	ThreshLowLow, ThreshLowHigh, ThreshHighLow, ThreshHighHigh,
	Interrupt, CRC, ID,
	Data0Low, Data0High, Data1Low, Data1High,
}

const regMask byte = 0b0000_1111

// Addr returns the 4-bit address of the register.
func (r Register) Addr() byte {
	return byte(r) & regMask
}

func (r Register) String() string {
	switch r {
	case Control:
		return "CONTROL"
	case Timing:
		return "TIMING"
	case ThreshLowLow:
		return "THRESHLOWLOW"
	case ThreshLowHigh:
		return "THRESHLOWHIGH"
	case ThreshHighLow:
		return "THRESHHIGHLOW"
	case ThreshHighHigh:
		return "THRESHHIGHHIGH"
	case Interrupt:
		return "INTERRUPT"
	case CRC:
		return "CRC"
	case ID:
		return "ID"
	case Data0Low:
		return "DATA0LOW"
	case Data0High:
		return "DATA0HIGH"
	case Data1Low:
		return "DATA1LOW"
	case Data1High:
		return "DATA1HIGH"
	}
	return fmt.Sprintf("Register(%#x)", uint8(r))
}

// Command byte flags
const (
	cmdBlock byte = (1 << 4)
	cmdWord  byte = (1 << 5)
	cmdClear byte = (1 << 6)
	cmdValid byte = (1 << 7)
)

// Control register payloads
const (
	PowerUp   byte = 0x03
	PowerDown byte = 0x00
)

// Addr is the I²C slave address selected by the ADDR SEL pin.
type Addr uint16

// Slave addresses
const (
	AddrLow   Addr = 0x29 // ADDR SEL tied to ground
	AddrFloat Addr = 0x39 // ADDR SEL floating
	AddrHigh  Addr = 0x49 // ADDR SEL tied to VDD

	DefaultAddr = AddrFloat
)

func (a Addr) String() string {
	return fmt.Sprintf("%#x", uint16(a))
}

// IntegrationTime is the nominal integration time of the ADC.
//
// Manual integration (start/stop through the timing register) is a feature of
// the device but not of this driver.
type IntegrationTime uint8

// Integration times
const (
	Integ13ms  IntegrationTime = 0 // 13.7 ms
	Integ101ms IntegrationTime = 1 // 101 ms
	Integ402ms IntegrationTime = 2 // 402 ms (default)
)

// Duration returns the length of one integration period. Readings taken
// before one full period has elapsed since power-on, or since the settings
// changed, are not meaningful.
func (i IntegrationTime) Duration() time.Duration {
	switch i {
	case Integ13ms:
		return 13700 * time.Microsecond
	case Integ101ms:
		return 101 * time.Millisecond
	default:
		return 402 * time.Millisecond
	}
}

func (i IntegrationTime) String() string {
	switch i {
	case Integ13ms:
		return "13.7ms"
	case Integ101ms:
		return "101ms"
	case Integ402ms:
		return "402ms"
	}
	return fmt.Sprintf("IntegrationTime(%d)", uint8(i))
}

// Gain is the analog gain of the ADC.
type Gain uint8

// Gains
const (
	GainLow  Gain = 0 // 1x (default)
	GainHigh Gain = 1 // 16x
)

// Multiplier returns the gain factor.
func (g Gain) Multiplier() int {
	if g == GainHigh {
		return 16
	}
	return 1
}

func (g Gain) String() string {
	switch g {
	case GainLow:
		return "1x"
	case GainHigh:
		return "16x"
	}
	return fmt.Sprintf("Gain(%d)", uint8(g))
}

// Channel selects one of the two photodiode ADC channels.
type Channel uint8

// ADC channels
const (
	Channel0 Channel = 0 // visible + infrared
	Channel1 Channel = 1 // infrared only
)

// Register returns the low data register of the channel. A word read from
// it returns both bytes of the count.
func (c Channel) Register() Register {
	if c == Channel1 {
		return Data1Low
	}
	return Data0Low
}

func (c Channel) String() string {
	if c == Channel1 {
		return "IR"
	}
	return "visible+IR"
}

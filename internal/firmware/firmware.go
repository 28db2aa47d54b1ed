// Package firmware holds the sample firmware logic exercised by the
// firmbench demo suite. It talks only to the stand-in APIs, the same
// way real firmware logic under test would.
package firmware

import (
	"firmbench-go/stubs/board"
	"firmbench-go/stubs/console"
	"firmbench-go/stubs/httpc"
	"firmbench-go/stubs/spiffs"
	"firmbench-go/x/strbuf"

	"tinygo.org/x/drivers"
)

// Banner starts the console and prints a boot banner.
func Banner(c *console.Console, baud int) {
	c.Begin(baud)
	c.Println("firmbench demo boot")
}

// Blink drives pin through cycles of high/low with the given period.
func Blink(b *board.Board, pin, cycles int, periodMs uint32) {
	b.PinMode(pin, board.Output)
	for i := 0; i < cycles; i++ {
		b.DigitalWrite(pin, board.High)
		b.Delay(periodMs)
		b.DigitalWrite(pin, board.Low)
		b.Delay(periodMs)
	}
}

// ReadSensor triggers a measurement on an I2C device and returns the
// big-endian 16-bit reading. It sees only the drivers.I2C interface,
// so any bus implementation can sit behind it.
func ReadSensor(bus drivers.I2C, addr uint16) (int, error) {
	if err := bus.Tx(addr, []byte{0xac, 0x33, 0x00}, nil); err != nil {
		return 0, err
	}
	r := make([]byte, 2)
	if err := bus.Tx(addr, nil, r); err != nil {
		return 0, err
	}
	return int(r[0])<<8 | int(r[1]), nil
}

// FetchStatus performs one request cycle and returns the status code
// and body.
func FetchStatus(c *httpc.Client, url string) (int, *strbuf.S) {
	c.SetTimeout(5000)
	c.Begin(url)
	code := c.Get()
	body := c.GetString()
	c.End()
	return code, body
}

// DumpConfigLine reads one line of the stored config file to the
// console and returns it. A missing file is not possible here: the
// filesystem stand-in opens anything.
func DumpConfigLine(fs *spiffs.FS, path string, c *console.Console) *strbuf.S {
	f := fs.Open(path, "r")
	defer f.Close()
	line := f.ReadStringUntil('\n')
	c.PrintlnS(line)
	return line
}

// stubs/board/i2c.go
package board

import "tinygo.org/x/drivers"

// I2CTx records one bus transaction.
type I2CTx struct {
	Addr uint16
	W    []byte
	Rn   int // requested read length
}

// I2C is a recording implementation of drivers.I2C. Writes are
// copied into the transaction log; reads are filled with ReadByte.
// Like the rest of the board stand-ins it performs no real I/O and
// always succeeds.
type I2C struct {
	Txs      []I2CTx
	ReadByte byte // canned fill for read buffers
}

var _ drivers.I2C = (*I2C)(nil)

// NewI2C returns an empty bus recorder.
func NewI2C() *I2C { return &I2C{} }

func (b *I2C) Tx(addr uint16, w, r []byte) error {
	b.Txs = append(b.Txs, I2CTx{
		Addr: addr,
		W:    append([]byte(nil), w...),
		Rn:   len(r),
	})
	for i := range r {
		r[i] = b.ReadByte
	}
	return nil
}

// Reset clears the transaction log and the canned read byte.
func (b *I2C) Reset() {
	b.Txs = nil
	b.ReadByte = 0
}

package board

import "testing"

func TestDigitalReadLastWriteWins(t *testing.T) {
	b := New()
	b.DigitalWrite(5, High)
	b.DigitalWrite(5, Low)

	if got := b.DigitalRead(5); got != Low {
		t.Fatalf("DigitalRead(5) = %d, want %d", got, Low)
	}
	if len(b.Writes) != 2 {
		t.Fatalf("expected 2 recorded writes, got %d", len(b.Writes))
	}
	if b.Writes[0] != (WriteCall{Pin: 5, Level: High}) || b.Writes[1] != (WriteCall{Pin: 5, Level: Low}) {
		t.Fatalf("write order wrong: %v", b.Writes)
	}
}

func TestDigitalReadUnwrittenDefaultsLow(t *testing.T) {
	b := New()
	if got := b.DigitalRead(13); got != Low {
		t.Fatalf("unwritten pin reads %d, want %d", got, Low)
	}
}

func TestPinModeRecordsOnly(t *testing.T) {
	b := New()
	b.DigitalWrite(2, High)
	b.PinMode(2, Input)

	if got := b.DigitalRead(2); got != High {
		t.Fatalf("PinMode changed pin state: read %d", got)
	}
	if len(b.Modes) != 1 || b.Modes[0] != (ModeCall{Pin: 2, Mode: Input}) {
		t.Fatalf("mode record wrong: %v", b.Modes)
	}
}

func TestDelayRecordsWithoutSleeping(t *testing.T) {
	b := New()
	before := b.Millis()
	b.Delay(5000)
	b.Delay(250)

	if len(b.Delays) != 2 || b.Delays[0] != 5000 || b.Delays[1] != 250 {
		t.Fatalf("delay records wrong: %v", b.Delays)
	}
	// A 5s delay request must not consume 5s of wall time.
	if b.Millis()-before > 1000 {
		t.Fatalf("Delay appears to have actually slept")
	}
}

func TestMillisMonotonic(t *testing.T) {
	b := New()
	prev := b.Millis()
	for i := 0; i < 100; i++ {
		now := b.Millis()
		if now < prev {
			t.Fatalf("Millis went backwards: %d -> %d", prev, now)
		}
		prev = now
	}
}

func TestResetClearsEverything(t *testing.T) {
	b := New()
	b.PinMode(1, Output)
	b.DigitalWrite(1, High)
	b.Delay(10)
	b.Reset()

	if len(b.Writes) != 0 || len(b.Modes) != 0 || len(b.Delays) != 0 {
		t.Fatalf("records survived Reset: %v %v %v", b.Writes, b.Modes, b.Delays)
	}
	if got := b.DigitalRead(1); got != Low {
		t.Fatalf("pin table survived Reset: read %d", got)
	}
	if ms := b.Millis(); ms > 100 {
		t.Fatalf("Millis after Reset = %d, want ~0", ms)
	}
}

func TestI2CRecordsAndFillsReads(t *testing.T) {
	bus := NewI2C()
	bus.ReadByte = 0x5a

	r := make([]byte, 3)
	if err := bus.Tx(0x38, []byte{0xac, 0x33}, r); err != nil {
		t.Fatalf("Tx error: %v", err)
	}
	for i, v := range r {
		if v != 0x5a {
			t.Fatalf("read[%d] = %#x, want 0x5a", i, v)
		}
	}
	if len(bus.Txs) != 1 {
		t.Fatalf("expected 1 recorded tx, got %d", len(bus.Txs))
	}
	tx := bus.Txs[0]
	if tx.Addr != 0x38 || tx.Rn != 3 || len(tx.W) != 2 || tx.W[0] != 0xac {
		t.Fatalf("tx record wrong: %+v", tx)
	}

	bus.Reset()
	if len(bus.Txs) != 0 || bus.ReadByte != 0 {
		t.Fatalf("I2C Reset incomplete")
	}
}

func TestI2CWriteBufferIsCopied(t *testing.T) {
	bus := NewI2C()
	w := []byte{1, 2}
	_ = bus.Tx(0x10, w, nil)
	w[0] = 99
	if bus.Txs[0].W[0] != 1 {
		t.Fatalf("recorded write aliases caller buffer")
	}
}

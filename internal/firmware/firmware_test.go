package firmware

import (
	"testing"

	"firmbench-go/stubs/board"

	"tinygo.org/x/drivers"
)

func TestReadSensorOverDriversInterface(t *testing.T) {
	rec := board.NewI2C()
	rec.ReadByte = 0x34

	// The routine must accept any drivers.I2C, not the recorder type.
	var bus drivers.I2C = rec
	v, err := ReadSensor(bus, 0x38)
	if err != nil {
		t.Fatalf("ReadSensor error: %v", err)
	}
	if v != 0x3434 {
		t.Fatalf("reading = %#x, want 0x3434", v)
	}
	if len(rec.Txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(rec.Txs))
	}
	if rec.Txs[0].Addr != 0x38 || len(rec.Txs[0].W) != 3 {
		t.Fatalf("trigger tx wrong: %+v", rec.Txs[0])
	}
	if rec.Txs[1].Rn != 2 {
		t.Fatalf("read tx wrong: %+v", rec.Txs[1])
	}
}

func TestBlinkWriteSequence(t *testing.T) {
	b := board.New()
	Blink(b, 7, 1, 100)

	if len(b.Writes) != 2 || b.Writes[0].Level != board.High || b.Writes[1].Level != board.Low {
		t.Fatalf("blink writes wrong: %v", b.Writes)
	}
	if b.DigitalRead(7) != board.Low {
		t.Fatalf("pin should end low")
	}
}

package cli

import (
	"firmbench-go/harness"
	"firmbench-go/internal/config"
	"firmbench-go/internal/firmware"
	"firmbench-go/stubs/board"
	"firmbench-go/stubs/console"
	"firmbench-go/stubs/httpc"
	"firmbench-go/stubs/spiffs"
)

// registerBenchSuite registers the built-in demonstration suite:
// each test constructs its own stand-ins from the profile, exercises
// a firmware routine and checks the recorded calls. Nothing is
// shared between tests, so no reset discipline is needed.
func registerBenchSuite(r *harness.Runner, p *config.Profile) {
	r.Register("console.banner", func(t *harness.T) {
		c := console.New()
		firmware.Banner(c, p.Console.Baud)

		harness.Equal(t, c.Baud, p.Console.Baud, "configured baud")
		harness.Equal(t, c.BeginCalls, 1, "begin count")
		t.StrEqual(c.Output(), "firmbench demo boot\n", "boot banner")
	})

	r.Register("board.blink", func(t *harness.T) {
		b := board.New()
		firmware.Blink(b, 5, 2, 250)

		harness.Equal(t, len(b.Modes), 1, "one mode call")
		harness.Equal(t, b.Modes[0], board.ModeCall{Pin: 5, Mode: board.Output}, "mode call")
		harness.RequireEqual(t, len(b.Writes), 4, "write count")
		harness.Equal(t, b.Writes[0], board.WriteCall{Pin: 5, Level: board.High}, "first write")
		harness.Equal(t, b.Writes[3], board.WriteCall{Pin: 5, Level: board.Low}, "last write")
		harness.Equal(t, b.DigitalRead(5), board.Low, "level after blink")
		harness.Equal(t, len(b.Delays), 4, "delay count")
		// Simulated delays must not consume wall time.
		harness.Less(t, b.Millis(), int64(1000), "elapsed stays near zero")
	})

	r.Register("board.sensor_read", func(t *harness.T) {
		bus := board.NewI2C()
		bus.ReadByte = 0x12
		v, err := firmware.ReadSensor(bus, 0x38)

		t.True(err == nil, "sensor read never fails on the stand-in")
		harness.Equal(t, v, 0x1212, "combined reading")
		harness.RequireEqual(t, len(bus.Txs), 2, "two transactions")
		harness.Equal(t, bus.Txs[0].Addr, uint16(0x38), "trigger address")
		harness.Equal(t, bus.Txs[1].Rn, 2, "read length")
	})

	r.Register("http.fetch_status", func(t *harness.T) {
		c := httpc.New()
		c.SetResponseCode(p.HTTP.ResponseCode)
		c.SetResponseBody(p.HTTP.ResponseBody)
		code, body := firmware.FetchStatus(c, "http://bench.local/status")

		harness.Equal(t, code, p.HTTP.ResponseCode, "status code")
		t.StrEqual(body.String(), p.HTTP.ResponseBody, "body")
		t.StrEqual(c.LastURL, "http://bench.local/status", "recorded url")
		harness.Equal(t, c.EndCalls, 1, "request ended")
	})

	r.Register("fs.dump_config", func(t *harness.T) {
		fs := spiffs.New()
		fs.AvailableCount = p.FS.AvailableCount
		fs.DataByte = p.FS.DataByte[0]
		c := console.New()
		line := firmware.DumpConfigLine(fs, "/config.txt", c)

		harness.Equal(t, line.Len(), p.FS.AvailableCount, "line length matches available data")
		harness.Equal(t, len(fs.Opens), 1, "one open")
		t.StrEqual(fs.Opens[0].Path, "/config.txt", "opened path")
		harness.Equal(t, c.PrintlnCalls, 1, "line echoed to console")
	})
}

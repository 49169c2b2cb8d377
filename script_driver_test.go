package main

import (
	"strings"
	"testing"
)

func TestScriptDrivesTimerBench(t *testing.T) {
	bus := newTestBus(t)
	driver := NewScriptDriver(bus)

	err := driver.RunString(`
		poke(0x400044, 50)       -- TIMER_LOAD
		poke(0x400040, 0x1)      -- TIMER_CTRL: EN, one-shot
		step(49)
		assert(not timeout(), "early timeout")
		step(1)
		assert(timeout(), "missing timeout")
		poke(0x40004C, 0x1)      -- TIMER_STATUS: W1C
		assert(not timeout(), "W1C failed")
	`)
	if err != nil {
		t.Fatalf("bench script failed: %v", err)
	}
}

func TestScriptGpioAndSerial(t *testing.T) {
	bus := newTestBus(t)
	driver := NewScriptDriver(bus)

	err := driver.RunString(`
		gpio_in(0xAA)
		poke(0x400024, 0x0F)     -- GPIO_DIR
		poke(0x400020, 0x0A)     -- GPIO_DATA
		local v = peek(0x400028) -- GPIO_READ
		assert(v == 0xAA, string.format("merged read 0x%X", v))
		poke(0x400004, 0x4F)     -- SERIAL_TX 'O'
		poke(0x400004, 0x4B)     -- SERIAL_TX 'K'
		assert(drain() == "OK", "serial drain mismatch")
	`)
	if err != nil {
		t.Fatalf("bench script failed: %v", err)
	}
}

func TestScriptResetBinding(t *testing.T) {
	bus := newTestBus(t)
	driver := NewScriptDriver(bus)

	err := driver.RunString(`
		poke(0x400044, 10)
		poke(0x400040, 0x1)
		step(20)
		assert(timeout())
		reset()
		assert(not timeout(), "timeout survived reset")
		assert(peek(0x400044) == 0, "LOAD survived reset")
	`)
	if err != nil {
		t.Fatalf("bench script failed: %v", err)
	}
}

func TestScriptFailureSurfacesAsError(t *testing.T) {
	bus := newTestBus(t)
	driver := NewScriptDriver(bus)

	err := driver.RunString(`assert(false, "bench expectation failed")`)
	if err == nil {
		t.Fatal("failing script returned nil error")
	}
	if !strings.Contains(err.Error(), "bench expectation failed") {
		t.Errorf("error %q does not carry the assertion message", err)
	}
}

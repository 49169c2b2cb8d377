package main

import "testing"

func newTestBus(t *testing.T) *SystemBus {
	t.Helper()
	core, err := NewIOCore()
	if err != nil {
		t.Fatalf("NewIOCore: %v", err)
	}
	return NewSystemBus(core)
}

func TestSystemBusMemoryReadWrite(t *testing.T) {
	bus := newTestBus(t)

	bus.Write32(0x1000, 0x12345678)
	if got := bus.Read32(0x1000); got != 0x12345678 {
		t.Errorf("Read32(0x1000) = 0x%08X, want 0x12345678", got)
	}

	// Little-endian byte order in backing memory.
	bus.Write32(0x2000, 0xAABBCCDD)
	if bus.memory[0x2000] != 0xDD || bus.memory[0x2003] != 0xAA {
		t.Errorf("bytes at 0x2000 = % X, want little-endian DD CC BB AA", bus.memory[0x2000:0x2004])
	}

	// RAM accesses must not consume clock ticks.
	if n := bus.Core().Ticks(); n != 0 {
		t.Errorf("RAM traffic advanced the clock by %d ticks", n)
	}
}

func TestSystemBusOutOfRangeMemory(t *testing.T) {
	bus := newTestBus(t)
	top := uint32(DEFAULT_MEMORY_SIZE)
	bus.Write32(top-2, 0xFFFFFFFF) // straddles the end: dropped
	if got := bus.Read32(top - 2); got != 0 {
		t.Errorf("straddling read = 0x%X, want 0", got)
	}
}

func TestSystemBusIORouting(t *testing.T) {
	bus := newTestBus(t)

	bus.Write32(TIMER_LOAD, 10)
	if got := bus.Read32(TIMER_LOAD); got != 10 {
		t.Errorf("TIMER_LOAD readback = %d, want 10", got)
	}
	// The LOAD write took one tick, the read two.
	if n := bus.Core().Ticks(); n != 3 {
		t.Errorf("ticks = %d after write+read, want 3", n)
	}
}

// The firmware sequence from the modeled system's GPIO test: configure
// the low nibble as outputs, drive 0b1010, and read back the merged pin
// state with 0xAA on the external pins.
func TestSystemBusGpioFirmwareSequence(t *testing.T) {
	bus := newTestBus(t)
	bus.SetGpioInput(0xAA)

	bus.Write32(GPIO_DIR, 0x0F)
	bus.Write32(GPIO_DATA, 0x0A)
	if got := bus.Read32(GPIO_READ); got != 0xAA {
		t.Errorf("GPIO READ = 0x%02X, want 0xAA", got)
	}

	out := bus.Outputs()
	if out.GpioOut != 0x0A || out.GpioDir != 0x0F {
		t.Errorf("pin outputs = (0x%X, 0x%X), want (0x0A, 0x0F)", out.GpioOut, out.GpioDir)
	}
}

func TestSystemBusTimerCountdown(t *testing.T) {
	bus := newTestBus(t)

	bus.Write32(TIMER_LOAD, 100)
	bus.Write32(TIMER_CTRL, TIMER_CTRL_EN)
	if bus.TimerTimeout() {
		t.Fatal("timeout asserted immediately after enable")
	}

	bus.Step(99)
	if bus.TimerTimeout() {
		t.Fatal("timeout asserted before the countdown elapsed")
	}
	bus.Step(1)
	if !bus.TimerTimeout() {
		t.Fatal("timeout missing after LOAD ticks")
	}

	bus.Write32(TIMER_STATUS, TIMER_STATUS_TIMEOUT)
	if bus.TimerTimeout() {
		t.Fatal("W1C through the bus did not clear the timeout")
	}
}

func TestSystemBusUnmappedIOReadsZero(t *testing.T) {
	bus := newTestBus(t)
	bus.Write32(GPIO_DATA, 0x77)
	if got := bus.Read32(IO_BASE + 0x200); got != 0 {
		t.Errorf("unmapped I/O read = 0x%X, want 0", got)
	}
}

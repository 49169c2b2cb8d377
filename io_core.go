// io_core.go - Synchronous I/O core (tick engine and readback mux) for IntuitionCore

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

/*
io_core.go - Synchronous I/O Core

The I/O core is the single-clock-domain heart of IntuitionCore. An
external driver presents one bus transaction per tick; the decode table
computes per-device selects; every device advances its state synchronously
on the same edge; and the selected device's registered read data appears
on the shared read bus one tick later.

Tick timing, matching the modeled RTL:

    - Register writes commit on the tick's edge and are visible to the
      device's own update logic from the next tick on.
    - A read request latches the addressed register as of the end of the
      same edge and is presented in the NEXT tick's output.
    - The timeout output is a level signal reflecting the flag after the
      current edge.

No operation blocks or spans multiple ticks. The core is not safe for
concurrent Tick calls; the host-facing devices (serial drain, monitor)
carry their own locks.
*/

package main

// BusCycle is one tick's bus transaction, produced and consumed within
// the tick. A non-zero WriteStrb means a write; Read means a read request
// whose data appears one tick later.
type BusCycle struct {
	Addr      uint32
	Read      bool
	WriteStrb uint8 // byte-enable mask, 0xF for a full word write
	WriteData uint32
}

// RegAccess is the decoded, per-device view of the current bus cycle.
type RegAccess struct {
	Sel       bool   // this device is addressed this tick
	Word      uint32 // register word offset within the device
	Read      bool
	WriteStrb uint8
	WriteData uint32
}

// IsWrite reports whether this access commits a register write.
func (a RegAccess) IsWrite() bool {
	return a.Sel && a.WriteStrb != 0
}

// IsRead reports whether this access latches read data.
func (a RegAccess) IsRead() bool {
	return a.Sel && a.Read
}

// IODevice is the per-peripheral contract: advance one clock with this
// tick's decoded access, expose the registered read latch, and reset.
// TickBus is called exactly once per tick for every device, selected or
// not, so devices with free-running state (the timer) keep counting.
type IODevice interface {
	TickBus(acc RegAccess)
	ReadLatch() uint32
	Reset()
}

// TickInput is everything the external driver presents for one tick.
type TickInput struct {
	ResetActive bool // active-low semantics: false means "in reset"
	Cycle       BusCycle
	GpioIn      uint32 // external pin-state vector for input-configured bits
}

// TickOutput is the core's registered outputs as seen during this tick.
// ReadData carries the data for a read requested on the previous tick.
type TickOutput struct {
	ReadData     uint32
	TimerTimeout bool // level-held until cleared via STATUS
	GpioOut      uint32
	GpioDir      uint32
}

// IOCore wires the decode table, the devices and the readback mux into
// the tick-level contract.
type IOCore struct {
	decoder *IODecoder
	timer   *TimerEngine
	gpio    *GpioEngine
	serial  *SerialOutput

	// Shared read bus register: the latch of whichever device was
	// selected by the most recent read request, zero if none was.
	readData uint32

	ticks uint64
}

// NewIOCore builds the core with the standard address map. The only
// possible error is a misconfigured (overlapping) map.
func NewIOCore() (*IOCore, error) {
	core := &IOCore{
		decoder: NewIODecoder(),
		timer:   NewTimerEngine(),
		gpio:    NewGpioEngine(),
		serial:  NewSerialOutput(),
	}
	if err := core.decoder.AddDevice("Serial", IORange{SERIAL_REGION_BASE, SERIAL_REGION_WORDS}, core.serial); err != nil {
		return nil, err
	}
	if err := core.decoder.AddDevice("GPIO", IORange{GPIO_REGION_BASE, GPIO_REGION_WORDS}, core.gpio); err != nil {
		return nil, err
	}
	if err := core.decoder.AddDevice("Timer", IORange{TIMER_REGION_BASE, TIMER_REGION_WORDS}, core.timer); err != nil {
		return nil, err
	}
	return core, nil
}

// Tick advances the core by one clock edge and returns the registered
// outputs as seen after that edge.
func (c *IOCore) Tick(in TickInput) TickOutput {
	if !in.ResetActive {
		c.Reset()
		return TickOutput{}
	}

	// The read bus presents the latch captured on a previous edge; sample
	// it before this edge can overwrite it.
	out := TickOutput{ReadData: c.readData}

	c.gpio.SetExternalPins(in.GpioIn)

	sel, word := c.decoder.Decode(in.Cycle.Addr)
	for i, m := range c.decoder.mappings {
		m.dev.TickBus(RegAccess{
			Sel:       i == sel,
			Word:      word,
			Read:      in.Cycle.Read,
			WriteStrb: in.Cycle.WriteStrb,
			WriteData: in.Cycle.WriteData,
		})
	}

	if in.Cycle.Read && IsIOAddress(in.Cycle.Addr) {
		if sel >= 0 {
			c.readData = c.decoder.mappings[sel].dev.ReadLatch()
		} else {
			// I/O read with no device selected: the read bus returns zero.
			c.readData = 0
		}
	}

	out.TimerTimeout = c.timer.Timeout()
	out.GpioOut, out.GpioDir = c.gpio.PinOutputs()
	c.ticks++
	return out
}

// Ticks returns the number of edges since the last reset.
func (c *IOCore) Ticks() uint64 {
	return c.ticks
}

// Timer exposes the timer engine for hosts and tests.
func (c *IOCore) Timer() *TimerEngine {
	return c.timer
}

// Gpio exposes the GPIO engine for hosts and tests.
func (c *IOCore) Gpio() *GpioEngine {
	return c.gpio
}

// Serial exposes the serial output device for hosts and tests.
func (c *IOCore) Serial() *SerialOutput {
	return c.serial
}

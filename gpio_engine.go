// gpio_engine.go - GPIO register block for IntuitionCore

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

// GPIO block: DATA holds the last written output value, DIR the per-bit
// direction (1 = output), and READ is the direction-merged pin state
//
//	(DATA & DIR) | (EXTERNAL_IN & ^DIR)
//
// READ is derived, never stored; writes to it are ignored. Reads are
// registered with one-cycle latency, matching the timer's read timing.

package main

import "sync"

// GpioEngine owns the GPIO register file and the externally supplied
// pin-state vector for input-configured bits.
type GpioEngine struct {
	mutex sync.Mutex

	data uint32
	dir  uint32

	extIn uint32 // pure input, owned by the external driver

	readLatch uint32
}

// NewGpioEngine returns a GPIO block in reset state (DATA and DIR zero,
// every pin an input).
func NewGpioEngine() *GpioEngine {
	return &GpioEngine{}
}

// SetExternalPins supplies the pin-state vector seen by input-configured
// bits. The core feeds this in every tick before the bus access.
func (g *GpioEngine) SetExternalPins(pins uint32) {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	g.extIn = pins
}

// TickBus advances the block by one clock edge. GPIO has no free-running
// state; only a selected access changes or latches anything.
func (g *GpioEngine) TickBus(acc RegAccess) {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if acc.IsWrite() {
		switch acc.Word {
		case GPIO_REG_DATA:
			g.data = acc.WriteData
		case GPIO_REG_DIR:
			g.dir = acc.WriteData
		case GPIO_REG_READ:
			// Read-only: writes are ignored.
		}
	}

	if acc.IsRead() {
		switch acc.Word {
		case GPIO_REG_DATA:
			g.readLatch = g.data
		case GPIO_REG_DIR:
			g.readLatch = g.dir
		case GPIO_REG_READ:
			g.readLatch = (g.data & g.dir) | (g.extIn &^ g.dir)
		default:
			g.readLatch = 0
		}
	}
}

// ReadLatch returns the registered read data captured by the most recent
// read access.
func (g *GpioEngine) ReadLatch() uint32 {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.readLatch
}

// PinOutputs returns the driven value and direction mask, for the core's
// tick-level outputs.
func (g *GpioEngine) PinOutputs() (data, dir uint32) {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	return g.data, g.dir
}

// component_reset.go - Reset() methods for all hardware components (hard reset support)

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

package main

// TimerEngine.Reset clears every register, the prescaler sub-counter and
// the timeout flag. CTRL=0 leaves the timer in preload state.
func (t *TimerEngine) Reset() {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.ctrl = 0
	t.load = 0
	t.value = 0
	t.prescCount = 0
	t.timeout = false
	t.readLatch = 0
}

// GpioEngine.Reset clears DATA and DIR (every pin an input). The external
// pin vector is an input owned by the driver and is left alone.
func (g *GpioEngine) Reset() {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	g.data = 0
	g.dir = 0
	g.readLatch = 0
}

// SerialOutput.Reset discards any undrained output.
func (s *SerialOutput) Reset() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.buffer = s.buffer[:0]
}

// IOCore.Reset resets every device, the shared read bus register and the
// tick counter. Invoked by a tick with ResetActive=false, or directly by
// the host for a hard reset.
func (c *IOCore) Reset() {
	for _, m := range c.decoder.mappings {
		m.dev.Reset()
	}
	c.readData = 0
	c.ticks = 0
}

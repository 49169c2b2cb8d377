// serial_out.go - Serial TX output device for IntuitionCore

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

// Serial TX: a single write-only register at IO base +0x04. The low byte
// of each write is appended to a host-drainable buffer. Firmware uses it
// as its debug console; the host prints whatever it drains. Reads return
// zero through the same registered path as every other device.

package main

import "sync"

const SERIAL_BUFFER_MAX = 64 * 1024 // drop oldest output beyond this

// SerialOutput implements the write-only serial TX device.
type SerialOutput struct {
	mutex  sync.Mutex
	buffer []byte
}

// NewSerialOutput creates an empty serial output device.
func NewSerialOutput() *SerialOutput {
	return &SerialOutput{buffer: make([]byte, 0, 256)}
}

// TickBus consumes one decoded bus access. Only the low byte of a write
// is meaningful; reads latch zero.
func (s *SerialOutput) TickBus(acc RegAccess) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if acc.IsWrite() && acc.Word == 0 {
		s.buffer = append(s.buffer, byte(acc.WriteData&0xFF))
		if len(s.buffer) > SERIAL_BUFFER_MAX {
			s.buffer = s.buffer[len(s.buffer)-SERIAL_BUFFER_MAX:]
		}
	}
}

// ReadLatch returns zero: the TX register is write-only.
func (s *SerialOutput) ReadLatch() uint32 {
	return 0
}

// DrainOutput returns everything written since the last drain and clears
// the buffer. Safe to call from the host side at any time.
func (s *SerialOutput) DrainOutput() string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	out := string(s.buffer)
	s.buffer = s.buffer[:0]
	return out
}

// Pending returns the number of undrained bytes.
func (s *SerialOutput) Pending() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.buffer)
}

// system_bus.go - Memory bus and bus transaction source for IntuitionCore

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
system_bus.go - System Bus

The system bus is the single bus master's view of the machine: a
contiguous block of main RAM plus the synchronous I/O core behind bit 22
of the address. It implements the MemoryBus interface with little-endian
32-bit accessors.

An access with bit 22 clear is plain RAM and costs nothing: RAM is not
part of the modeled core, so it has no tick semantics. An access with bit
22 set is turned into exactly one bus cycle driven through the I/O core's
Tick; an I/O read drives one additional idle tick to collect the
registered read data, which is valid one tick after the request.

Thread safety is enforced with a mutex so that a host-side monitor and a
driver goroutine can share the bus, though the tick model itself is
strictly single-threaded.
*/

package main

import (
	"encoding/binary"
	"sync"
)

// MemoryBus defines the bus-master interface: 32-bit reads and writes
// plus a full reset of memory and peripheral state.
type MemoryBus interface {
	Read32(addr uint32) uint32
	Write32(addr uint32, value uint32)
	Reset()
}

// SystemBus implements MemoryBus over main RAM and the I/O core.
type SystemBus struct {
	mutex  sync.Mutex
	memory []byte
	core   *IOCore

	gpioIn  uint32     // pin vector presented on every tick
	lastOut TickOutput // registered outputs after the most recent tick
}

// NewSystemBus creates a bus with the default RAM size wired to core.
func NewSystemBus(core *IOCore) *SystemBus {
	return &SystemBus{
		memory: make([]byte, DEFAULT_MEMORY_SIZE),
		core:   core,
	}
}

// tick drives one bus cycle through the I/O core.
func (bus *SystemBus) tick(cycle BusCycle) TickOutput {
	out := bus.core.Tick(TickInput{
		ResetActive: true,
		Cycle:       cycle,
		GpioIn:      bus.gpioIn,
	})
	bus.lastOut = out
	return out
}

// Write32 performs a 32-bit write. RAM writes are immediate; I/O writes
// cost one tick and commit on that tick's edge.
func (bus *SystemBus) Write32(addr uint32, value uint32) {
	bus.mutex.Lock()
	defer bus.mutex.Unlock()

	if IsIOAddress(addr) {
		bus.tick(BusCycle{Addr: addr, WriteStrb: 0xF, WriteData: value})
		return
	}
	if addr+WORD_SIZE > uint32(len(bus.memory)) {
		return
	}
	binary.LittleEndian.PutUint32(bus.memory[addr:addr+WORD_SIZE], value)
}

// Read32 performs a 32-bit read. RAM reads are immediate; an I/O read
// issues the request tick and one idle tick, returning the registered
// read data. Out-of-range RAM reads return zero.
func (bus *SystemBus) Read32(addr uint32) uint32 {
	bus.mutex.Lock()
	defer bus.mutex.Unlock()

	if IsIOAddress(addr) {
		bus.tick(BusCycle{Addr: addr, Read: true})
		out := bus.tick(BusCycle{})
		return out.ReadData
	}
	if addr+WORD_SIZE > uint32(len(bus.memory)) {
		return 0
	}
	return binary.LittleEndian.Uint32(bus.memory[addr : addr+WORD_SIZE])
}

// Step advances the core by n idle ticks (no bus transaction presented).
func (bus *SystemBus) Step(n int) {
	bus.mutex.Lock()
	defer bus.mutex.Unlock()

	for i := 0; i < n; i++ {
		bus.tick(BusCycle{})
	}
}

// SetGpioInput sets the external pin vector presented on every tick.
func (bus *SystemBus) SetGpioInput(pins uint32) {
	bus.mutex.Lock()
	defer bus.mutex.Unlock()
	bus.gpioIn = pins
}

// TimerTimeout returns the level-held timeout output after the most
// recent tick.
func (bus *SystemBus) TimerTimeout() bool {
	bus.mutex.Lock()
	defer bus.mutex.Unlock()
	return bus.lastOut.TimerTimeout
}

// Outputs returns the full registered output set after the most recent
// tick.
func (bus *SystemBus) Outputs() TickOutput {
	bus.mutex.Lock()
	defer bus.mutex.Unlock()
	return bus.lastOut
}

// Core exposes the I/O core for hosts and tests.
func (bus *SystemBus) Core() *IOCore {
	return bus.core
}

// Reset clears main RAM and pulses the core's active-low reset.
func (bus *SystemBus) Reset() {
	bus.mutex.Lock()
	defer bus.mutex.Unlock()

	for i := range bus.memory {
		bus.memory[i] = 0
	}
	bus.core.Tick(TickInput{ResetActive: false})
	bus.lastOut = TickOutput{}
}

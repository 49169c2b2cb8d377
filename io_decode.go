// io_decode.go - Bus address decode table for IntuitionCore

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
io_decode.go - Bus Decode Table

Stateless address decode for the I/O core. Each device registers a word
range at configuration time; ranges must be disjoint, which AddDevice
verifies so that at most one device can ever be selected for any address.
The decode itself is a pure function of the address and the static table -
it never arbitrates between devices, because overlap is a configuration
error rather than a runtime condition.

The original RTL resolves the readback mux with a fixed if/else-if chain
whose exclusivity is accidental; here the table is an ordered list with an
explicit build-time disjointness check instead.
*/

package main

import "fmt"

// IORange describes a device's reserved word range in the I/O region.
type IORange struct {
	Base  uint32 // byte address of the first register (bit 22 set)
	Words uint32 // number of consecutive 32-bit registers
}

// Contains reports whether addr falls inside the range.
func (r IORange) Contains(addr uint32) bool {
	return addr >= r.Base && addr < r.Base+WORD_SIZE*r.Words
}

// WordOffset returns the register word index of addr within the range.
// Callers must check Contains first; there is no underflow guard.
func (r IORange) WordOffset(addr uint32) uint32 {
	return (addr - r.Base) >> 2
}

func (r IORange) overlaps(other IORange) bool {
	return r.Base < other.Base+WORD_SIZE*other.Words &&
		other.Base < r.Base+WORD_SIZE*r.Words
}

// ioMapping binds a decoded range to its device.
type ioMapping struct {
	name string
	rng  IORange
	dev  IODevice
}

// IODecoder is the static decode table. It owns no per-tick state.
type IODecoder struct {
	mappings []ioMapping
}

// NewIODecoder returns an empty decode table.
func NewIODecoder() *IODecoder {
	return &IODecoder{}
}

// AddDevice registers a device's range in the decode table. The range
// must lie in the I/O region and must not overlap any registered range.
func (d *IODecoder) AddDevice(name string, rng IORange, dev IODevice) error {
	if rng.Words == 0 {
		return fmt.Errorf("io decode: %s: empty range", name)
	}
	if !IsIOAddress(rng.Base) || !IsIOAddress(rng.Base+WORD_SIZE*rng.Words-1) {
		return fmt.Errorf("io decode: %s: range 0x%X+%d words leaves the I/O region", name, rng.Base, rng.Words)
	}
	if rng.Base&0x3 != 0 {
		return fmt.Errorf("io decode: %s: base 0x%X is not word aligned", name, rng.Base)
	}
	for _, m := range d.mappings {
		if m.rng.overlaps(rng) {
			return fmt.Errorf("io decode: %s range 0x%X+%d words overlaps %s at 0x%X",
				name, rng.Base, rng.Words, m.name, m.rng.Base)
		}
	}
	d.mappings = append(d.mappings, ioMapping{name: name, rng: rng, dev: dev})
	return nil
}

// Decode selects the device for an address. Returns the mapping index and
// the register word offset within the device, or -1 if no device is
// selected (address outside the I/O region or outside every range).
func (d *IODecoder) Decode(addr uint32) (int, uint32) {
	if !IsIOAddress(addr) {
		return -1, 0
	}
	for i, m := range d.mappings {
		if m.rng.Contains(addr) {
			return i, m.rng.WordOffset(addr)
		}
	}
	return -1, 0
}

// DeviceCount returns the number of registered devices.
func (d *IODecoder) DeviceCount() int {
	return len(d.mappings)
}

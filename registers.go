// registers.go - Centralized I/O register address map for IntuitionCore

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
registers.go - Master I/O Register Address Map

This file provides the centralized reference for all memory-mapped I/O
regions in IntuitionCore. Individual device implementations define their
own detailed register constants in separate *_constants.go files.

MEMORY MAP OVERVIEW
===================

The address space is a flat 32-bit byte space. Bit 22 of the byte address
selects the I/O region; addresses with bit 22 clear are main RAM.

Address             Size    Device              Constants File
---------------------------------------------------------------------------
0x000000-0x3FFFFF   4MB     Main RAM            -
0x400004            4B      Serial TX           registers.go
0x400020-0x40002B   12B     GPIO block          gpio_constants.go
0x400040-0x40004F   16B     Countdown timer     timer_constants.go

All I/O registers are 32-bit and word aligned. Register reads are
registered: read data is valid on the bus one clock tick after the read
request, matching the modeled RTL. Reserved offsets read as zero and
ignore writes.
*/

package main

// =============================================================================
// I/O Region Base Addresses and Boundaries
// =============================================================================

const (
	// Bit 22 of the byte address distinguishes I/O from main RAM.
	IO_REGION_BIT  = 22
	IO_REGION_MASK = 1 << IO_REGION_BIT // 0x00400000

	// Common I/O base. All device region bases are offsets from here.
	IO_BASE = 0x00400000

	// Serial output region (single write-only TX register)
	SERIAL_REGION_BASE  = IO_BASE + 0x04
	SERIAL_REGION_WORDS = 1

	// GPIO region (DATA, DIR, READ)
	GPIO_REGION_BASE  = IO_BASE + 0x20
	GPIO_REGION_WORDS = 3

	// Countdown timer region (CTRL, LOAD, VALUE, STATUS)
	TIMER_REGION_BASE  = IO_BASE + 0x40
	TIMER_REGION_WORDS = 4
)

// =============================================================================
// Main RAM
// =============================================================================

const (
	DEFAULT_MEMORY_SIZE = 4 * 1024 * 1024 // everything below the I/O bit
	WORD_SIZE           = 4
)

// =============================================================================
// Serial TX register (debug output, consumed by the host)
// =============================================================================

const (
	SERIAL_TX = SERIAL_REGION_BASE // Write: low byte is the character. Reads as zero.
)

// =============================================================================
// Helper Functions
// =============================================================================

// IsIOAddress returns true if the address is in the I/O region.
func IsIOAddress(addr uint32) bool {
	return addr&IO_REGION_MASK != 0
}

// WordAddress returns the byte address shifted down to a 32-bit word index.
func WordAddress(addr uint32) uint32 {
	return addr >> 2
}

// IORegionName returns the device name for an I/O address.
func IORegionName(addr uint32) string {
	switch {
	case addr >= SERIAL_REGION_BASE && addr < SERIAL_REGION_BASE+4*SERIAL_REGION_WORDS:
		return "Serial"
	case addr >= GPIO_REGION_BASE && addr < GPIO_REGION_BASE+4*GPIO_REGION_WORDS:
		return "GPIO"
	case addr >= TIMER_REGION_BASE && addr < TIMER_REGION_BASE+4*TIMER_REGION_WORDS:
		return "Timer"
	default:
		return "Unknown"
	}
}

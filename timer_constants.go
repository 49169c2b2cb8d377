// timer_constants.go - Countdown timer register addresses and bit fields
// See registers.go for the complete I/O memory map reference.

package main

// Timer register byte addresses (memory-mapped at 0x400040-0x40004F)
const (
	TIMER_CTRL   = TIMER_REGION_BASE + 0x00 // Control: EN, MODE, prescaler
	TIMER_LOAD   = TIMER_REGION_BASE + 0x04 // 32-bit reload value
	TIMER_VALUE  = TIMER_REGION_BASE + 0x08 // Live countdown (read-only)
	TIMER_STATUS = TIMER_REGION_BASE + 0x0C // Bit 0: TIMEOUT flag (W1C)
)

// Timer register word offsets (for decode/array indexing)
const (
	TIMER_REG_CTRL   = 0
	TIMER_REG_LOAD   = 1
	TIMER_REG_VALUE  = 2
	TIMER_REG_STATUS = 3
)

// CTRL register bits. Reserved bits read as zero and ignore writes.
const (
	TIMER_CTRL_EN       = 1 << 0 // Enable. 0 forces preload from LOAD.
	TIMER_CTRL_MODE     = 1 << 1 // 0 = one-shot, 1 = periodic (auto-reload)
	TIMER_CTRL_PRESC_EN = 1 << 2 // Prescaler enable

	TIMER_CTRL_PRESC_SHIFT = 8      // PRESC_DIV in bits 8-15
	TIMER_CTRL_PRESC_MASK  = 0xFF00 // 8-bit divider field

	TIMER_CTRL_WRITE_MASK = TIMER_CTRL_EN | TIMER_CTRL_MODE |
		TIMER_CTRL_PRESC_EN | TIMER_CTRL_PRESC_MASK
)

// STATUS register bits
const (
	TIMER_STATUS_TIMEOUT = 1 << 0 // Level-held, write-1-to-clear
)

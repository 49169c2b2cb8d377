// gpio_constants.go - GPIO block register addresses
// See registers.go for the complete I/O memory map reference.

package main

// GPIO register byte addresses (memory-mapped at 0x400020-0x40002B)
const (
	GPIO_DATA = GPIO_REGION_BASE + 0x00 // Last written output value
	GPIO_DIR  = GPIO_REGION_BASE + 0x04 // Per-bit direction, 1 = output
	GPIO_READ = GPIO_REGION_BASE + 0x08 // Merged pin state (read-only)
)

// GPIO register word offsets (for decode/array indexing)
const (
	GPIO_REG_DATA = 0
	GPIO_REG_DIR  = 1
	GPIO_REG_READ = 2
)

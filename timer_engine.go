// timer_engine.go - Countdown timer engine for IntuitionCore

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
timer_engine.go - Countdown Timer Engine

Register-accurate model of the countdown timer: a 32-bit down-counter
with an 8-bit prescaler, one-shot and periodic modes, and a level-held
TIMEOUT flag cleared by writing 1 to STATUS bit 0.

Per-tick behaviour (all evaluated against the pre-edge register state,
then committed together, exactly like the flip-flops it models):

    EN=0  The live counter is forced from LOAD, the prescaler sub-counter
          and the TIMEOUT flag are forced to zero. Disabling then
          re-enabling therefore always restarts a fresh full countdown.

    EN=1  A tick is effective when the prescaler is off or its sub-counter
          has reached PRESC_DIV (resetting to zero that tick). On an
          effective tick the counter decrements; when it stands at 1 the
          TIMEOUT flag asserts and the counter reloads from LOAD
          (periodic) or drops to 0 (one-shot).

A counter already at 0 with EN still 1 reloads from LOAD on the next
effective tick. That is only reachable after a one-shot expiry when
software never disables the timer, and it is surprising for one-shot
semantics - but it is what the modeled RTL does, so it is preserved here.
See TestTimerOneShotZeroReloadQuirk.

When a STATUS write-1-to-clear lands on the same tick as an expiry, the
assertion wins: the flag's next state is expired || (flag && !clear).
*/

package main

import "sync"

// TimerEngine owns the timer's register file. The mutex only serializes
// bus ticks against host-side inspection (monitor, tests); the tick path
// itself is single-threaded.
type TimerEngine struct {
	mutex sync.Mutex

	ctrl  uint32
	load  uint32
	value uint32

	prescCount uint32 // prescaler sub-counter, counts 0..PRESC_DIV
	timeout    bool

	readLatch uint32
}

// NewTimerEngine returns a timer in reset state: all registers zero,
// which means disabled with the counter preloaded from a zero LOAD.
func NewTimerEngine() *TimerEngine {
	return &TimerEngine{}
}

// TickBus advances the timer by one clock edge. The countdown update runs
// every tick regardless of bus activity; the bus access only commits
// register writes and latches read data.
func (t *TimerEngine) TickBus(acc RegAccess) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	// Pre-edge control decode. A CTRL write this tick takes effect from
	// the next tick, like any synchronous register.
	enabled := t.ctrl&TIMER_CTRL_EN != 0
	periodic := t.ctrl&TIMER_CTRL_MODE != 0
	prescEnabled := t.ctrl&TIMER_CTRL_PRESC_EN != 0
	prescDiv := (t.ctrl & TIMER_CTRL_PRESC_MASK) >> TIMER_CTRL_PRESC_SHIFT

	ctrlNext := t.ctrl
	loadNext := t.load
	clearRequest := false

	if acc.IsWrite() {
		switch acc.Word {
		case TIMER_REG_CTRL:
			ctrlNext = acc.WriteData & TIMER_CTRL_WRITE_MASK
		case TIMER_REG_LOAD:
			loadNext = acc.WriteData
		case TIMER_REG_VALUE:
			// Read-only: writes are ignored.
		case TIMER_REG_STATUS:
			clearRequest = acc.WriteData&TIMER_STATUS_TIMEOUT != 0
		}
	}

	valueNext := t.value
	prescNext := t.prescCount
	timeoutNext := t.timeout
	expired := false

	if !enabled {
		// Preload-on-disable: deterministic restart on re-enable.
		valueNext = t.load
		prescNext = 0
		timeoutNext = false
	} else {
		effective := true
		if prescEnabled {
			if t.prescCount >= prescDiv {
				prescNext = 0
			} else {
				prescNext = t.prescCount + 1
				effective = false
			}
		}
		if effective {
			switch {
			case t.value > 1:
				valueNext = t.value - 1
			case t.value == 1:
				expired = true
				if periodic {
					valueNext = t.load
				} else {
					valueNext = 0
				}
			default:
				// Post-expiry one-shot with EN still set: silent reload.
				valueNext = t.load
			}
		}
		timeoutNext = expired || (t.timeout && !clearRequest)
	}

	t.ctrl = ctrlNext
	t.load = loadNext
	t.value = valueNext
	t.prescCount = prescNext
	t.timeout = timeoutNext

	if acc.IsRead() {
		switch acc.Word {
		case TIMER_REG_CTRL:
			t.readLatch = t.ctrl
		case TIMER_REG_LOAD:
			t.readLatch = t.load
		case TIMER_REG_VALUE:
			t.readLatch = t.value
		case TIMER_REG_STATUS:
			t.readLatch = 0
			if t.timeout {
				t.readLatch = TIMER_STATUS_TIMEOUT
			}
		default:
			t.readLatch = 0
		}
	}
}

// ReadLatch returns the registered read data captured by the most recent
// read access.
func (t *TimerEngine) ReadLatch() uint32 {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.readLatch
}

// Timeout returns the level-held timeout flag.
func (t *TimerEngine) Timeout() bool {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.timeout
}

// Value returns the live counter. Host-side inspection only; bus readers
// go through the registered read path.
func (t *TimerEngine) Value() uint32 {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.value
}

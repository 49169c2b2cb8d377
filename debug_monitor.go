// debug_monitor.go - Interactive bus monitor for IntuitionCore

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
debug_monitor.go - Bus Monitor

Line-oriented monitor for poking the peripheral core by hand: peek/poke
registers, step the clock, inspect timer and GPIO state, drain serial
output, run a Lua script. Command lines are tokenized with shellwords so
quoted script paths work; the prompt is only printed when stdin is a
terminal, so the monitor can be driven from a pipe in tests and CI.
*/

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/buildkite/shellwords"
	"golang.org/x/term"
)

// Monitor is the interactive debugger over a SystemBus.
type Monitor struct {
	bus *SystemBus
	in  io.Reader
	out io.Writer
}

// NewMonitor creates a monitor reading from stdin and writing to stdout.
func NewMonitor(bus *SystemBus) *Monitor {
	return &Monitor{bus: bus, in: os.Stdin, out: os.Stdout}
}

// Run executes the command loop until EOF or the quit command.
func (m *Monitor) Run() error {
	interactive := false
	if f, ok := m.in.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	if interactive {
		fmt.Fprintln(m.out, "CORE MONITOR - Type ? for help")
	}

	scanner := bufio.NewScanner(m.in)
	for {
		if interactive {
			fmt.Fprint(m.out, "> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		quit, err := m.Exec(scanner.Text())
		if err != nil {
			fmt.Fprintf(m.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// Exec runs a single command line. Returns true when the monitor should
// exit.
func (m *Monitor) Exec(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}
	args, err := shellwords.Split(line)
	if err != nil {
		return false, err
	}

	switch args[0] {
	case "peek", "rd":
		addr, err := parseValue(args, 1)
		if err != nil {
			return false, err
		}
		value := m.bus.Read32(addr)
		fmt.Fprintf(m.out, "%s[0x%08X] = 0x%08X\n", IORegionName(addr), addr, value)

	case "poke", "wr":
		addr, err := parseValue(args, 1)
		if err != nil {
			return false, err
		}
		value, err := parseValue(args, 2)
		if err != nil {
			return false, err
		}
		m.bus.Write32(addr, value)

	case "step":
		n := uint32(1)
		if len(args) > 1 {
			if n, err = parseValue(args, 1); err != nil {
				return false, err
			}
		}
		m.bus.Step(int(n))
		fmt.Fprintf(m.out, "stepped %d, tick %d\n", n, m.bus.Core().Ticks())

	case "status":
		core := m.bus.Core()
		out := m.bus.Outputs()
		fmt.Fprintf(m.out, "tick     %d\n", core.Ticks())
		fmt.Fprintf(m.out, "timeout  %v\n", out.TimerTimeout)
		fmt.Fprintf(m.out, "value    %d\n", core.Timer().Value())
		fmt.Fprintf(m.out, "gpio out 0x%08X dir 0x%08X\n", out.GpioOut, out.GpioDir)

	case "gpio":
		pins, err := parseValue(args, 1)
		if err != nil {
			return false, err
		}
		m.bus.SetGpioInput(pins)

	case "drain":
		fmt.Fprint(m.out, m.bus.Core().Serial().DrainOutput())

	case "reset":
		m.bus.Reset()
		fmt.Fprintln(m.out, "reset")

	case "script":
		if len(args) < 2 {
			return false, fmt.Errorf("script: missing path")
		}
		driver := NewScriptDriver(m.bus)
		if err := driver.RunFile(args[1]); err != nil {
			return false, err
		}

	case "?", "help":
		fmt.Fprint(m.out, monitorHelp)

	case "quit", "q", "exit":
		return true, nil

	default:
		return false, fmt.Errorf("unknown command %q (? for help)", args[0])
	}
	return false, nil
}

const monitorHelp = `peek ADDR        read a register (one request tick + one data tick)
poke ADDR VALUE  write a register (one tick)
step [N]         advance N idle ticks (default 1)
status           tick count, timeout level, live counter, GPIO outputs
gpio VALUE       set the external GPIO input pin vector
drain            print pending serial output
reset            hard reset (RAM + peripheral core)
script PATH      run a Lua bench script
quit             leave the monitor
`

// parseValue parses args[i] as a 32-bit number, accepting 0x prefixes.
func parseValue(args []string, i int) (uint32, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("%s: missing argument", args[0])
	}
	v, err := strconv.ParseUint(args[i], 0, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: bad value %q", args[0], args[i])
	}
	return uint32(v), nil
}

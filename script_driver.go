// script_driver.go - Lua bench-script driver for IntuitionCore

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
script_driver.go - Lua Bench Scripts

Scriptable transaction source: a Lua state with the bus primitives bound
as globals, standing in for the firmware + simulator testbench of the
modeled system. A bench script looks like:

    poke(0x400044, 1000)      -- TIMER_LOAD
    poke(0x400040, 0x1)       -- TIMER_CTRL: EN, one-shot
    step(999)
    assert(not timeout())
    step(1)
    assert(timeout())

Bound globals:

    poke(addr, value)   one write cycle
    peek(addr) -> n     one read cycle + one data cycle
    step(n)             n idle ticks
    timeout() -> bool   level-held timer timeout output
    gpio_in(v)          set the external pin vector
    drain() -> s        pending serial output
    reset()             hard reset
*/

package main

import (
	lua "github.com/yuin/gopher-lua"
)

// ScriptDriver runs Lua bench scripts against a SystemBus.
type ScriptDriver struct {
	bus *SystemBus
}

// NewScriptDriver creates a driver bound to bus.
func NewScriptDriver(bus *SystemBus) *ScriptDriver {
	return &ScriptDriver{bus: bus}
}

// RunFile executes a bench script from a file.
func (d *ScriptDriver) RunFile(path string) error {
	L := lua.NewState()
	defer L.Close()
	d.register(L)
	return L.DoFile(path)
}

// RunString executes bench script source directly (used by tests).
func (d *ScriptDriver) RunString(src string) error {
	L := lua.NewState()
	defer L.Close()
	d.register(L)
	return L.DoString(src)
}

func (d *ScriptDriver) register(L *lua.LState) {
	L.SetGlobal("poke", L.NewFunction(func(L *lua.LState) int {
		addr := uint32(L.CheckInt64(1))
		value := uint32(L.CheckInt64(2))
		d.bus.Write32(addr, value)
		return 0
	}))
	L.SetGlobal("peek", L.NewFunction(func(L *lua.LState) int {
		addr := uint32(L.CheckInt64(1))
		L.Push(lua.LNumber(d.bus.Read32(addr)))
		return 1
	}))
	L.SetGlobal("step", L.NewFunction(func(L *lua.LState) int {
		d.bus.Step(int(L.OptInt64(1, 1)))
		return 0
	}))
	L.SetGlobal("timeout", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LBool(d.bus.TimerTimeout()))
		return 1
	}))
	L.SetGlobal("gpio_in", L.NewFunction(func(L *lua.LState) int {
		d.bus.SetGpioInput(uint32(L.CheckInt64(1)))
		return 0
	}))
	L.SetGlobal("drain", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LString(d.bus.Core().Serial().DrainOutput()))
		return 1
	}))
	L.SetGlobal("reset", L.NewFunction(func(L *lua.LState) int {
		d.bus.Reset()
		return 0
	}))
}

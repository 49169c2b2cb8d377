package main

import (
	"bytes"
	"strings"
	"testing"
)

func newTestMonitor(t *testing.T) (*Monitor, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	m := NewMonitor(newTestBus(t))
	m.out = out
	return m, out
}

func mustExec(t *testing.T, m *Monitor, line string) {
	t.Helper()
	if _, err := m.Exec(line); err != nil {
		t.Fatalf("%q: %v", line, err)
	}
}

func TestMonitorPokePeek(t *testing.T) {
	m, out := newTestMonitor(t)

	mustExec(t, m, "poke 0x400044 1234") // TIMER_LOAD
	mustExec(t, m, "peek 0x400044")

	if !strings.Contains(out.String(), "Timer[0x00400044] = 0x000004D2") {
		t.Errorf("peek output %q missing readback", out.String())
	}
}

func TestMonitorStepAndStatus(t *testing.T) {
	m, out := newTestMonitor(t)

	mustExec(t, m, "poke 0x400044 5")
	mustExec(t, m, "poke 0x400040 0x1")
	mustExec(t, m, "step 5")
	mustExec(t, m, "status")

	s := out.String()
	if !strings.Contains(s, "timeout  true") {
		t.Errorf("status output %q missing asserted timeout", s)
	}
}

func TestMonitorGpioAndDrain(t *testing.T) {
	m, out := newTestMonitor(t)

	mustExec(t, m, "gpio 0xAA")
	mustExec(t, m, "poke 0x400024 0x0F")
	mustExec(t, m, "poke 0x400020 0x0A")
	mustExec(t, m, "peek 0x400028")
	if !strings.Contains(out.String(), "0x000000AA") {
		t.Errorf("merged GPIO read missing from %q", out.String())
	}

	out.Reset()
	mustExec(t, m, "poke 0x400004 0x68") // 'h'
	mustExec(t, m, "poke 0x400004 0x69") // 'i'
	mustExec(t, m, "drain")
	if out.String() != "hi" {
		t.Errorf("drain printed %q, want \"hi\"", out.String())
	}
}

func TestMonitorBadInput(t *testing.T) {
	m, _ := newTestMonitor(t)

	if _, err := m.Exec("warp 9"); err == nil {
		t.Error("unknown command accepted")
	}
	if _, err := m.Exec("poke notanumber 1"); err == nil {
		t.Error("bad address accepted")
	}
	if _, err := m.Exec("poke 0x400044"); err == nil {
		t.Error("missing argument accepted")
	}
	// Blank lines and comments are ignored.
	mustExec(t, m, "")
	mustExec(t, m, "# comment")
}

func TestMonitorQuit(t *testing.T) {
	m, _ := newTestMonitor(t)
	quit, err := m.Exec("quit")
	if err != nil || !quit {
		t.Fatalf("quit returned (%v, %v), want (true, nil)", quit, err)
	}
}

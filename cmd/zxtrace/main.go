// Command zxtrace is a bring-up and regression harness for the zx
// package: it loads a flat binary into memory at a chosen origin, runs
// the machine for a bounded number of frames (or drops into an
// interactive single-step REPL), and reports the state image and
// port-write log. It is deliberately not a graphical front-end.
package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/kosarev/zx"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "zxtrace",
		Usage: "load a flat binary and run/step the zx core",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "load", Usage: "path to a flat binary image", Required: true},
			&cli.UintFlag{Name: "origin", Usage: "load address", Value: 0x8000},
			&cli.IntFlag{Name: "frames", Usage: "number of frames to run before stopping", Value: 1},
			&cli.BoolFlag{Name: "step", Usage: "drop into an interactive single-step REPL"},
			&cli.BoolFlag{Name: "trace", Usage: "write an instruction trace to stderr"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	data, err := os.ReadFile(ctx.String("load"))
	if err != nil {
		return fmt.Errorf("zxtrace: %w", err)
	}

	m := zx.NewMachine()
	origin := uint16(ctx.Uint("origin"))
	for i, b := range data {
		m.WriteByteForce(origin+uint16(i), b)
	}
	if err := setProgramCounter(m, origin); err != nil {
		return fmt.Errorf("zxtrace: %w", err)
	}

	if ctx.Bool("trace") {
		m.SetTraceWriter(os.Stderr)
	}

	if ctx.Bool("step") {
		return stepREPL(m)
	}

	frames := ctx.Int("frames")
	for i := 0; i < frames; i++ {
		events := m.Run()
		if events.Has(zx.EventMachineStopped) || events.Has(zx.EventBreakpointHit) {
			break
		}
	}

	printState(m)
	printPortLog(m)
	return nil
}

// setProgramCounter points PC at the load origin through the packed
// state image, the same bulk-transfer path a snapshot loader would use.
func setProgramCounter(m *zx.Machine, pc uint16) error {
	buf := make([]byte, zx.StateImageSize)
	if err := m.WriteStateImage(buf); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(buf[10*2:], pc) // PC is the 11th 16-bit field
	return m.ReadStateImage(buf)
}

func printState(m *zx.Machine) {
	buf := make([]byte, zx.StateImageSize)
	if err := m.WriteStateImage(buf); err != nil {
		fmt.Fprintln(os.Stderr, "state image:", err)
		return
	}
	fmt.Printf("state image (%d bytes): % 02X\n", len(buf), buf)
}

func printPortLog(m *zx.Machine) {
	fmt.Printf("port log: %d entries\n", m.PortLogLen())
	for _, e := range m.PortLogEntries() {
		fmt.Printf("  tick=%-6d addr=0x%04X value=0x%02X\n", e.Tick, e.Addr, e.Value)
	}
}

// stepREPL drives a raw-terminal single-step loop: each Enter press, or
// "s", makes one host-level run() call bounded by a single fetch,
// "b <addr>" sets a breakpoint, "q" quits.
func stepREPL(m *zx.Machine) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return runPlainLoop(m)
	}

	old, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("zxtrace: %w", err)
	}
	defer term.Restore(fd, old)

	t := term.NewTerminal(os.Stdin, "> ")
	for {
		line, err := t.ReadLine()
		if err != nil {
			return nil
		}
		switch {
		case line == "q":
			return nil
		case line == "s" || line == "":
			m.SetFetchesToStop(1)
			m.Run()
			printState(m)
		case strings.HasPrefix(line, "b "):
			addr, err := strconv.ParseUint(strings.TrimSpace(line[2:]), 0, 16)
			if err != nil {
				fmt.Fprintf(t, "bad address %q: %v\n", line[2:], err)
				continue
			}
			m.MarkRange(uint16(addr), 1, zx.MarkBreakpoint)
			fmt.Fprintf(t, "breakpoint set at 0x%04X\n", addr)
		default:
			fmt.Fprintf(t, "unrecognised command: %q\n", line)
		}
	}
}

func runPlainLoop(m *zx.Machine) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		m.SetFetchesToStop(1)
		m.Run()
		printState(m)
	}
	return nil
}

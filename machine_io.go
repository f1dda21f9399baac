package zx

// Host-facing API beyond Z80Host and the state image (§6): memory byte
// access, the raw 64 KiB image view, screen/RGB views, mark ranges,
// hook installation, and the port-write log.

// ReadByte reads a single byte from the memory image, bypassing
// contention (host-side peek, not a CPU bus cycle).
func (m *Machine) ReadByte(addr uint16) byte { return m.mem.Read(addr) }

// WriteByte writes a single byte, respecting the ROM guard like any
// other write (§4.1). Use WriteByteForce to bypass it for snapshot
// loading.
func (m *Machine) WriteByte(addr uint16, value byte) { m.mem.Write(addr, value) }

// WriteByteForce writes regardless of the ROM guard, for installing a
// snapshot's RAM (and ROM, if the host wants to swap it).
func (m *Machine) WriteByteForce(addr uint16, value byte) { m.mem.WriteForce(addr, value) }

// MemoryImage returns a mutable view of the full 64 KiB image. Mutating
// it directly bypasses the ROM guard, same as WriteByteForce.
func (m *Machine) MemoryImage() []byte { return m.mem.Bytes() }

// ScreenChunks returns a read-only snapshot of the rendered frame.
func (m *Machine) ScreenChunks() [frameHeight][chunksPerRow]uint32 { return m.scr.Chunks() }

// ScreenRGB converts the current frame to packed 0xRRGGBB pixels.
func (m *Machine) ScreenRGB() [frameHeight][frameWidth]uint32 { return m.scr.ToRGB() }

// MarkRange sets flags over a range of addresses (breakpoints, or
// pre-seeding visited marks for coverage tooling).
func (m *Machine) MarkRange(addr uint16, length int, flags MarkFlag) {
	m.marks.MarkRange(addr, length, flags)
}

// UnmarkRange clears flags over a range of addresses.
func (m *Machine) UnmarkRange(addr uint16, length int, flags MarkFlag) {
	a := addr
	for i := 0; i < length; i++ {
		m.marks.Unmark(a, flags)
		a++
	}
}

// IsMarked reports whether addr carries all of flags.
func (m *Machine) IsMarked(addr uint16, flags MarkFlag) bool {
	return m.marks.IsMarked(addr, flags)
}

// LastError returns the error that caused the most recent
// EventMachineStopped from a failed input hook, or nil if the machine
// hasn't stopped for that reason.
func (m *Machine) LastError() error { return m.lastErr }

// SetInputHook installs the handler MACH calls for every IN cycle.
func (m *Machine) SetInputHook(hook func(addr uint16) (byte, error)) {
	m.inputHook = hook
}

// SetOutputHook installs the handler MACH calls for every OUT cycle,
// after port-log/contention bookkeeping.
func (m *Machine) SetOutputHook(hook func(addr uint16, value byte)) {
	m.outputHook = hook
}

// PortLogLen returns the number of entries currently recorded.
func (m *Machine) PortLogLen() int { return m.plog.Len() }

// PortLogEntries returns the recorded (addr, value, tick) triples for
// the current frame, in write order.
func (m *Machine) PortLogEntries() []PortLogEntry { return m.plog.Entries() }

// PagingPortWrites reports how many times 0x7FFD has been written,
// since 128K paging is otherwise silently dropped (§9's open question,
// resolved in favour of determinism — see SPEC_FULL.md).
func (m *Machine) PagingPortWrites() uint32 { return m.pagingPortWrites }

// SetTicksToStop arms a countdown of CPU ticks; reaching zero sets
// EventTicksLimitHit on the next run(). A value ≤ 0 disables the limit.
func (m *Machine) SetTicksToStop(n int32) { m.ticksToStop = n }

// SetFetchesToStop arms a countdown of instruction fetches; reaching
// zero sets EventFetchesLimitHit. A value ≤ 0 disables the limit.
func (m *Machine) SetFetchesToStop(n int32) { m.fetchesToStop = n }

// SetIntSuppressed controls whether run() ever invokes the
// active-interrupt check; a host single-stepping through a known
// interrupt-sensitive boot sequence sets this directly.
func (m *Machine) SetIntSuppressed(v bool) { m.intSuppressed = v }

// SetIntAfterEIAllowed controls whether EI's interrupt-suppression for
// the following instruction is honoured or bypassed.
func (m *Machine) SetIntAfterEIAllowed(v bool) { m.intAfterEIAllowed = v }

// BorderColour returns the latched border colour (0..7).
func (m *Machine) BorderColour() byte { return m.borderColour }

// TicksSinceInt returns the current frame-relative tick counter.
func (m *Machine) TicksSinceInt() uint32 { return m.ticksSinceInt }

// UseAltContentionBase selects contentionBaseAlt (C+1) instead of the
// plain base, for configurations that sample interrupts on the previous
// instruction's final tick (§4.4).
func (m *Machine) UseAltContentionBase(v bool) { m.useAltContentionBase = v }

package zx

import "errors"

// ErrInvalidState is returned by ReadStateImage when the host supplies
// an out-of-range field (im > 2, iregp kind > 2): §7's "illegal
// state-install". The image is rejected and the machine keeps its
// previous state; Run does not check for a rejected install and runs
// on from that previous state.
var ErrInvalidState = errors.New("zx: invalid state image")

// ErrInputCallback marks that the host's input hook failed (panicked or
// returned through a broken path) during the current frame; the cycle
// that triggered it already sampled the default floating value 0xBF.
// The machine stops (EventMachineStopped) so the host can inspect and
// recover, per §7.
var ErrInputCallback = errors.New("zx: input hook failed")

// File: adapters/header.go
// License: Apache-2.0

package adapters

import "unsafe"

// RefHeader is the fixed bookkeeping record the host runtime expects in
// front of every object payload. The pool moves opaque buffers and knows
// nothing about this layout; only the adapter does. The field widths are
// part of the runtime's binary contract and must not change without a
// matching runtime revision.
type RefHeader struct {
	RefCount uint64
	Kind     uint32
	Flags    uint32
	Reserved [16]byte
}

// HeaderSize is the number of slot bytes reserved ahead of each payload.
const HeaderSize = int(unsafe.Sizeof(RefHeader{}))

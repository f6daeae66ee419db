// File: pool/helpers_test.go
// License: Apache-2.0

package pool_test

import "unsafe"

func bufAddr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(&b[0]))
}

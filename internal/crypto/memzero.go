package crypto

import "runtime"

// Wipe zeroes the provided buffers. This is best-effort and aims to
// reduce the chance of the compiler eliding the write.
//
//go:noinline
func Wipe(bufs ...[]byte) {
	for _, b := range bufs {
		for i := range b {
			b[i] = 0
		}
	}
	runtime.KeepAlive(bufs)
}

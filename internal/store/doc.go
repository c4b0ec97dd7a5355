// Package store implements the encrypted single-document key-value store.
//
// A Store owns one file. Every operation reads the whole file, decrypts and
// parses it, applies its change in memory and writes the whole document back
// through the configured cipher. Writes go to a temporary file that replaces
// the target, so a crash never leaves a half-written document behind.
//
// Each call is O(size of the document) in time and I/O. This is meant for
// small documents such as settings or credentials, not for many keys or high
// write rates.
//
// Failures of the load and save steps are returned AND published as
// events.Error, so callers may either check errors or observe the event
// stream. A failed load yields an empty, non-nil Document.
//
// A Store serialises its own calls, but nothing coordinates two Stores (or two
// processes) pointed at the same file: the last writer wins.
package store

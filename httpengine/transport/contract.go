/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package transport defines the narrow capability contract the
// session flow controller in httpengine needs from an underlying
// connection, independent of whether that connection is a TCP socket,
// a UNIX domain socket, or a pair of standard I/O streams. Establishing
// the connection itself (accept loops, DNS, TLS handshakes, signal
// handling) is out of scope for this package.
package transport

import "context"

// ReadCallback is invoked once a read completes, with the bytes read
// (including the delimiter for AsyncReadUntil) and any error.
type ReadCallback func(data []byte, err error)

// WriteCallback is invoked once a write completes.
type WriteCallback func(n int, err error)

// Conn is the contract the flow controller depends on. A Conn may wrap
// a single bidirectional stream (TCP, UNIX) or two independent streams
// (stdio), hence ShutdownBoth and Close are distinct from the
// individual read/write operations.
type Conn interface {
	// AsyncReadUntil reads until the delim byte (inclusive) is seen,
	// then invokes cb with the accumulated line.
	AsyncReadUntil(ctx context.Context, delim byte, cb ReadCallback)

	// AsyncReadAtLeast reads at least n bytes (it may read more if more
	// is already buffered), then invokes cb.
	AsyncReadAtLeast(ctx context.Context, n int, cb ReadCallback)

	// AsyncWrite writes data in full, then invokes cb.
	AsyncWrite(ctx context.Context, data []byte, cb WriteCallback)

	// ShutdownBoth shuts down both the read and write halves of the
	// connection without closing the underlying descriptor.
	ShutdownBoth() error

	// Close releases the underlying descriptor(s).
	Close() error
}

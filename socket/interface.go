/*
 * MIT License
 *
 * Copyright (c) 2023 Nicolas JUHEL
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

// Package socket declares the client contract over a connected stream or
// datagram endpoint, independent of the network kind used to reach it.
package socket

import (
	"context"
	"io"
)

// Client is a reconnectable writer over a network endpoint.
type Client interface {
	io.Writer
	io.Closer

	// Connect dials the configured endpoint, replacing any previous
	// connection.
	Connect(ctx context.Context) error

	// IsConnected reports whether an established connection is held.
	IsConnected() bool
}

// Context is one inbound connection or datagram flow handed to a server
// Handler.
type Context interface {
	io.Reader
	io.Writer
	io.Closer
}

// Handler consumes one inbound connection. It runs on its own goroutine
// and owns the Context until it closes it.
type Handler func(c Context)

// Server accepts inbound connections on a configured endpoint and hands
// each one to its Handler.
type Server interface {
	io.Closer

	// Listen binds the configured endpoint and accepts until the context
	// is done or Close is called.
	Listen(ctx context.Context) error

	// IsRunning reports whether the listener is currently bound.
	IsRunning() bool
}

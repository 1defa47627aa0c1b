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

// Package httpengine implements an asynchronous HTTP/1.x protocol
// engine: request-line, status-line, header, URI, media-type and
// quality-value parsing, content negotiation, a session state machine
// driven by a pluggable transport, and both a server-side servlet
// dispatcher and a client-side pipelined request queue.
//
// The package deliberately stops at the wire protocol. Establishing
// the underlying connection (listening, dialing, DNS, TLS, signal
// handling) is the caller's job; see the transport subpackage for the
// narrow contract this engine expects from a connection, and the
// httpserver/httpcli packages for a deployable wrapper around it.
//
// An Engine owns all of the mutable state a deployment needs: its
// servlet registry and its live session registry, keyed by a stable
// session identifier. Nothing here is package-scoped global state, so
// more than one Engine can run in the same process without
// interfering with another.
package httpengine

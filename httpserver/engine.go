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

package httpserver

import (
	"context"
	"net"

	htpeng "github.com/nabbar/go-httpengine/httpengine"
	trns "github.com/nabbar/go-httpengine/httpengine/transport"
)

// ServeConn drives one accepted connection through eng's servlet
// dispatcher until the connection's session recycles. It is the glue
// between this package's existing listener/pool/TLS plumbing (still
// responsible for accepting and, where configured, TLS-terminating
// connections) and the hand-rolled protocol engine, which never
// establishes connections itself.
//
// Each accepted connection may carry more than one pipelined request;
// ServeConn loops, driving a fresh Session per request/response cycle
// out of eng's registry, until the connection's Flow recycles it.
func ServeConn(ctx context.Context, eng *htpeng.Engine, conn net.Conn, sessionID string) {
	var tc trns.Conn

	switch c := conn.(type) {
	case *net.TCPConn:
		tc = trns.NewTCPConn(c)
	case *net.UnixConn:
		tc = trns.NewUnixConn(c)
	default:
		return
	}

	for {
		session := eng.Session(sessionID)

		flow := htpeng.NewFlow(ctx, &htpeng.ServerProcessor{Engine: eng}, session, tc)
		flow.Start()

		if session.Free() {
			eng.Release(sessionID)
			return
		}
	}
}

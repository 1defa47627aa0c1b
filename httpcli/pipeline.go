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

package httpcli

import (
	"context"
	"net"

	htpeng "github.com/nabbar/go-httpengine/httpengine"
	trns "github.com/nabbar/go-httpengine/httpengine/transport"
)

// Pipeline is a queued, single-connection request pipeline: every
// request enqueued with Then before Run is written to the wire before
// any of their replies are read back, and each reply is dispatched to
// its own success or failure callback once it arrives, preserving
// request order. This complements Request's one-shot fluent builder
// for callers that want to pipeline several requests over one
// connection instead of opening one per call.
type Pipeline struct {
	eng  *htpeng.Engine
	proc *htpeng.ClientProcessor
}

// NewPipeline returns an empty pipeline bound to conn.
func NewPipeline() *Pipeline {
	return &Pipeline{
		eng:  htpeng.New(0),
		proc: &htpeng.ClientProcessor{},
	}
}

// Then enqueues one request with its success and failure callbacks.
// Either callback may be nil.
func (p *Pipeline) Then(method, resource string, header *htpeng.Headers, body string, onSuccess, onFailure func(s *htpeng.Session)) *Pipeline {
	p.proc.Query(htpeng.ClientRequest{
		Method:    method,
		Resource:  resource,
		Header:    header,
		Body:      body,
		OnSuccess: onSuccess,
		OnFailure: onFailure,
	})
	return p
}

// Run drives every queued request to completion over conn, a single
// already-established connection (dialing is the caller's
// responsibility; this package never opens a socket itself).
func (p *Pipeline) Run(ctx context.Context, conn net.Conn, sessionID string) {
	var tc trns.Conn

	switch c := conn.(type) {
	case *net.TCPConn:
		tc = trns.NewTCPConn(c)
	case *net.UnixConn:
		tc = trns.NewUnixConn(c)
	default:
		return
	}

	session := p.eng.Session(sessionID)

	flow := htpeng.NewFlow(ctx, p.proc, session, tc)
	flow.Start()

	p.eng.Release(sessionID)
}

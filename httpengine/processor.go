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

package httpengine

import "strconv"

// Processor is the narrow capability interface the flow controller
// drives a session through. ServerProcessor and ClientProcessor both
// implement it, letting flow.go stay ignorant of which side of the
// connection it is running: a tagged variant would also work, but a
// shared interface is the idiomatic Go shape for "one of two request
// lifecycles" here.
type Processor interface {
	// Start primes a freshly accepted/opened session before the first
	// read.
	Start(s *Session)

	// AfterHeaders runs once the header block is complete, returning
	// the next status (Content, Processing, or Error).
	AfterHeaders(s *Session) Status

	// Handle runs once the full body (if any) has been read.
	Handle(s *Session)

	// AfterProcessing runs once Handle (or, on the write side, a
	// completed send) has finished, returning the next status.
	AfterProcessing(s *Session) Status

	// Recycle clears any processor-owned state before a session is
	// returned to its registry.
	Recycle(s *Session)
}

// ServerProcessor implements the server-side half of the protocol:
// dispatch against an Engine's servlet registry, Expect/Content-Length
// handling, and always looping back to accept another request on the
// same connection.
type ServerProcessor struct {
	Engine *Engine
}

func (p *ServerProcessor) Start(s *Session) {
	s.Status = p.AfterProcessing(s)
}

func (p *ServerProcessor) AfterHeaders(s *Session) Status {
	if expect := s.Inbound.Get("Expect"); expect != "" {
		if expect == "100-continue" {
			s.Enqueue([]byte("HTTP/1.1 100 Continue\r\n\r\n"))
		} else {
			p.Engine.replyError(s, 417, nil)
			return StatusError
		}
	}

	length := 0
	if cl := s.Inbound.Get("Content-Length"); cl != "" {
		if n, err := strconv.Atoi(cl); err == nil {
			length = n
		}
	}

	if length > p.Engine.MaxContentLength() {
		p.Engine.replyError(s, 413, nil)
		return StatusError
	}

	s.ContentLength = length
	return StatusContent
}

func (p *ServerProcessor) Handle(s *Session) {
	p.Engine.Dispatch(s)
}

func (p *ServerProcessor) AfterProcessing(s *Session) Status {
	return StatusRequest
}

func (p *ServerProcessor) Recycle(s *Session) {}

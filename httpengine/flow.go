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

import (
	"context"

	trns "github.com/nabbar/go-httpengine/httpengine/transport"
)

// Flow drives one Session through its connection's read/write cycle,
// delegating the request/response-specific logic to a Processor. It
// is transport-agnostic: In and Out may be the same connection (the
// common TCP/UNIX case) or two independent streams (stdio).
type Flow struct {
	Processor Processor
	Session   *Session
	In        trns.Conn
	Out       trns.Conn

	ctx context.Context

	writePending bool
}

// NewFlow builds a Flow over a single bidirectional connection.
func NewFlow(ctx context.Context, p Processor, s *Session, conn trns.Conn) *Flow {
	return &Flow{Processor: p, Session: s, In: conn, Out: conn, ctx: ctx}
}

// NewSplitFlow builds a Flow over two independent connections, as used
// for a stdio-backed session where input and output are not the same
// descriptor.
func NewSplitFlow(ctx context.Context, p Processor, s *Session, in, out trns.Conn) *Flow {
	return &Flow{Processor: p, Session: s, In: in, Out: out, ctx: ctx}
}

// Start primes the session, flushes anything the processor queued up
// front (a client's first pipelined request), and performs its first
// read (or recycles immediately if the processor decided there is
// nothing to do).
func (f *Flow) Start() {
	f.Processor.Start(f.Session)

	f.send()

	switch f.Session.Status {
	case StatusRequest, StatusStatus:
		f.readLine()
	case StatusShutdown:
		f.recycle()
	}
}

// send writes the next queued outbound message, if any, or recycles
// the session once the queue has drained and the processor asked for
// the connection to close.
func (f *Flow) send() {
	if f.Session.Status == StatusShutdown || f.writePending {
		return
	}

	if len(f.Session.outboundQueue) > 0 {
		next := f.Session.outboundQueue[0]
		f.Session.outboundQueue = f.Session.outboundQueue[1:]
		f.writePending = true
		f.Out.AsyncWrite(f.ctx, next, f.handleWrite)
		return
	}

	if f.Session.closeAfterSend {
		f.recycle()
	}
}

func (f *Flow) readLine() {
	f.In.AsyncReadUntil(f.ctx, '\n', f.handleReadLine)
}

func (f *Flow) readRemainingContent() {
	n := f.Session.RemainingBytes()
	if n <= 0 {
		n = 1
	}
	f.In.AsyncReadAtLeast(f.ctx, n, f.handleReadContent)
}

func (f *Flow) handleReadLine(data []byte, err error) {
	f.handleRead(string(data), nil, err)
}

func (f *Flow) handleReadContent(data []byte, err error) {
	f.handleRead("", data, err)
}

// recycle tears the session down: it asks the processor to clear its
// own state, marks the session shut down, flushes any remaining
// queued output, shuts down and closes the connection(s), and returns
// the session to the free pool.
func (f *Flow) recycle() {
	f.Processor.Recycle(f.Session)

	f.Session.Status = StatusShutdown
	f.Session.closeAfterSend = false
	f.Session.outboundQueue = nil

	f.send()

	_ = f.In.ShutdownBoth()
	_ = f.In.Close()
	if f.Out != f.In {
		_ = f.Out.ShutdownBoth()
		_ = f.Out.Close()
	}

	f.Session.free = true
}

// handleRead implements the full state transition logic for a
// completed read: parsing the request/status line, absorbing header
// lines, and driving the content-read loop.
func (f *Flow) handleRead(line string, content []byte, err error) {
	s := f.Session

	if s.Status == StatusShutdown {
		return
	}

	if err != nil {
		s.Status = StatusError
	}

	wasRequest := s.Status == StatusRequest
	wasStart := s.Status == StatusRequest || s.Status == StatusStatus

	var version ProtocolVersion

	switch s.Status {
	case StatusRequest:
		rl := ParseRequestLine(line)
		if rl.Valid() {
			s.InboundRequest = rl
			s.Status = StatusHeader
		} else {
			s.Status = StatusError
		}
		version = rl.Version

	case StatusStatus:
		sl := ParseStatusLine(line)
		if sl.Valid() {
			s.InboundStatus = sl
			s.Status = StatusHeader
		} else {
			s.Status = StatusError
		}
		version = sl.Version

	case StatusHeader:
		if IsBlankLine(line) {
			s.Status = f.Processor.AfterHeaders(s)
			f.send()
			s.Content = nil
		} else if !s.Inbound.Absorb(line) {
			s.Status = StatusError
		}
	}

	if wasStart && s.Status != StatusError && version.Compare(ProtocolVersion{Major: 2, Minor: 0}) >= 0 {
		s.Status = StatusError
	}

	if wasStart && s.Status == StatusHeader {
		s.Inbound = NewHeaders()
	} else if wasRequest && s.Status == StatusError {
		code := 400
		if version.Compare(ProtocolVersion{Major: 2, Minor: 0}) >= 0 {
			code = 505
		}
		accept := ""
		contentType, body := BuildErrorReply(accept, code)
		h := NewHeaders()
		h.Append("Content-Type", contentType)
		s.Outbound = NewHeaders()
		s.Reply(code, body, h)
		s.forceShutdownAfterWrite()
		f.send()
		s.Status = StatusProcessing
	}

	switch {
	case s.Status == StatusHeader:
		f.readLine()

	case s.Status == StatusContent:
		s.Content = append(s.Content, content...)
		if s.RemainingBytes() == 0 {
			s.Status = StatusProcessing
			f.Processor.Handle(s)
			s.Status = f.Processor.AfterProcessing(s)
			f.send()

			switch s.Status {
			case StatusShutdown:
				f.recycle()
			case StatusRequest, StatusStatus:
				f.readLine()
			}
		} else {
			f.readRemainingContent()
		}

	case s.Status == StatusError:
		f.recycle()
	}
}

// handleWrite is invoked once an outbound write completes: it clears
// the pending flag, recycles on error, otherwise advances the
// processor past a completed Processing phase and either recycles or
// sends/reads the next thing queued.
func (f *Flow) handleWrite(_ int, err error) {
	f.writePending = false

	s := f.Session

	if s.Status == StatusShutdown {
		return
	}

	if err != nil {
		f.recycle()
		return
	}

	if s.Status == StatusProcessing {
		if s.forceShutdown {
			s.Status = StatusShutdown
		} else {
			s.Status = f.Processor.AfterProcessing(s)
		}
	}

	if s.Status == StatusShutdown {
		f.recycle()
	} else {
		f.send()
	}
}

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

// Status is a session's position in the request/response lifecycle.
type Status int

const (
	StatusRequest Status = iota
	StatusStatus
	StatusHeader
	StatusContent
	StatusProcessing
	StatusError
	StatusShutdown
)

func (s Status) String() string {
	switch s {
	case StatusRequest:
		return "request"
	case StatusStatus:
		return "status"
	case StatusHeader:
		return "header"
	case StatusContent:
		return "content"
	case StatusProcessing:
		return "processing"
	case StatusError:
		return "error"
	case StatusShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// Session holds everything the flow controller and the servlet
// dispatcher need about one connection's current request/response
// cycle. A Session does not manage its own lifetime: it is owned and
// recycled by an Engine's session registry, keyed by a stable
// identifier, so nothing here keeps itself alive by holding a
// reference to itself.
type Session struct {
	ID string

	Status Status

	InboundRequest RequestLine
	InboundStatus  StatusLine
	Inbound        *Headers

	// Negotiated records, per inbound header name, the value content
	// negotiation selected for the current dispatch; the dispatcher also
	// defaults each one onto Outbound under its response header name, so
	// handlers can inspect either.
	Negotiated *Headers
	Outbound   *Headers

	Content       []byte
	ContentLength int

	IsHEAD bool

	requests int
	replies  int

	informational bool

	closeAfterSend bool
	forceShutdown  bool
	outboundQueue  [][]byte

	free bool
}

// NewSession returns a freshly reset session ready to process its
// first request line.
func NewSession(id string) *Session {
	s := &Session{ID: id}
	s.Reset()
	return s
}

// Reset restores a session to its initial state, for reuse by the
// registry once a connection cycle has fully recycled.
func (s *Session) Reset() {
	s.Status = StatusRequest
	s.InboundRequest = RequestLine{}
	s.InboundStatus = StatusLine{}
	s.Inbound = NewHeaders()
	s.Negotiated = NewHeaders()
	s.Outbound = NewHeaders()
	s.Content = nil
	s.ContentLength = 0
	s.IsHEAD = false
	s.informational = false
	s.closeAfterSend = false
	s.forceShutdown = false
	s.outboundQueue = nil
	s.free = false
}

// Queries returns the number of complete request/response exchanges
// this session has driven, combining both directions: a server
// session counts replies, a client session counts requests.
func (s *Session) Queries() int {
	return s.requests + s.replies
}

// RemainingBytes returns how many more content bytes are expected
// before the body is complete.
func (s *Session) RemainingBytes() int {
	n := s.ContentLength - len(s.Content)
	if n < 0 {
		return 0
	}
	return n
}

// Enqueue appends a raw outbound message to be written once the
// connection is free to send.
func (s *Session) Enqueue(data []byte) {
	s.outboundQueue = append(s.outboundQueue, data)
}

// CloseAfterSend marks that the connection should shut down once the
// outbound queue drains.
func (s *Session) CloseAfterSend() {
	s.closeAfterSend = true
}

// WillCloseAfterSend reports whether the connection is marked to shut
// down once the outbound queue drains, e.g. after a 4xx/5xx reply.
func (s *Session) WillCloseAfterSend() bool {
	return s.closeAfterSend
}

// forceShutdownAfterWrite marks that, once the currently queued
// message finishes writing, the flow controller should go straight to
// Shutdown without asking the processor for another AfterProcessing
// transition. This is used for the one case where a reply is
// synthesized before any processor ever ran: a malformed request or
// status line.
func (s *Session) forceShutdownAfterWrite() {
	s.forceShutdown = true
	s.closeAfterSend = true
}

// ReceivedInformational records that a 1xx response was seen so the
// client processor can suppress delivering it as a final reply, per
// the informational-response handling carried over from the source
// engine's client processor.
func (s *Session) ReceivedInformational() {
	s.informational = true
}

// ConsumeInformational reports and clears the informational-response
// flag.
func (s *Session) ConsumeInformational() bool {
	v := s.informational
	s.informational = false
	return v
}

// Free reports whether the session has been fully recycled and may be
// released by the registry.
func (s *Session) Free() bool {
	return s.free
}

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

// ClientRequest is one queued outbound request: the wire fields plus
// the callbacks to invoke once a reply for it arrives.
type ClientRequest struct {
	Method   string
	Resource string
	Header   *Headers
	Body     string

	OnSuccess func(s *Session)
	OnFailure func(s *Session)
}

// ClientProcessor implements the client-side half of the protocol: a
// queue of pipelined requests on a single connection, dispatching each
// reply to the success or failure callback appropriate to its status
// class, and latching informational (1xx) responses rather than
// treating them as final.
type ClientProcessor struct {
	pending  []ClientRequest
	inFlight []ClientRequest

	onSuccess func(s *Session)
	onFailure func(s *Session)

	doFail bool
}

// Query enqueues a request and returns the processor for chaining.
func (p *ClientProcessor) Query(req ClientRequest) *ClientProcessor {
	p.pending = append(p.pending, req)
	return p
}

// Then sets both the success and the failure callback used for
// requests that carry none of their own.
func (p *ClientProcessor) Then(cb func(s *Session)) *ClientProcessor {
	return p.Success(cb).Failure(cb)
}

// Success sets the fallback success callback.
func (p *ClientProcessor) Success(cb func(s *Session)) *ClientProcessor {
	p.onSuccess = cb
	return p
}

// Failure sets the fallback failure callback. If the processor has
// already been marked as failed (SetFail), the callback fires
// immediately with a blank session, so a caller learns about e.g. a
// name-resolution failure even though no connection ever existed.
func (p *ClientProcessor) Failure(cb func(s *Session)) *ClientProcessor {
	p.onFailure = cb

	if p.doFail && cb != nil {
		cb(NewSession(""))
	}

	return p
}

// SetFail marks the processor as failed before any connection was
// made; any failure callback attached from now on fires immediately.
func (p *ClientProcessor) SetFail() {
	p.doFail = true
}

func (p *ClientProcessor) Start(s *Session) {
	s.Status = p.AfterProcessing(s)
}

func (p *ClientProcessor) AfterHeaders(s *Session) Status {
	length := 0

	headOnly := len(p.inFlight) > 0 && p.inFlight[0].Method == "HEAD"
	if !headOnly {
		if cl := s.Inbound.Get("Content-Length"); cl != "" {
			if n, err := strconv.Atoi(cl); err == nil {
				length = n
			}
		}
	}

	s.ContentLength = length
	return StatusContent
}

func (p *ClientProcessor) Handle(s *Session) {
	if s.InboundStatus.Code/100 == 1 {
		s.ReceivedInformational()
		return
	}

	if len(p.inFlight) == 0 {
		return
	}

	req := p.inFlight[0]
	p.inFlight = p.inFlight[1:]

	switch s.InboundStatus.Code / 100 {
	case 2, 3:
		if req.OnSuccess != nil {
			req.OnSuccess(s)
		} else if p.onSuccess != nil {
			p.onSuccess(s)
		}
	default:
		if req.OnFailure != nil {
			req.OnFailure(s)
		} else if p.onFailure != nil {
			p.onFailure(s)
		}
	}
}

func (p *ClientProcessor) AfterProcessing(s *Session) Status {
	if s.ConsumeInformational() {
		return StatusStatus
	}

	if len(p.pending) > 0 {
		req := p.pending[0]
		p.pending = p.pending[1:]
		p.inFlight = append(p.inFlight, req)

		s.Request(req.Method, req.Resource, req.Header, req.Body)
		return StatusStatus
	}

	return StatusShutdown
}

func (p *ClientProcessor) Recycle(s *Session) {
	p.pending = nil
	p.inFlight = nil
}

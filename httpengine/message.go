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

// Reply constructs an outbound HTTP response message for s: a status
// line, a Content-Length header (and any headers supplied by extra),
// and body. HEAD requests have their body suppressed on the wire but
// still count as a reply. The message is queued on the session and
// the reply counter is incremented, which is what signals a servlet
// handler actually answered the request.
func (s *Session) Reply(status int, body string, extra *Headers) {
	sl := NewStatusLine(status, ProtocolVersion{Major: 1, Minor: 1})

	h := s.Outbound
	if h == nil {
		h = NewHeaders()
	}
	if extra != nil {
		for _, k := range extra.Keys() {
			h.Append(k, extra.Get(k))
		}
	}
	h.InsertDefault("Content-Length", strconv.Itoa(len(body)))
	if status >= 400 {
		h.InsertDefault("Connection", "close")
		s.CloseAfterSend()
	}

	out := sl.String() + h.String() + "\r\n"
	if !s.IsHEAD {
		out += body
	}

	s.Enqueue([]byte(out))
	s.replies++
}

// Request constructs an outbound HTTP request message for s: a
// request line, headers, and body. This is the client-side
// counterpart of Reply, used by the client processor's pipeline.
func (s *Session) Request(method, resource string, h *Headers, body string) {
	rl := NewRequestLine(method, resource)

	hdr := h
	if hdr == nil {
		hdr = NewHeaders()
	}
	if body != "" {
		hdr.InsertDefault("Content-Length", strconv.Itoa(len(body)))
	}

	out := rl.Assemble(true) + hdr.String() + "\r\n" + body

	s.Enqueue([]byte(out))
	s.requests++
}

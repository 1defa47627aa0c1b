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

import "strings"

// Dispatch runs the server-side servlet matching algorithm for s,
// whose InboundRequest has already been parsed. It tries every
// registered servlet in order: a servlet whose resource and method
// both match is invoked, and if its handler actually replies
// (Session.Queries increases), dispatch stops there. A matching
// handler that does not reply is not a final answer: dispatch keeps
// trying later servlets, the load-bearing "try next servlet"
// fallthrough this engine preserves.
//
// If nothing replies, Dispatch builds and sends one of 501 (no
// servlet's method pattern matches at all), 406 (a matching servlet's
// negotiation failed), 405 (resource matched but method did not, for a
// method that isn't exempt), or 404 (nothing matched the resource).
func (e *Engine) Dispatch(s *Session) {
	var (
		uri              = ParseURI(s.InboundRequest.Resource)
		resource         = uri.Original.Path
		resourceAndQuery = uri.Original.Path + "?" + uri.Original.Query
		method           = s.InboundRequest.Method
	)

	s.IsHEAD = method == "HEAD"

	var (
		methodSupported bool
		badNegotiation  bool
		methods         = map[string]bool{}
	)

	for _, sv := range e.servletList() {
		resourceMatch := sv.Resource.FindStringSubmatch(resource)
		if resourceMatch == nil {
			resourceMatch = sv.Resource.FindStringSubmatch(resourceAndQuery)
		}

		methodMatch := sv.Method.MatchString(method)
		if !methodMatch && s.IsHEAD {
			methodMatch = sv.Method.MatchString("GET")
		}

		if methodMatch {
			methodSupported = true
		}

		if resourceMatch == nil {
			continue
		}

		if !methodMatch {
			for _, wk := range WellKnownMethods {
				if sv.Method.MatchString(wk) {
					methods[wk] = true
				}
			}
			continue
		}

		s.Outbound = NewHeaders()
		s.Outbound.InsertDefault("Server", e.serverIdent())

		if !negotiateServlet(s, sv) {
			badNegotiation = true
		} else {
			before := s.Queries()
			sv.Handler(s, resourceMatch)
			if s.Queries() > before {
				return
			}
		}

		methods[method] = true
	}

	switch {
	case !methodSupported:
		e.replyError(s, 501, nil)
	case badNegotiation:
		e.replyError(s, 406, nil)
	case trigger405(method, methods):
		allow := make([]string, 0, len(methods))
		for m := range methods {
			allow = append(allow, m)
		}
		e.replyError(s, 405, allow)
	default:
		e.replyError(s, 404, nil)
	}
}

// negotiateServlet runs every negotiation the servlet requires. Each
// negotiated value is recorded under its inbound header name for the
// handler to inspect, and defaulted onto the outbound headers under
// the matching response header (Accept selects Content-Type, and so
// on), so a handler that does not set one explicitly replies with the
// negotiated representation.
func negotiateServlet(s *Session, sv *Servlet) bool {
	for header, offer := range sv.Negotiations {
		negotiated := Negotiate(s.Inbound.Get(header), offer)
		if negotiated == "" {
			return false
		}

		s.Negotiated.Append(header, negotiated)

		if out, ok := negotiatedOutboundHeader[strings.ToLower(header)]; ok {
			s.Outbound.InsertDefault(out, negotiated)
		}
	}
	return true
}

// trigger405 reports whether the accumulated candidate methods should
// refuse the request with 405: only when at least one of them is
// outside the exempt set, so that resources carrying nothing but
// OPTIONS/TRACE handlers do not produce a confusing 405.
func trigger405(method string, methods map[string]bool) bool {
	for m := range methods {
		if !methodsExemptFrom405[m] {
			return true
		}
	}
	return false
}

func (e *Engine) replyError(s *Session, status int, allow []string) {
	accept := s.Inbound.Get("Accept")
	contentType, body := BuildErrorReply(accept, status)

	h := NewHeaders()
	h.Append("Content-Type", contentType)
	for _, a := range allow {
		h.Append("Allow", a)
	}

	s.Reply(status, body, h)
}

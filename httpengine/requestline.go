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

import "regexp"

var requestLineExpr = regexp.MustCompile(
	`^(` + grammarToken + `) ([\w\d%/.:;()+?=&-]+|\*) HTTP/([0-9]+)\.([0-9]+)\r?\n?$`,
)

// RequestLine is the first line of an HTTP request: method, resource
// and protocol version.
type RequestLine struct {
	Method   string
	Resource string
	Version  ProtocolVersion
}

// ParseRequestLine parses a raw request line. An unparsable line
// yields a RequestLine whose Valid() is false.
func ParseRequestLine(line string) RequestLine {
	m := requestLineExpr.FindStringSubmatch(line)
	if m == nil {
		return RequestLine{}
	}

	return RequestLine{
		Method:   m[1],
		Resource: m[2],
		Version:  NewProtocolVersion(m[3], m[4]),
	}
}

// NewRequestLine builds a request line for a method and resource at
// HTTP/1.1, the default outbound protocol version.
func NewRequestLine(method, resource string) RequestLine {
	return RequestLine{
		Method:   method,
		Resource: resource,
		Version:  ProtocolVersion{Major: 1, Minor: 1},
	}
}

// Valid reports whether both the resource and the protocol version are
// usable.
func (r RequestLine) Valid() bool {
	return r.Version.Valid() && r.Resource != ""
}

// Assemble renders the request line on the wire, optionally followed
// by a trailing CRLF.
func (r RequestLine) Assemble(newline bool) string {
	trailer := ""
	if newline {
		trailer = "\r\n"
	}

	if !r.Valid() {
		return "FAIL * HTTP/0.0" + trailer
	}

	return r.Method + " " + r.Resource + " " + r.Version.String() + trailer
}

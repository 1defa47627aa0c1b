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
	"regexp"
	"strconv"
)

var statusLineExpr = regexp.MustCompile(
	`^HTTP/([0-9]+)\.([0-9]+) ([0-9]{3}) (.*?)\r?\n?$`,
)

// StatusLine is the first line of an HTTP response: protocol version,
// status code and reason phrase.
type StatusLine struct {
	Version     ProtocolVersion
	Code        int
	Description string
}

// ParseStatusLine parses a raw status line. An unparsable line yields
// a StatusLine whose Valid() is false.
func ParseStatusLine(line string) StatusLine {
	m := statusLineExpr.FindStringSubmatch(line)
	if m == nil {
		return StatusLine{}
	}

	code, err := strconv.Atoi(m[3])
	if err != nil {
		return StatusLine{}
	}

	return StatusLine{
		Version:     NewProtocolVersion(m[1], m[2]),
		Code:        code,
		Description: m[4],
	}
}

// NewStatusLine builds a status line for a status code at the given
// protocol version, filling in the reason phrase from the well-known
// status table.
func NewStatusLine(code int, version ProtocolVersion) StatusLine {
	return StatusLine{
		Version:     version,
		Code:        code,
		Description: StatusDescription(code),
	}
}

// Valid reports whether the status code and protocol version are both
// well-formed.
func (s StatusLine) Valid() bool {
	return s.Code >= 100 && s.Code < 600 && s.Version.Major > 0
}

// String renders the status line on the wire, terminated by CRLF.
func (s StatusLine) String() string {
	if !s.Valid() {
		return "HTTP/1.1 500 Bad Status Line\r\n"
	}

	return s.Version.String() + " " + strconv.Itoa(s.Code) + " " + s.Description + "\r\n"
}

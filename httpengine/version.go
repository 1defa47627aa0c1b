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
	"fmt"
	"strconv"
)

// ProtocolVersion is an HTTP protocol version number, e.g. HTTP/1.1.
type ProtocolVersion struct {
	Major int
	Minor int
}

// ParseProtocolVersion parses a "HTTP/major.minor" string. An invalid
// string yields the zero value, which is itself invalid.
func ParseProtocolVersion(s string) ProtocolVersion {
	var major, minor int

	if n, err := fmt.Sscanf(s, "HTTP/%d.%d", &major, &minor); err != nil || n != 2 {
		return ProtocolVersion{}
	}

	return ProtocolVersion{Major: major, Minor: minor}
}

// NewProtocolVersion builds a version from already-parsed major/minor
// decimal digit strings, as produced by the status-line and
// request-line regular expressions.
func NewProtocolVersion(major, minor string) ProtocolVersion {
	m, errM := strconv.Atoi(major)
	n, errN := strconv.Atoi(minor)

	if errM != nil || errN != nil {
		return ProtocolVersion{}
	}

	return ProtocolVersion{Major: m, Minor: n}
}

// Valid reports whether the version is at least HTTP/0.9.
func (v ProtocolVersion) Valid() bool {
	return v.Compare(ProtocolVersion{Major: 0, Minor: 9}) >= 0
}

// Compare returns -1, 0 or 1 comparing v to o, ordering first by Major
// then by Minor.
func (v ProtocolVersion) Compare(o ProtocolVersion) int {
	if v.Major != o.Major {
		if v.Major < o.Major {
			return -1
		}
		return 1
	}
	if v.Minor != o.Minor {
		if v.Minor < o.Minor {
			return -1
		}
		return 1
	}
	return 0
}

func (v ProtocolVersion) String() string {
	return fmt.Sprintf("HTTP/%d.%d", v.Major, v.Minor)
}

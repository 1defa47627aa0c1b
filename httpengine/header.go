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
	"strings"
)

var headerFieldExpr = regexp.MustCompile(
	`^(` + grammarFieldName + `):` + grammarOWS + `(` + grammarFieldContent + `)?` + grammarOWS + `\r?\n?$`,
)

var headerContinuationExpr = regexp.MustCompile(
	`^` + grammarRWS + `(` + grammarFieldContent + `)?` + grammarOWS + `\r?\n?$`,
)

// Headers is a case-insensitive, multi-value HTTP header map. Multiple
// values for the same field name are joined with ",", matching the
// comma-combination rule of RFC 7230 §3.2.2.
type Headers struct {
	values     map[string]string
	order      []string
	canonical  map[string]string
	lastHeader string
}

// NewHeaders returns an empty header map ready for use.
func NewHeaders() *Headers {
	return &Headers{
		values:    map[string]string{},
		canonical: map[string]string{},
	}
}

func foldKey(key string) string {
	return strings.ToLower(key)
}

// Append adds a value for key, comma-joining it onto any existing
// value. A call with an empty value is a no-op and returns false.
func (h *Headers) Append(key, value string) bool {
	if value == "" {
		return false
	}

	fk := foldKey(key)

	if existing, ok := h.values[fk]; ok {
		h.values[fk] = existing + "," + value
		return true
	}

	h.values[fk] = value
	h.canonical[fk] = key
	h.order = append(h.order, fk)
	return false
}

// InsertDefault sets key to value only if key is not already present,
// never overwriting a caller-set value. This mirrors the "never
// overwrite" semantics used to compose default header sets.
func (h *Headers) InsertDefault(key, value string) {
	fk := foldKey(key)
	if _, ok := h.values[fk]; ok {
		return
	}
	h.values[fk] = value
	h.canonical[fk] = key
	h.order = append(h.order, fk)
}

// Get returns the (possibly comma-joined) value for key.
func (h *Headers) Get(key string) string {
	return h.values[foldKey(key)]
}

// Has reports whether key is present.
func (h *Headers) Has(key string) bool {
	_, ok := h.values[foldKey(key)]
	return ok
}

// IsBlankLine reports whether line is the blank line terminating a
// header block, with or without its line ending.
func IsBlankLine(line string) bool {
	switch line {
	case "", "\r", "\n", "\r\n":
		return true
	default:
		return false
	}
}

// Absorb feeds one raw header line (or continuation line) into the
// parser. It returns whether the line was recognised as part of the
// header block; a false return means the line is malformed, not that
// the block is complete — the caller detects completion with
// IsBlankLine before absorbing. Folded continuation lines are
// absorbed onto the previous field, per RFC 7230's obsolete
// line-folding allowance.
func (h *Headers) Absorb(line string) bool {
	if h.lastHeader != "" {
		if m := headerContinuationExpr.FindStringSubmatch(line); m != nil {
			if m[1] != "" {
				h.Append(h.lastHeader, m[1])
			}
			return true
		}
	}

	m := headerFieldExpr.FindStringSubmatch(line)
	if m == nil {
		h.lastHeader = ""
		return false
	}

	h.lastHeader = m[1]
	if m[2] != "" {
		h.Append(m[1], m[2])
	}
	return true
}

// Keys returns the header names in first-seen order.
func (h *Headers) Keys() []string {
	out := make([]string, 0, len(h.order))
	for _, fk := range h.order {
		out = append(out, h.canonical[fk])
	}
	return out
}

// String renders the header block as "Key: value\r\n" lines, in
// first-seen order.
func (h *Headers) String() string {
	var b strings.Builder
	for _, fk := range h.order {
		b.WriteString(h.canonical[fk])
		b.WriteString(": ")
		b.WriteString(h.values[fk])
		b.WriteString("\r\n")
	}
	return b.String()
}

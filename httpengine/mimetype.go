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

// MimeType is a parsed RFC 2045/2046 media type: type, subtype and an
// ordered set of attribute parameters.
type MimeType struct {
	Type       string
	Subtype    string
	Attributes []MimeAttribute
	valid      bool
}

// MimeAttribute is a single "key=value" parameter of a media type.
type MimeAttribute struct {
	Key   string
	Value string
}

func isCTL(c byte) bool {
	return c <= 31 || c == 127
}

func isTSpecial(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '@', ',', ';', ':', '\\', '"', '/', '[', ']', '?', '=':
		return true
	}
	return false
}

func is7Bit(c byte) bool {
	return c < 128
}

func isTokenChar(c byte) bool {
	return is7Bit(c) && c != ' ' && !isCTL(c) && !isTSpecial(c)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

// mimeParseState is the hand-rolled scanner state used by
// ParseMimeType; media type values embed quoted, escaped parameter
// values that a single regular expression would not cleanly capture.
type mimeParseState int

const (
	stateType mimeParseState = iota
	stateSubtype
	stateKey
	stateValue
	stateValueQuoted
	stateValueEscaped
)

// ParseMimeType parses a media type such as "text/plain; charset=utf-8".
// An unparsable value yields a MimeType whose Valid() is false.
func ParseMimeType(s string) MimeType {
	var (
		typ, sub   strings.Builder
		key, value strings.Builder
		attrs      []MimeAttribute
		state      = stateType
		ok         = true
	)

	flushAttr := func() {
		if key.Len() > 0 {
			attrs = append(attrs, MimeAttribute{Key: strings.ToLower(key.String()), Value: value.String()})
		}
		key.Reset()
		value.Reset()
	}

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch state {
		case stateType:
			if c == '/' {
				state = stateSubtype
			} else if isTokenChar(c) {
				typ.WriteByte(c)
			} else if isSpace(c) {
				// tolerate leading/trailing space around the slash
			} else {
				ok = false
			}

		case stateSubtype:
			if c == ';' {
				state = stateKey
			} else if isTokenChar(c) {
				sub.WriteByte(c)
			} else if isSpace(c) {
				// ignore
			} else {
				ok = false
			}

		case stateKey:
			if c == '=' {
				state = stateValue
			} else if c == ';' {
				flushAttr()
			} else if isTokenChar(c) {
				key.WriteByte(c)
			} else if isSpace(c) {
				// ignore
			} else {
				ok = false
			}

		case stateValue:
			if c == '"' && value.Len() == 0 {
				state = stateValueQuoted
			} else if c == ';' {
				flushAttr()
				state = stateKey
			} else {
				value.WriteByte(c)
			}

		case stateValueQuoted:
			if c == '\\' {
				state = stateValueEscaped
			} else if c == '"' {
				state = stateKey
			} else {
				value.WriteByte(c)
			}

		case stateValueEscaped:
			value.WriteByte(c)
			state = stateValueQuoted
		}
	}

	flushAttr()

	t := strings.ToLower(strings.TrimSpace(typ.String()))
	st := strings.ToLower(strings.TrimSpace(sub.String()))

	if t == "" || st == "" {
		ok = false
	}
	if t == "*" && st != "*" {
		ok = false
	}

	return MimeType{Type: t, Subtype: st, Attributes: attrs, valid: ok}
}

// Valid reports whether the media type parsed successfully and obeys
// the wildcard rule ("*/*" is the only legal use of a wildcard type).
func (m MimeType) Valid() bool {
	return m.valid
}

// Wildcard reports whether this media type is the full wildcard "*/*".
func (m MimeType) Wildcard() bool {
	return m.Type == "*" && m.Subtype == "*"
}

// TypeWildcard reports whether only the subtype is wildcarded, e.g.
// "text/*".
func (m MimeType) TypeWildcard() bool {
	return m.Type != "*" && m.Subtype == "*"
}

// String re-serializes the media type, quoting attribute values that
// contain non-token characters.
func (m MimeType) String() string {
	var b strings.Builder
	b.WriteString(m.Type)
	b.WriteByte('/')
	b.WriteString(m.Subtype)

	for _, a := range m.Attributes {
		b.WriteString("; ")
		b.WriteString(a.Key)
		b.WriteByte('=')

		needsQuote := a.Value == ""
		for i := 0; i < len(a.Value); i++ {
			if !isTokenChar(a.Value[i]) {
				needsQuote = true
				break
			}
		}

		if !needsQuote {
			b.WriteString(a.Value)
			continue
		}

		b.WriteByte('"')
		for i := 0; i < len(a.Value); i++ {
			c := a.Value[i]
			if c == '"' || c == '\\' {
				b.WriteByte('\\')
			}
			b.WriteByte(c)
		}
		b.WriteByte('"')
	}

	return b.String()
}

// Equal reports mime-type equality for negotiation purposes: equal if
// either side is the full wildcard, if the types match and the
// subtype side is wildcarded, or if type and subtype match exactly.
func (m MimeType) Equal(o MimeType) bool {
	if m.Wildcard() || o.Wildcard() {
		return true
	}
	if m.Type != o.Type {
		return false
	}
	if m.Subtype == "*" || o.Subtype == "*" {
		return true
	}
	return m.Subtype == o.Subtype
}

// Less orders mime types from least to most specific: "*/*" <
// "type/*" < "type/subtype", and between media types of the same
// type/subtype, fewer attributes < more attributes, with a final
// lexical tie-break on the re-serialized value.
func (m MimeType) Less(o MimeType) bool {
	rank := func(mt MimeType) int {
		switch {
		case mt.Wildcard():
			return 0
		case mt.TypeWildcard():
			return 1
		default:
			return 2
		}
	}

	if rank(m) != rank(o) {
		return rank(m) < rank(o)
	}

	if m.Type == o.Type && m.Subtype == o.Subtype && len(m.Attributes) != len(o.Attributes) {
		return len(m.Attributes) < len(o.Attributes)
	}

	return m.String() < o.String()
}

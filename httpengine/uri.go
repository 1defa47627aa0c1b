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

var uriExpr = regexp.MustCompile(
	`^(([^:/?#]+):)?(//([^/?#]*))?([^?#]*)(\?([^#]*))?(#(.*))?$`,
)

// URIComponents holds the five generic components of a URI, as
// defined by RFC 3986 Appendix B.
type URIComponents struct {
	Scheme    string
	Authority string
	Path      string
	Query     string
	Fragment  string
}

// URI is a parsed URI: the original (still percent-encoded)
// components, and their independently percent-decoded counterparts.
type URI struct {
	Original URIComponents
	Decoded  URIComponents
	valid    bool
}

// ParseURI splits s into its components using the RFC 3986 Appendix B
// regular expression, then percent-decodes each component
// independently. Decode failures (bad escapes, trailing '%') mark the
// URI invalid but do not stop parsing.
func ParseURI(s string) URI {
	m := uriExpr.FindStringSubmatch(s)
	if m == nil {
		return URI{}
	}

	orig := URIComponents{
		Scheme:    m[2],
		Authority: m[4],
		Path:      m[5],
		Query:     m[7],
		Fragment:  m[9],
	}

	valid := true
	decode := func(c string) string {
		ok := true
		d := decodePercent(c, &ok)
		if !ok {
			valid = false
		}
		return d
	}

	dec := URIComponents{
		Scheme:    decode(orig.Scheme),
		Authority: decode(orig.Authority),
		Path:      decode(orig.Path),
		Query:     decode(orig.Query),
		Fragment:  decode(orig.Fragment),
	}

	return URI{Original: orig, Decoded: dec, valid: valid}
}

// Valid reports whether every component decoded without error.
func (u URI) Valid() bool {
	return u.valid
}

// String reconstructs the URI from its original (still-encoded)
// components.
func (u URI) String() string {
	var b strings.Builder

	if u.Original.Scheme != "" {
		b.WriteString(u.Original.Scheme)
		b.WriteByte(':')
	}
	if u.Original.Authority != "" {
		b.WriteString("//")
		b.WriteString(u.Original.Authority)
	}
	b.WriteString(u.Original.Path)
	if u.Original.Query != "" {
		b.WriteByte('?')
		b.WriteString(u.Original.Query)
	}
	if u.Original.Fragment != "" {
		b.WriteByte('#')
		b.WriteString(u.Original.Fragment)
	}

	return b.String()
}

func hexNibble(c byte, ok *bool) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		*ok = false
		return 0
	}
}

// decodePercent percent-decodes s, clearing *ok on any malformed
// escape sequence (including a trailing '%').
func decodePercent(s string, ok *bool) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			b.WriteByte(s[i])
			continue
		}
		if i+2 >= len(s) {
			*ok = false
			return b.String()
		}
		hi := hexNibble(s[i+1], ok)
		lo := hexNibble(s[i+2], ok)
		b.WriteByte(byte(hi<<4 | lo))
		i += 2
	}
	return b.String()
}

// FormValues decodes an application/x-www-form-urlencoded query
// string into an ordered set of key/value pairs. Only values are
// percent-decoded; an unterminated key (trailing '&' with no '=')
// marks the result invalid.
func FormValues(query string) (values map[string][]string, valid bool) {
	values = map[string][]string{}
	valid = true

	if query == "" {
		return values, valid
	}

	for _, pair := range strings.Split(query, "&") {
		if pair == "" {
			continue
		}

		idx := strings.IndexByte(pair, '=')
		if idx < 0 {
			valid = false
			continue
		}

		key := pair[:idx]
		val := pair[idx+1:]

		ok := true
		dv := decodePercent(val, &ok)
		if !ok {
			valid = false
		}

		values[key] = append(values[key], dv)
	}

	return values, valid
}

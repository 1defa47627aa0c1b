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
	"regexp"
	"strconv"
	"strings"
)

var qvalueWeightExpr = regexp.MustCompile(`^q\s*=\s*([01](\.[0-9]{0,3})?)$`)

// QValue is one quality-tagged value of an Accept-style header: a base
// value, an optional parsed MimeType (when the value looks like a
// media range), a set of attributes that precede the "q=" parameter,
// a quality in the 0-1000 range, and a set of extensions that follow
// it.
type QValue struct {
	Value      string
	Mime       MimeType
	hasMime    bool
	Attributes []string
	Quality    int
	Extensions []string
}

// ParseQValue parses one comma-separated element of an Accept-style
// header, such as "text/html;level=1;q=0.8;ext=foo".
func ParseQValue(val string) QValue {
	parts := splitRespectingQuotes(val, ';')
	if len(parts) == 0 {
		return QValue{Quality: 1000}
	}

	q := QValue{Value: strings.TrimSpace(parts[0]), Quality: 1000}

	mt := ParseMimeType(q.Value)
	if mt.Valid() {
		q.Mime = mt
		q.hasMime = true
	}

	foundQ := false
	for _, p := range parts[1:] {
		p = strings.TrimSpace(p)
		if !foundQ {
			if m := qvalueWeightExpr.FindStringSubmatch(p); m != nil {
				f, _ := strconv.ParseFloat(m[1], 64)
				q.Quality = int(f*1000 + 0.5)
				foundQ = true
				continue
			}
			q.Attributes = append(q.Attributes, p)
			continue
		}
		q.Extensions = append(q.Extensions, p)
	}

	return q
}

// splitRespectingQuotes splits s on sep, ignoring occurrences of sep
// inside double-quoted or backslash-escaped spans.
func splitRespectingQuotes(s string, sep byte) []string {
	var (
		out     []string
		cur     strings.Builder
		quoted  bool
		escaped bool
	)

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			cur.WriteByte(c)
			escaped = false
		case c == '\\' && quoted:
			escaped = true
		case c == '"':
			quoted = !quoted
			cur.WriteByte(c)
		case c == sep && !quoted:
			out = append(out, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	out = append(out, cur.String())
	return out
}

// SplitHeaderList splits a comma-separated header value into its
// elements, respecting quoted spans.
func SplitHeaderList(list string) []string {
	raw := splitRespectingQuotes(list, ',')
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r != "" {
			out = append(out, r)
		}
	}
	return out
}

// Wildcard reports whether this value is "*" or a wildcard mime range.
func (q QValue) Wildcard() bool {
	return q.Value == "*" || (q.hasMime && q.Mime.Wildcard())
}

// Equal reports whether q and o refer to the same negotiable value,
// ignoring quality: a literal value/attribute match, a media-range
// match when both sides parse as one, or a one-sided "*" wildcard
// whose attributes agree. A media range never matches a plain token.
func (q QValue) Equal(o QValue) bool {
	valueMatch := q.Value == o.Value
	attributesMatch := stringSlicesEqualSet(q.Attributes, o.Attributes)

	if valueMatch && attributesMatch {
		return true
	}

	if q.hasMime != o.hasMime {
		return false
	}

	if q.hasMime && o.hasMime {
		return q.Mime.Equal(o.Mime)
	}

	if q.Wildcard() != o.Wildcard() {
		return attributesMatch
	}

	return false
}

func stringSlicesEqualSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := map[string]bool{}
	for _, v := range a {
		seen[v] = true
	}
	for _, v := range b {
		if !seen[v] {
			return false
		}
	}
	return true
}

// Less orders QValue by quality first, then by mime-type specificity
// when both sides parse as a mime range, then by attribute count, then
// lexically, matching the ordering the negotiation algorithm relies on
// to pick the best match.
func (q QValue) Less(o QValue) bool {
	if q.Quality != o.Quality {
		return q.Quality < o.Quality
	}
	if q.hasMime && o.hasMime {
		if q.Mime.Less(o.Mime) {
			return true
		}
		if o.Mime.Less(q.Mime) {
			return false
		}
	}
	if q.Value == o.Value && len(q.Attributes) < len(o.Attributes) {
		return true
	}
	return q.String() < o.String()
}

// String renders the base value plus its attributes, without the
// quality or extensions.
func (q QValue) String() string {
	var b strings.Builder
	b.WriteString(q.Value)
	for _, a := range q.Attributes {
		b.WriteByte(';')
		b.WriteString(a)
	}
	return b.String()
}

// Full renders the value together with its ";q=D.DDD" quality suffix
// and any extensions, suitable for re-emitting a negotiated value on
// the wire.
func (q QValue) Full() string {
	var b strings.Builder
	b.WriteString(q.String())
	b.WriteString(fmt.Sprintf(";q=%s", formatQuality(q.Quality)))
	for _, e := range q.Extensions {
		b.WriteByte(';')
		b.WriteString(e)
	}
	return b.String()
}

func formatQuality(q int) string {
	s := fmt.Sprintf("%04d", q)
	whole := s[:1]
	frac := strings.TrimRight(s[1:], "0")
	if frac == "" {
		return whole
	}
	return whole + "." + frac
}

/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
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

package size

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Parse converts a human readable size ("10", "64KiB", "1.5 MiB") into a Size.
// A bare number is a byte count. Unit matching is case-insensitive and accepts
// the short forms K, M, G, T, P, E with or without the trailing "iB"/"B".
func Parse(s string) (Size, error) {
	s = strings.TrimSpace(s)

	if s == "" {
		return SizeNul, nil
	}

	var (
		pos  = len(s)
		unit = Size(1)
	)

	for i, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			pos = i
			break
		}
	}

	num := strings.TrimSpace(s[:pos])
	unt := strings.TrimSpace(s[pos:])

	switch strings.ToUpper(strings.TrimSuffix(strings.TrimSuffix(strings.ToUpper(unt), "IB"), "B")) {
	case "":
		unit = 1
	case "K":
		unit = KiB
	case "M":
		unit = MiB
	case "G":
		unit = GiB
	case "T":
		unit = TiB
	case "P":
		unit = PiB
	case "E":
		unit = EiB
	default:
		return SizeNul, fmt.Errorf("invalid size unit '%s'", unt)
	}

	if num == "" {
		return SizeNul, fmt.Errorf("invalid size value '%s'", s)
	}

	v, e := strconv.ParseFloat(num, 64)
	if e != nil {
		return SizeNul, e
	}

	return Size(v * float64(unit)), nil
}

// ParseInt64 converts a raw byte count into a Size, negative counts clamp to 0.
func ParseInt64(i int64) Size {
	if i < 0 {
		return SizeNul
	}
	return Size(i)
}

// MarshalText implements encoding.TextMarshaler.
func (s Size) MarshalText() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(s), 10)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the same
// forms as Parse.
func (s *Size) UnmarshalText(b []byte) error {
	v, e := Parse(string(b))
	if e != nil {
		return e
	}

	*s = v
	return nil
}

// MarshalJSON implements json.Marshaler as a raw byte count.
func (s Size) MarshalJSON() ([]byte, error) {
	return json.Marshal(uint64(s))
}

// UnmarshalJSON implements json.Unmarshaler, accepting either a number or a
// string in any form Parse accepts.
func (s *Size) UnmarshalJSON(b []byte) error {
	var i uint64
	if e := json.Unmarshal(b, &i); e == nil {
		*s = Size(i)
		return nil
	}

	var t string
	if e := json.Unmarshal(b, &t); e != nil {
		return e
	}

	return s.UnmarshalText([]byte(t))
}

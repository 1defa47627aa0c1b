/*
 * MIT License
 *
 * Copyright (c) 2023 Nicolas JUHEL
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

package protocol

import "encoding/json"

// MarshalText implements encoding.TextMarshaler.
func (p NetworkProtocol) MarshalText() ([]byte, error) {
	return []byte(p.Code()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown values decode
// to NetworkEmpty rather than failing, matching Parse.
func (p *NetworkProtocol) UnmarshalText(b []byte) error {
	*p = ParseBytes(b)
	return nil
}

// MarshalJSON implements json.Marshaler as the network code string.
func (p NetworkProtocol) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Code())
}

// UnmarshalJSON implements json.Unmarshaler, accepting a code string or a
// numeric enum value.
func (p *NetworkProtocol) UnmarshalJSON(b []byte) error {
	var s string
	if e := json.Unmarshal(b, &s); e == nil {
		*p = Parse(s)
		return nil
	}

	var i uint8
	if e := json.Unmarshal(b, &i); e != nil {
		return e
	}

	*p = NetworkProtocol(i)
	return nil
}

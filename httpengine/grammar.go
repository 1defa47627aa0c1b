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

// Grammar fragments ported from RFC 5234 (ABNF) and RFC 7230 (HTTP/1.1
// message syntax), expressed as Go regular expressions so the parsers
// in this package can be built with regexp instead of a hand-written
// scanner.
const (
	grammarAlpha = `[A-Za-z]`
	grammarDigit = `[0-9]`
	grammarOctet = `[\x00-\xff]`
	grammarVChar = `[\x21-\x7e]`
	grammarWSP   = `[ \t]`

	// OWS is optional whitespace, RWS is required whitespace, BWS is
	// "bad" whitespace tolerated around a delimiter for robustness.
	grammarOWS = `[ \t]*`
	grammarRWS = `[ \t]+`
	grammarBWS = `[ \t]*`

	grammarObsText = `[\x80-\xff]`

	grammarQuotedPair = `\\([\x09\x20-\x7e]|[\x80-\xff])`
	grammarQDText     = `([\x09\x20\x21\x23-\x5b\x5d-\x7e]|[\x80-\xff])`

	// grammarComment is intentionally non-nested: a parenthesized
	// comment containing a nested parenthesized comment is not
	// recognised. Header fields carrying deeply nested comments (some
	// User-Agent strings) fall back to plain field-content matching.
	grammarCText    = `([\x09\x20-\x27\x2a-\x5b\x5d-\x7e]|[\x80-\xff])`
	grammarComment  = `\(((` + grammarCText + `|` + grammarQuotedPair + `)*)\)`
	grammarQuotedStr = `"((` + grammarQDText + `|` + grammarQuotedPair + `)*)"`

	grammarTChar = "[-!#$%&'*+.^_`|~0-9A-Za-z]"
	grammarToken = grammarTChar + "+"

	grammarFieldName = grammarToken

	grammarFieldVChar   = `[\x21-\x7e\x80-\xff]`
	grammarFieldVCharWS = `(` + grammarFieldVChar + `|[ \t]+` + grammarFieldVChar + `)`
	grammarFieldContent = grammarFieldVChar + grammarFieldVCharWS + `*`
)

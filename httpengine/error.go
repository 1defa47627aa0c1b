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

import "github.com/nabbar/go-httpengine/errors"

const (
	ErrorParamsEmpty errors.CodeError = iota + errors.MinPkgHttpEngine
	ErrorRequestLineInvalid
	ErrorStatusLineInvalid
	ErrorURIInvalid
	ErrorMimeTypeInvalid
	ErrorHeaderIncomplete
	ErrorContentTooLarge
	ErrorExpectationFailed
	ErrorVersionNotSupported
	ErrorMethodNotAllowed
	ErrorNotFound
	ErrorNotAcceptable
	ErrorNotImplemented
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = errors.ExistInMapMessage(ErrorParamsEmpty)
	errors.RegisterIdFctMessage(ErrorParamsEmpty, getMessage)
}

func getMessage(code errors.CodeError) (message string) {
	switch code {
	case errors.UNK_ERROR:
		return ""
	case ErrorParamsEmpty:
		return "given parameters is empty"
	case ErrorRequestLineInvalid:
		return "request line could not be parsed"
	case ErrorStatusLineInvalid:
		return "status line could not be parsed"
	case ErrorURIInvalid:
		return "uri could not be parsed"
	case ErrorMimeTypeInvalid:
		return "mime type could not be parsed"
	case ErrorHeaderIncomplete:
		return "header block is not complete"
	case ErrorContentTooLarge:
		return "content length exceeds the configured maximum"
	case ErrorExpectationFailed:
		return "unsupported expectation requested"
	case ErrorVersionNotSupported:
		return "http protocol version is not supported"
	case ErrorMethodNotAllowed:
		return "method is not allowed on the matched resource"
	case ErrorNotFound:
		return "no servlet matches the requested resource"
	case ErrorNotAcceptable:
		return "no acceptable representation could be negotiated"
	case ErrorNotImplemented:
		return "no servlet matches the requested method"
	}

	return ""
}

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

// errorNegotiationOffer is what this engine can produce for an error
// page: Markdown preferred, plain text accepted as a fallback.
const errorNegotiationOffer = "text/markdown, text/plain;q=0.9"

// BuildErrorReply negotiates the given Accept header value against
// this engine's error representations and returns the content type to
// use and the rendered Markdown/plain-text body. A failed negotiation
// falls back to Markdown and says so in the body rather than sending
// an error page about the error page.
func BuildErrorReply(accept string, status int) (contentType, body string) {
	negotiated := Negotiate(accept, errorNegotiationOffer)

	success := negotiated != ""
	if !success {
		contentType = "text/markdown"
	} else {
		contentType = negotiated
	}

	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(StatusDescription(status))
	b.WriteString("\n\nAn error occurred while processing your request. ")
	if !success {
		b.WriteString("Additionally, content type negotiation for this error page failed. ")
	}
	b.WriteString("That's all I know.\n")

	return contentType, b.String()
}

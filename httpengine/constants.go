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

// statusDescriptions is the well-known HTTP/1.1 status table used to
// fill in reason phrases when none was supplied explicitly.
var statusDescriptions = map[int]string{
	100: "Continue",
	101: "Switching Protocols",
	200: "OK",
	201: "Created",
	202: "Accepted",
	203: "Non-Authoritative Information",
	204: "No Content",
	205: "Reset Content",
	206: "Partial Content",
	300: "Multiple Choices",
	301: "Moved Permanently",
	302: "Found",
	303: "See Other",
	304: "Not Modified",
	305: "Use Proxy",
	307: "Temporary Redirect",
	400: "Bad Request",
	401: "Unauthorized",
	402: "Payment Required",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	406: "Not Acceptable",
	407: "Proxy Authentication Required",
	408: "Request Timeout",
	409: "Conflict",
	410: "Gone",
	411: "Length Required",
	412: "Precondition Failed",
	413: "Payload Too Large",
	414: "URI Too Long",
	415: "Unsupported Media Type",
	416: "Range Not Satisfiable",
	417: "Expectation Failed",
	426: "Upgrade Required",
	451: "Unavailable For Legal Reasons",
	500: "Internal Server Error",
	501: "Not Implemented",
	502: "Bad Gateway",
	503: "Service Unavailable",
	504: "Gateway Timeout",
	505: "HTTP Version Not Supported",
}

// StatusDescription returns the well-known reason phrase for a status
// code, or "Other Status" if the code isn't in the table.
func StatusDescription(code int) string {
	if d, ok := statusDescriptions[code]; ok {
		return d
	}
	return "Other Status"
}

// WellKnownMethods are the methods the dispatcher recognises when
// building an Allow header for a 405 reply.
var WellKnownMethods = []string{
	"OPTIONS", "GET", "HEAD", "POST", "PUT", "DELETE", "TRACE", "CONNECT",
}

// methodsExemptFrom405 are methods that, when they are the only
// candidates for a resource, should not turn a miss into a 405:
// almost every resource nominally answers OPTIONS and TRACE, so a 405
// naming only those would be more confusing than a plain 404.
var methodsExemptFrom405 = map[string]bool{
	"OPTIONS": true,
	"TRACE":   true,
}

// DefaultServerIdentifier is the Server header value emitted when an
// Engine has no explicit identifier configured.
const DefaultServerIdentifier = "httpengine"

// negotiatedOutboundHeader maps a negotiable inbound header to the
// outbound header that carries the negotiated result on the reply.
var negotiatedOutboundHeader = map[string]string{
	"accept":          "Content-Type",
	"accept-encoding": "Content-Encoding",
	"accept-language": "Content-Language",
}

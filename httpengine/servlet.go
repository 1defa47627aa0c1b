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

import "regexp"

// Servlet describes one server-side request handler: the resource and
// method it matches, the content negotiations it requires before it
// is invoked, and the handler itself. A handler that runs but does not
// actually reply (does not increase Session.Queries) signals the
// dispatcher to keep trying later servlets, matching the "try next
// servlet" fallthrough the dispatcher preserves.
type Servlet struct {
	Resource     *regexp.Regexp
	Method       *regexp.Regexp
	Negotiations map[string]string
	Handler      func(s *Session, resourceMatch []string)
	Description  string
}

// NewServlet compiles resource and method patterns and returns a
// Servlet bound to handler. An empty method pattern defaults to "GET".
func NewServlet(resource, method string, handler func(s *Session, resourceMatch []string)) *Servlet {
	if method == "" {
		method = "GET"
	}

	return &Servlet{
		Resource:     regexp.MustCompile("^(?:" + resource + ")$"),
		Method:       regexp.MustCompile("^(?:" + method + ")$"),
		Negotiations: map[string]string{},
		Handler:      handler,
	}
}

// Describe renders a short Markdown snippet documenting this servlet,
// for use by a discovery/help endpoint.
func (sv *Servlet) Describe() string {
	desc := sv.Description
	if desc == "" {
		desc = "(no description provided)"
	}
	return "### `" + sv.Resource.String() + "`\n\nMethods matching `" + sv.Method.String() + "`.\n\n" + desc + "\n"
}

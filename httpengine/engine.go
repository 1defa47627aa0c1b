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
	"sync"

	libatm "github.com/nabbar/go-httpengine/atomic"
)

// Engine owns every piece of mutable state a server-side deployment of
// this package needs: the servlet registry and the live session
// registry. Nothing in this package keeps state at package scope;
// callers construct one Engine per listening collaborator (matching a
// CLI or server runner) and inject it wherever a servlet or a session
// needs to be looked up, instead of relying on process-wide globals.
type Engine struct {
	sessions libatm.MapTyped[string, *Session]

	mutServlets sync.RWMutex
	servlets    []*Servlet

	maxContentLength int
	serverIdentifier string
}

// New returns an empty Engine with the given maximum accepted content
// length (bytes). A maxContentLength of 0 falls back to 12 MiB.
func New(maxContentLength int) *Engine {
	if maxContentLength <= 0 {
		maxContentLength = 12 * 1024 * 1024
	}

	return &Engine{
		sessions:         libatm.NewMapTyped[string, *Session](),
		maxContentLength: maxContentLength,
	}
}

// Register adds a servlet to the dispatch list. Servlets are tried in
// registration order.
func (e *Engine) Register(s *Servlet) {
	e.mutServlets.Lock()
	defer e.mutServlets.Unlock()
	e.servlets = append(e.servlets, s)
}

// Unregister removes a previously registered servlet.
func (e *Engine) Unregister(s *Servlet) {
	e.mutServlets.Lock()
	defer e.mutServlets.Unlock()

	for i, sv := range e.servlets {
		if sv == s {
			e.servlets = append(e.servlets[:i], e.servlets[i+1:]...)
			return
		}
	}
}

func (e *Engine) servletList() []*Servlet {
	e.mutServlets.RLock()
	defer e.mutServlets.RUnlock()

	out := make([]*Servlet, len(e.servlets))
	copy(out, e.servlets)
	return out
}

// Session returns the session registered under id, creating one if it
// does not already exist. The Engine is the sole owner of session
// lifetime: a session is only released via Release.
func (e *Engine) Session(id string) *Session {
	if s, ok := e.sessions.Load(id); ok {
		if s.Free() {
			s.Reset()
		}
		return s
	}

	s := NewSession(id)
	actual, _ := e.sessions.LoadOrStore(id, s)
	return actual
}

// Release removes a session from the registry once its connection has
// fully recycled.
func (e *Engine) Release(id string) {
	e.sessions.Delete(id)
}

// MaxContentLength returns the configured maximum request/response
// body size.
func (e *Engine) MaxContentLength() int {
	return e.maxContentLength
}

// SetServerIdentifier overrides the Server header value emitted by the
// dispatcher's default outbound headers.
func (e *Engine) SetServerIdentifier(ident string) {
	if ident != "" {
		e.serverIdentifier = ident
	}
}

func (e *Engine) serverIdent() string {
	if e.serverIdentifier != "" {
		return e.serverIdentifier
	}

	return DefaultServerIdentifier
}

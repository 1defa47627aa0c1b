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

package http

import (
	libatm "github.com/nabbar/go-httpengine/atomic"
	libctx "github.com/nabbar/go-httpengine/context"
	htpool "github.com/nabbar/go-httpengine/httpserver/pool"
	srvtps "github.com/nabbar/go-httpengine/httpserver/types"
)

// mod is the HTTP component implementation. All mutable state lives in
// atomic holders so the component is safe for concurrent use.
type mod struct {
	x libctx.Config[uint8]
	t libatm.Value[string]
	h libatm.Value[srvtps.FuncHandler]
	s libatm.Value[htpool.Pool]
}

// SetTLSKey sets the key of the TLS component providing the server
// certificates.
func (o *mod) SetTLSKey(tlsKey string) {
	if tlsKey != "" {
		o.t.Store(tlsKey)
	}
}

// SetHandler sets the function providing the handler map served by the
// pool's servers.
func (o *mod) SetHandler(fct srvtps.FuncHandler) {
	if fct != nil {
		o.h.Store(fct)
	}
}

// GetPool returns the current server pool, nil before the first start.
func (o *mod) GetPool() htpool.Pool {
	return o.s.Load()
}

// SetPool replaces the server pool. A nil pool resets to an empty one.
func (o *mod) SetPool(pool htpool.Pool) {
	if pool == nil {
		pool = htpool.New(o.x, o._GetHandler)
	}

	o.s.Store(pool)
}

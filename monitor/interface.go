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

// Package monitor implements a periodic health monitor: it runs a
// registered health check on configurable intervals and maintains a
// rise/fall status usable by pools and info endpoints.
package monitor

import (
	"context"

	libatm "github.com/nabbar/go-httpengine/atomic"
	liblog "github.com/nabbar/go-httpengine/logger"
	moninf "github.com/nabbar/go-httpengine/monitor/info"
	montps "github.com/nabbar/go-httpengine/monitor/types"
	librun "github.com/nabbar/go-httpengine/runner/startStop"
)

// New returns a Monitor observing the component described by inf. The
// monitor is idle until SetConfig and Start are called.
func New(ctx context.Context, inf moninf.Info) (montps.Monitor, error) {
	if inf == nil {
		return nil, ErrorMissingInfo.Error(nil)
	}

	if ctx == nil {
		ctx = context.Background()
	}

	m := &mon{
		i: libatm.NewValue[moninf.Info](),
		c: libatm.NewValue[*montps.Config](),
		f: libatm.NewValue[montps.HealthCheck](),
		l: libatm.NewValue[liblog.FuncLog](),
		s: libatm.NewValue[*checkState](),
		x: ctx,
	}

	m.i.Store(inf)
	m.s.Store(newCheckState())
	m.r = librun.New(m.ticker, nil)

	return m, nil
}

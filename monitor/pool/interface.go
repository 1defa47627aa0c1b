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

// Package pool stores health monitors by name and drives their lifecycle
// as one group.
package pool

import (
	"context"
	"time"

	libatm "github.com/nabbar/go-httpengine/atomic"
	montps "github.com/nabbar/go-httpengine/monitor/types"
)

// New returns an empty monitor pool. The given context bounds the lifetime
// of every monitor started through the pool.
func New(ctx context.Context) montps.Pool {
	if ctx == nil {
		ctx = context.Background()
	}

	return &pool{
		m: libatm.NewMapTyped[string, montps.Monitor](),
		x: ctx,
	}
}

type pool struct {
	m libatm.MapTyped[string, montps.Monitor]
	x context.Context
	t time.Time
}

func (o *pool) MonitorGet(name string) montps.Monitor {
	if m, k := o.m.Load(name); k {
		return m
	}

	return nil
}

func (o *pool) MonitorSet(mon montps.Monitor) error {
	if mon == nil {
		return ErrorInvalidMonitor.Error(nil)
	} else if mon.Name() == "" {
		return ErrorInvalidMonitor.Error(nil)
	}

	o.m.Store(mon.Name(), mon)
	return nil
}

func (o *pool) MonitorDel(name string) {
	if m, k := o.m.Load(name); k && m != nil {
		_ = m.Stop(o.x)
	}

	o.m.Delete(name)
}

func (o *pool) MonitorList() []string {
	var r = make([]string, 0)

	o.m.Range(func(k string, v montps.Monitor) bool {
		r = append(r, k)
		return true
	})

	return r
}

func (o *pool) MonitorWalk(fct func(name string, mon montps.Monitor) bool) {
	if fct == nil {
		return
	}

	o.m.Range(fct)
}

func (o *pool) Start(ctx context.Context) error {
	var e error

	o.m.Range(func(k string, v montps.Monitor) bool {
		if v == nil {
			return true
		} else if er := v.Start(ctx); er != nil && e == nil {
			e = er
		}

		return true
	})

	if e == nil {
		o.t = time.Now()
	}

	return e
}

func (o *pool) Stop(ctx context.Context) error {
	var e error

	o.m.Range(func(k string, v montps.Monitor) bool {
		if v == nil {
			return true
		} else if er := v.Stop(ctx); er != nil && e == nil {
			e = er
		}

		return true
	})

	o.t = time.Time{}
	return e
}

func (o *pool) Restart(ctx context.Context) error {
	if e := o.Stop(ctx); e != nil {
		return e
	}

	return o.Start(ctx)
}

func (o *pool) IsRunning() bool {
	var r bool

	o.m.Range(func(k string, v montps.Monitor) bool {
		if v != nil && v.IsRunning() {
			r = true
			return false
		}

		return true
	})

	return r
}

func (o *pool) Uptime() time.Duration {
	if o.t.IsZero() {
		return 0
	}

	return time.Since(o.t)
}

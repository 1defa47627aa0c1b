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

package startStop

import (
	"context"
	"sync"
	"time"

	libatm "github.com/nabbar/go-httpengine/atomic"
	libsrv "github.com/nabbar/go-httpengine/runner"
)

// runState is the live state of one Start/Stop cycle.
type runState struct {
	m sync.Mutex
	c context.CancelFunc
	d chan struct{}
	t time.Time
	e []error
}

func (s *runState) addErr(e error) {
	if e == nil {
		return
	}

	s.m.Lock()
	defer s.m.Unlock()
	s.e = append(s.e, e)
}

func (s *runState) errLast() error {
	s.m.Lock()
	defer s.m.Unlock()

	if len(s.e) < 1 {
		return nil
	}

	return s.e[len(s.e)-1]
}

func (s *runState) errList() []error {
	s.m.Lock()
	defer s.m.Unlock()

	r := make([]error, len(s.e))
	copy(r, s.e)
	return r
}

func (s *runState) done() bool {
	select {
	case <-s.d:
		return true
	default:
		return false
	}
}

type runSS struct {
	m sync.Mutex
	f FuncRun
	s FuncRun
	r libatm.Value[*runState]
}

func (o *runSS) Start(ctx context.Context) error {
	o.m.Lock()
	defer o.m.Unlock()

	if ctx == nil {
		ctx = context.Background()
	}

	if s := o.r.Load(); s != nil && !s.done() {
		return nil
	}

	if o.f == nil {
		return ErrInvalidRunFunc
	}

	var (
		x, n = context.WithCancel(ctx)
		st   = &runState{
			c: n,
			d: make(chan struct{}),
			t: time.Now(),
		}
	)

	o.r.Store(st)

	go func() {
		defer func() {
			libsrv.RecoveryCaller("golib/runner/startStop/run", recover())
			close(st.d)
		}()

		st.addErr(o.f(x))
	}()

	return nil
}

func (o *runSS) Stop(ctx context.Context) error {
	o.m.Lock()
	defer o.m.Unlock()

	var s = o.r.Load()

	if s == nil || s.done() {
		return nil
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if o.s != nil {
		s.addErr(o.s(ctx))
	}

	if s.c != nil {
		s.c()
	}

	select {
	case <-s.d:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (o *runSS) Restart(ctx context.Context) error {
	if e := o.Stop(ctx); e != nil {
		return e
	}

	return o.Start(ctx)
}

func (o *runSS) IsRunning() bool {
	if s := o.r.Load(); s == nil {
		return false
	} else {
		return !s.done()
	}
}

func (o *runSS) Uptime() time.Duration {
	if s := o.r.Load(); s == nil || s.done() {
		return 0
	} else {
		return time.Since(s.t)
	}
}

func (o *runSS) ErrorsLast() error {
	if s := o.r.Load(); s == nil {
		return nil
	} else {
		return s.errLast()
	}
}

func (o *runSS) ErrorsList() []error {
	if s := o.r.Load(); s == nil {
		return nil
	} else {
		return s.errList()
	}
}

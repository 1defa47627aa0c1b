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

// Package semaphore bounds the number of concurrent workers launched by a
// component, on top of x/sync's weighted semaphore.
package semaphore

import (
	"context"
	"runtime"

	"golang.org/x/sync/semaphore"
)

// Semaphore bounds a group of concurrent workers.
type Semaphore interface {
	// NewWorker acquires a worker slot, blocking until one is free or the
	// context is done.
	NewWorker() error

	// NewWorkerTry acquires a worker slot without blocking. It reports
	// whether the slot was acquired.
	NewWorkerTry() bool

	// DeferWorker releases a slot acquired by NewWorker or NewWorkerTry.
	DeferWorker()

	// WaitAll blocks until every acquired slot has been released.
	WaitAll() error

	// DeferMain releases the whole semaphore, cancelling its context.
	DeferMain()
}

// Sem is the historical name of Semaphore.
type Sem = Semaphore

// MaxSimultaneous returns the default worker bound.
func MaxSimultaneous() int {
	return runtime.GOMAXPROCS(0)
}

// New returns a Semaphore bound to nbrSimultaneous workers. Any value below
// one falls back to MaxSimultaneous. The progress parameter is accepted for
// API compatibility and ignored here.
func New(ctx context.Context, nbrSimultaneous int, progress bool) Semaphore {
	_ = progress

	if nbrSimultaneous < 1 {
		nbrSimultaneous = MaxSimultaneous()
	}

	if ctx == nil {
		ctx = context.Background()
	}

	x, n := context.WithCancel(ctx)

	return &sem{
		n: int64(nbrSimultaneous),
		s: semaphore.NewWeighted(int64(nbrSimultaneous)),
		x: x,
		c: n,
	}
}

// NewSemaphoreWithContext is a convenience over New without progress output.
func NewSemaphoreWithContext(ctx context.Context, nbrSimultaneous int) Semaphore {
	return New(ctx, nbrSimultaneous, false)
}

type sem struct {
	n int64
	s *semaphore.Weighted
	x context.Context
	c context.CancelFunc
}

func (o *sem) NewWorker() error {
	return o.s.Acquire(o.x, 1)
}

func (o *sem) NewWorkerTry() bool {
	return o.s.TryAcquire(1)
}

func (o *sem) DeferWorker() {
	o.s.Release(1)
}

func (o *sem) WaitAll() error {
	if e := o.s.Acquire(o.x, o.n); e != nil {
		return e
	}

	o.s.Release(o.n)
	return nil
}

func (o *sem) DeferMain() {
	if o.c != nil {
		o.c()
	}
}

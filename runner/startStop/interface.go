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

// Package startStop wraps a blocking run function and an optional stop
// function into a restartable background runner with error history.
package startStop

import (
	"context"
	"sync"

	libatm "github.com/nabbar/go-httpengine/atomic"
	libsrv "github.com/nabbar/go-httpengine/runner"
)

// FuncRun is the blocking function driven by the runner. It must return when
// its context is done.
type FuncRun func(ctx context.Context) error

// StartStop drives a blocking run function as a restartable background task.
type StartStop interface {
	libsrv.Runner

	// ErrorsLast returns the most recent error returned by the run or stop
	// functions, nil if none.
	ErrorsLast() error

	// ErrorsList returns every error recorded since the last Start.
	ErrorsList() []error
}

// New returns a StartStop around the given run function and optional stop
// function. The stop function, when non-nil, is invoked by Stop before
// cancelling the run context.
func New(run FuncRun, stop FuncRun) StartStop {
	return &runSS{
		m: sync.Mutex{},
		f: run,
		s: stop,
		r: libatm.NewValue[*runState](),
	}
}

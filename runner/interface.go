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

// Package runner defines the lifecycle contract shared by every long-running
// component (servers, pools, aggregators) and the panic recovery helper used
// by their background goroutines.
package runner

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"
	"time"
)

// Runner is the lifecycle contract of a long-running component.
type Runner interface {
	// Start launches the component. It returns quickly; the component runs
	// in background until Stop or context cancellation.
	Start(ctx context.Context) error

	// Stop requests a graceful shutdown and waits for completion bounded by
	// the given context.
	Stop(ctx context.Context) error

	// Restart performs a Stop then a Start with the same context.
	Restart(ctx context.Context) error

	// IsRunning reports whether the component is currently running.
	IsRunning() bool

	// Uptime returns the elapsed time since the last successful Start, or
	// zero when stopped.
	Uptime() time.Duration
}

// Server extends Runner for components exposing a last-error state.
type Server interface {
	Runner

	// ErrorsLast returns the most recent error recorded by the component.
	ErrorsLast() error
}

// WaitNotify is implemented by components able to block until an OS signal
// or a context cancellation asks them to shut down.
type WaitNotify interface {
	// StartWaitNotify blocks the calling goroutine until shutdown is
	// requested, then stops the component.
	StartWaitNotify(ctx context.Context)

	// StopWaitNotify releases a pending StartWaitNotify call.
	StopWaitNotify()
}

// RecoveryCaller reports a recovered panic from a background goroutine to
// stderr with the caller identifier and a stack trace. A nil recovered value
// is ignored, so it can wrap recover() directly.
func RecoveryCaller(caller string, rec interface{}, info ...string) {
	if rec == nil {
		return
	}

	_, _ = fmt.Fprintf(os.Stderr, "recovering panic calling %s: %v\n", caller, rec)

	for _, i := range info {
		_, _ = fmt.Fprintf(os.Stderr, "\t%s\n", i)
	}

	_, _ = os.Stderr.Write(debug.Stack())
}

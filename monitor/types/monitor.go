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

// Package types declares the contracts linking health monitors, monitor
// pools and the components they observe, without binding to the monitor
// implementation.
package types

import (
	"context"

	liblog "github.com/nabbar/go-httpengine/logger"
	moninf "github.com/nabbar/go-httpengine/monitor/info"
	libsrv "github.com/nabbar/go-httpengine/runner"
)

// Info is the identity and metadata of a monitored component.
type Info = moninf.Info

// HealthCheck is one health probe of a monitored component. A nil return
// means healthy.
type HealthCheck func(ctx context.Context) error

// Monitor periodically runs a health check and maintains a rise/fall status
// for one component.
type Monitor interface {
	libsrv.Runner

	// Name returns the monitor identifier.
	Name() string

	// InfoGet returns the monitored component's identity.
	InfoGet() Info

	// InfoUpd replaces the monitored component's identity.
	InfoUpd(inf Info)

	// SetConfig validates and applies a new configuration.
	SetConfig(ctx context.Context, cfg Config) error

	// GetConfig returns the currently applied configuration.
	GetConfig() Config

	// SetHealthCheck registers the probe run at each interval.
	SetHealthCheck(fct HealthCheck)

	// RegisterLoggerDefault registers the fallback logger used when the
	// configured one is not available.
	RegisterLoggerDefault(fct liblog.FuncLog)

	// IsHealthy reports whether the last completed check succeeded.
	IsHealthy() bool

	// ErrorsLast returns the error of the last failed check, nil if the
	// component is healthy.
	ErrorsLast() error
}

// FuncPool returns the process' monitor pool, or nil when monitoring is not
// wired.
type FuncPool func() Pool

// Pool stores monitors by name and drives their lifecycle as a group.
type Pool interface {
	libsrv.Runner

	// MonitorGet returns the monitor registered under the given name, nil
	// if absent.
	MonitorGet(name string) Monitor

	// MonitorSet registers or replaces a monitor under its own name.
	MonitorSet(mon Monitor) error

	// MonitorDel removes the monitor registered under the given name.
	MonitorDel(name string)

	// MonitorList returns the names of every registered monitor.
	MonitorList() []string

	// MonitorWalk calls the given function for each registered monitor
	// until it returns false.
	MonitorWalk(fct func(name string, mon Monitor) bool)
}

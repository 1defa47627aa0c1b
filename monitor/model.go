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

package monitor

import (
	"context"
	"sync"
	"time"

	libatm "github.com/nabbar/go-httpengine/atomic"
	liblog "github.com/nabbar/go-httpengine/logger"
	loglvl "github.com/nabbar/go-httpengine/logger/level"
	moninf "github.com/nabbar/go-httpengine/monitor/info"
	montps "github.com/nabbar/go-httpengine/monitor/types"
	librun "github.com/nabbar/go-httpengine/runner/startStop"
)

const (
	defaultTimeout  = 5 * time.Second
	defaultInterval = 5 * time.Second
)

// checkState tracks the consecutive check results and the derived status.
type checkState struct {
	m    sync.RWMutex
	ok   bool
	rise uint8
	fall uint8
	err  error
}

func newCheckState() *checkState {
	return &checkState{
		ok: true,
	}
}

func (s *checkState) record(cfg montps.Config, err error) {
	s.m.Lock()
	defer s.m.Unlock()

	if err == nil {
		s.fall = 0
		s.rise++

		lim := cfg.RiseCountKO
		if lim < 1 {
			lim = 1
		}

		if !s.ok && s.rise >= lim {
			s.ok = true
			s.err = nil
		}

		if s.ok {
			s.err = nil
		}

		return
	}

	s.rise = 0
	s.fall++
	s.err = err

	lim := cfg.FallCountKO
	if lim < 1 {
		lim = 1
	}

	if s.ok && s.fall >= lim {
		s.ok = false
	}
}

func (s *checkState) healthy() bool {
	s.m.RLock()
	defer s.m.RUnlock()
	return s.ok
}

func (s *checkState) rising() bool {
	s.m.RLock()
	defer s.m.RUnlock()
	return !s.ok && s.rise > 0
}

func (s *checkState) lastErr() error {
	s.m.RLock()
	defer s.m.RUnlock()
	return s.err
}

type mon struct {
	i libatm.Value[moninf.Info]
	c libatm.Value[*montps.Config]
	f libatm.Value[montps.HealthCheck]
	l libatm.Value[liblog.FuncLog]
	s libatm.Value[*checkState]
	r librun.StartStop
	x context.Context
}

func (o *mon) Name() string {
	if c := o.c.Load(); c != nil && c.Name != "" {
		return c.Name
	} else if i := o.i.Load(); i != nil {
		return i.Name()
	}

	return ""
}

func (o *mon) InfoGet() montps.Info {
	return o.i.Load()
}

func (o *mon) InfoUpd(inf montps.Info) {
	if inf != nil {
		o.i.Store(inf)
	}
}

func (o *mon) SetConfig(ctx context.Context, cfg montps.Config) error {
	if cfg.Name == "" {
		if i := o.i.Load(); i != nil {
			cfg.Name = i.Name()
		}
	}

	if cfg.Name == "" {
		return ErrorInvalidConfig.Error(nil)
	}

	o.c.Store(&cfg)
	return nil
}

func (o *mon) GetConfig() montps.Config {
	if c := o.c.Load(); c != nil {
		return *c
	}

	return montps.Config{}
}

func (o *mon) SetHealthCheck(fct montps.HealthCheck) {
	o.f.Store(fct)
}

func (o *mon) RegisterLoggerDefault(fct liblog.FuncLog) {
	o.l.Store(fct)
}

func (o *mon) IsHealthy() bool {
	return o.s.Load().healthy()
}

func (o *mon) ErrorsLast() error {
	return o.s.Load().lastErr()
}

func (o *mon) Start(ctx context.Context) error {
	if o.c.Load() == nil {
		return ErrorInvalidConfig.Error(nil)
	} else if o.f.Load() == nil {
		return ErrorMissingHealthCheck.Error(nil)
	}

	return o.r.Start(ctx)
}

func (o *mon) Stop(ctx context.Context) error {
	return o.r.Stop(ctx)
}

func (o *mon) Restart(ctx context.Context) error {
	if e := o.Stop(ctx); e != nil {
		return e
	}

	return o.Start(ctx)
}

func (o *mon) IsRunning() bool {
	return o.r.IsRunning()
}

func (o *mon) Uptime() time.Duration {
	return o.r.Uptime()
}

func (o *mon) logger() liblog.Logger {
	if f := o.l.Load(); f != nil {
		if l := f(); l != nil {
			return l
		}
	}

	return liblog.GetDefault()
}

// interval returns the delay before the next check given the current
// status.
func (o *mon) interval() time.Duration {
	var (
		cfg = o.GetConfig()
		sta = o.s.Load()
	)

	d := cfg.IntervalCheck
	if !sta.healthy() {
		d = cfg.IntervalFall
		if sta.rising() {
			d = cfg.IntervalRise
		}
	}

	if time.Duration(d) <= 0 {
		return defaultInterval
	}

	return time.Duration(d)
}

// check runs one health probe bounded by the configured timeout and updates
// the rise/fall state.
func (o *mon) check(ctx context.Context) {
	var (
		cfg = o.GetConfig()
		fct = o.f.Load()
	)

	if fct == nil {
		return
	}

	t := time.Duration(cfg.CheckTimeout)
	if t <= 0 {
		t = defaultTimeout
	}

	x, n := context.WithTimeout(ctx, t)
	defer n()

	err := fct(x)
	o.s.Load().record(cfg, err)

	if err != nil {
		o.logger().Entry(loglvl.WarnLevel, "health check failed").FieldAdd("monitor", o.Name()).ErrorAdd(true, err).Log()
	}
}

// ticker is the monitor run loop driven by the startStop runner.
func (o *mon) ticker(ctx context.Context) error {
	o.check(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(o.interval()):
			o.check(ctx)
		}
	}
}

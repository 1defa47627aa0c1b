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

package log

import (
	"context"
	"sync/atomic"

	libatm "github.com/nabbar/go-httpengine/atomic"
	cfgtps "github.com/nabbar/go-httpengine/config/types"
	libctx "github.com/nabbar/go-httpengine/context"
	liblog "github.com/nabbar/go-httpengine/logger"
	logcfg "github.com/nabbar/go-httpengine/logger/config"
	logfld "github.com/nabbar/go-httpengine/logger/fields"
	loglvl "github.com/nabbar/go-httpengine/logger/level"
	montps "github.com/nabbar/go-httpengine/monitor/types"
	libver "github.com/nabbar/go-httpengine/version"
	libvpr "github.com/nabbar/go-httpengine/viper"
	spfvpr "github.com/spf13/viper"
)

// context keys of the values stored by Init and the event registrations.
const (
	keyCptKey = iota + 1
	keyFctViper
	keyFctGetCpt
	keyCptVersion
	keyCptLogger
	keyFctStaBef
	keyFctStaAft
	keyFctRelBef
	keyFctRelAft
)

// mod is the logger component implementation. The wrapped logger instance
// is rebuilt from configuration at each start or reload.
type mod struct {
	x libctx.Config[uint8]
	l libatm.Value[liblog.Logger]
	r *atomic.Bool
	v *atomic.Uint32
}

func (o *mod) Type() string {
	return ComponentType
}

func (o *mod) Init(key string, ctx context.Context, get cfgtps.FuncCptGet, vpr libvpr.FuncViper, vrs libver.Version, log liblog.FuncLog) {
	o.x.Store(keyCptKey, key)
	o.x.Store(keyFctGetCpt, get)
	o.x.Store(keyFctViper, vpr)
	o.x.Store(keyCptVersion, vrs)
	o.x.Store(keyCptLogger, log)
}

func (o *mod) RegisterFuncStart(before, after cfgtps.FuncCptEvent) {
	o.x.Store(keyFctStaBef, before)
	o.x.Store(keyFctStaAft, after)
}

func (o *mod) RegisterFuncReload(before, after cfgtps.FuncCptEvent) {
	o.x.Store(keyFctRelBef, before)
	o.x.Store(keyFctRelAft, after)
}

func (o *mod) RegisterMonitorPool(fct montps.FuncPool) {
	// the logger component carries no runtime to monitor
}

func (o *mod) IsStarted() bool {
	return o != nil && o.r.Load()
}

func (o *mod) IsRunning() bool {
	return o.IsStarted()
}

func (o *mod) Start() error {
	return o._run()
}

func (o *mod) Reload() error {
	return o._run()
}

func (o *mod) Stop() {
	if l := o.l.Load(); l != nil {
		_ = l.Close()
	}

	o.r.Store(false)
}

func (o *mod) Dependencies() []string {
	return make([]string, 0)
}

func (o *mod) SetDependencies(d []string) error {
	return nil
}

// Log returns the component logger, or the process default logger while the
// component is not started.
func (o *mod) Log() liblog.Logger {
	if l := o.l.Load(); l != nil {
		return l
	}

	return liblog.GetDefault()
}

// LogClone returns an independent copy of the component logger.
func (o *mod) LogClone() liblog.Logger {
	if l := o.l.Load(); l != nil {
		if n, e := l.Clone(); e == nil {
			return n
		}
	}

	return liblog.GetDefault()
}

func (o *mod) SetLevel(lvl loglvl.Level) {
	o.v.Store(lvl.Uint32())

	if l := o.l.Load(); l != nil {
		l.SetLevel(lvl)
	}
}

func (o *mod) GetLevel() loglvl.Level {
	return loglvl.Level(o.v.Load())
}

func (o *mod) SetField(fields logfld.Fields) {
	if l := o.l.Load(); l != nil {
		l.SetFields(fields)
	}
}

func (o *mod) GetField() logfld.Fields {
	if l := o.l.Load(); l != nil {
		return l.GetFields()
	}

	return nil
}

func (o *mod) SetOptions(opt *logcfg.Options) error {
	if l := o.l.Load(); l != nil {
		return l.SetOptions(opt)
	}

	return ErrorComponentNotInitialized.Error(nil)
}

func (o *mod) GetOptions() *logcfg.Options {
	if l := o.l.Load(); l != nil {
		return l.GetOptions()
	}

	return nil
}

func (o *mod) _getKey() string {
	if i, l := o.x.Load(keyCptKey); !l {
		return ""
	} else if v, k := i.(string); !k {
		return ""
	} else {
		return v
	}
}

func (o *mod) _getViper() libvpr.Viper {
	if i, l := o.x.Load(keyFctViper); !l {
		return nil
	} else if f, k := i.(libvpr.FuncViper); !k || f == nil {
		return nil
	} else {
		return f()
	}
}

func (o *mod) _getSPFViper() *spfvpr.Viper {
	if v := o._getViper(); v == nil {
		return nil
	} else {
		return v.Viper()
	}
}

func (o *mod) _getFctEvt(key uint8) cfgtps.FuncCptEvent {
	if i, l := o.x.Load(key); !l {
		return nil
	} else if f, k := i.(cfgtps.FuncCptEvent); !k {
		return nil
	} else {
		return f
	}
}

func (o *mod) _getFct() (cfgtps.FuncCptEvent, cfgtps.FuncCptEvent) {
	if o.IsStarted() {
		return o._getFctEvt(keyFctRelBef), o._getFctEvt(keyFctRelAft)
	} else {
		return o._getFctEvt(keyFctStaBef), o._getFctEvt(keyFctStaAft)
	}
}

func (o *mod) _runFct(fct cfgtps.FuncCptEvent) error {
	if fct != nil {
		return fct(o)
	}

	return nil
}

func (o *mod) _runCli() error {
	var prt = ErrorComponentReload

	if !o.IsStarted() {
		prt = ErrorComponentStart
	}

	cfg, err := o._getConfig()
	if err != nil {
		return prt.Error(err)
	}

	l := o.l.Load()

	if l == nil {
		l = liblog.New(o.x)
		l.SetLevel(o.GetLevel())
	}

	if e := l.SetOptions(cfg); e != nil {
		return prt.Error(e)
	}

	o.l.Store(l)
	o.r.Store(true)

	return nil
}

func (o *mod) _run() error {
	fb, fa := o._getFct()

	if err := o._runFct(fb); err != nil {
		return err
	} else if err = o._runCli(); err != nil {
		return err
	} else if err = o._runFct(fa); err != nil {
		return err
	}

	return nil
}

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

package tls

import (
	"context"
	"sync/atomic"

	libatm "github.com/nabbar/go-httpengine/atomic"
	libtls "github.com/nabbar/go-httpengine/certificates"
	tlscas "github.com/nabbar/go-httpengine/certificates/ca"
	cfgtps "github.com/nabbar/go-httpengine/config/types"
	libctx "github.com/nabbar/go-httpengine/context"
	liblog "github.com/nabbar/go-httpengine/logger"
	montps "github.com/nabbar/go-httpengine/monitor/types"
	libver "github.com/nabbar/go-httpengine/version"
	libvpr "github.com/nabbar/go-httpengine/viper"
	spfcbr "github.com/spf13/cobra"
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

// mod is the TLS component implementation.
type mod struct {
	x libctx.Config[uint8]
	t libatm.Value[libtls.TLSConfig]
	c libatm.Value[func() *libtls.Config]
	f libtls.FctRootCACert
	r *atomic.Bool
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
	// the TLS component carries no runtime to monitor
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
	o.r.Store(false)
}

func (o *mod) Dependencies() []string {
	return make([]string, 0)
}

func (o *mod) SetDependencies(d []string) error {
	return nil
}

func (o *mod) RegisterFlag(Command *spfcbr.Command) error {
	return nil
}

// Config returns the raw configuration block loaded at last start or
// reload, nil before the first successful run.
func (o *mod) Config() *libtls.Config {
	if f := o.c.Load(); f != nil {
		return f()
	}

	return nil
}

// GetTLS returns the TLS configuration built at last start or reload.
func (o *mod) GetTLS() libtls.TLSConfig {
	return o.t.Load()
}

// SetTLS overrides the component's TLS configuration.
func (o *mod) SetTLS(tls libtls.TLSConfig) {
	if tls != nil {
		o.t.Store(tls)
		o.r.Store(true)
	}
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

func (o *mod) _getConfig() (*libtls.Config, error) {
	var (
		key string
		cfg libtls.Config
		vpr libvpr.Viper
	)

	if vpr = o._getViper(); vpr == nil {
		return nil, ErrorComponentNotInitialized.Error(nil)
	} else if key = o._getKey(); len(key) < 1 {
		return nil, ErrorComponentNotInitialized.Error(nil)
	}

	if e := vpr.UnmarshalKey(key, &cfg); e != nil {
		return nil, ErrorParamInvalid.Error(e)
	}

	if e := cfg.Validate(); e != nil {
		return nil, ErrorConfigInvalid.Error(e)
	}

	return &cfg, nil
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

	if o.f != nil {
		if ca := o.f(); ca != nil {
			// default root CA go ahead of the configured ones
			cfg.RootCA = append([]tlscas.Cert{ca}, cfg.RootCA...)
		}
	}

	t := cfg.New()

	if t == nil {
		return prt.Error(ErrorConfigInvalid.Error(nil))
	}

	o.t.Store(t)
	o.c.Store(func() *libtls.Config { return cfg })
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

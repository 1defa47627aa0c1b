/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
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

package httpserver

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	libatm "github.com/nabbar/go-httpengine/atomic"
	libtls "github.com/nabbar/go-httpengine/certificates"
	libctx "github.com/nabbar/go-httpengine/context"
	srvtps "github.com/nabbar/go-httpengine/httpserver/types"
	liblog "github.com/nabbar/go-httpengine/logger"
	logcfg "github.com/nabbar/go-httpengine/logger/config"
	loglvl "github.com/nabbar/go-httpengine/logger/level"
	librun "github.com/nabbar/go-httpengine/runner/startStop"
)

// keys of the configuration values held in the srv context store.
const (
	cfgName = "cfgName"
	cfgListen = "cfgListen"
	cfgExpose = "cfgExpose"
	cfgDisabled = "cfgDisabled"
	cfgHandler = "cfgHandler"
	cfgHandlerKey = "cfgHandlerKey"
	cfgTLS = "cfgTLS"
	cfgTLSMandatory = "cfgTLSMandatory"
	cfgConfig = "cfgConfig"
)

type srv struct {
	m sync.RWMutex
	c libctx.Config[string]
	h srvtps.FuncHandler
	l libatm.Value[liblog.FuncLog]
	r libatm.Value[librun.StartStop]
	s libatm.Value[*http.Server]
}

func (o *srv) setLogger(def liblog.FuncLog, opt logcfg.Options) error {
	if def == nil {
		def = func() liblog.Logger {
			return liblog.GetDefault()
		}
	}

	o.l.Store(def)
	return nil
}

func (o *srv) logger() liblog.Logger {
	if f := o.l.Load(); f != nil {
		if l := f(); l != nil {
			return l
		}
	}

	return liblog.GetDefault()
}

func (o *srv) GetConfig() *Config {
	if i, l := o.c.Load(cfgConfig); !l {
		return nil
	} else if v, k := i.(*Config); !k {
		return nil
	} else {
		return v
	}
}

func (o *srv) SetConfig(cfg Config, defLog liblog.FuncLog) error {
	if e := cfg.Validate(); e != nil {
		return e
	}

	var (
		lst = cfg.GetListen()
		exp = cfg.GetExpose()
	)

	if lst == nil || exp == nil {
		return ErrorServerValidate.Error(nil)
	}

	var t libtls.TLSConfig

	if s, e := cfg.CheckTLS(); e == nil {
		t = s
	} else if cfg.TLSMandatory {
		return e
	}

	if e := o.setLogger(defLog, cfg.Monitor.Logger); e != nil {
		return e
	}

	o.c.Store(cfgName, cfg.Name)
	o.c.Store(cfgListen, lst)
	o.c.Store(cfgExpose, exp)
	o.c.Store(cfgDisabled, cfg.Disabled)
	o.c.Store(cfgTLSMandatory, cfg.TLSMandatory)
	o.c.Store(cfgConfig, &cfg)

	if t != nil {
		o.c.Store(cfgTLS, t)
	}

	if cfg.fctHandler != nil {
		o.Handler(cfg.getHandlerFunc)
	}

	o.HandlerStoreFct(cfg.HandlerKey)

	return nil
}

func (o *srv) Merge(s Server, def liblog.FuncLog) error {
	if s == nil {
		return ErrorParamsEmpty.Error(nil)
	} else if c := s.GetConfig(); c == nil {
		return ErrorParamsEmpty.Error(nil)
	} else {
		return o.SetConfig(c.Clone(), def)
	}
}

func (o *srv) cfgTLSMandatory() bool {
	if i, l := o.c.Load(cfgTLSMandatory); !l {
		return false
	} else if v, k := i.(bool); !k {
		return false
	} else {
		return v
	}
}

func (o *srv) cfgGetTLS() libtls.TLSConfig {
	if i, l := o.c.Load(cfgTLS); !l {
		return nil
	} else if v, k := i.(libtls.TLSConfig); !k {
		return nil
	} else {
		return v
	}
}

func (o *srv) getServer() *http.Server {
	return o.s.Load()
}

func (o *srv) delServer() {
	if s := o.s.Load(); s != nil {
		_ = s.Close()
	}

	o.s.Store(nil)
}

// setServer assembles the http.Server for the current configuration and
// stores it for the run loop.
func (o *srv) setServer(ctx context.Context) error {
	var (
		cfg = o.GetConfig()
		ser = &http.Server{}
	)

	if cfg == nil {
		return ErrorServerValidate.Error(nil)
	}

	if u, k := o.c.Load(cfgListen); k {
		if v, ok := u.(*url.URL); ok {
			ser.Addr = v.Host
		}
	}

	if ser.Addr == "" {
		return ErrorServerValidate.Error(nil)
	}

	ser.Handler = o.HandlerLoadFct()
	ser.ReadTimeout = time.Duration(cfg.ReadTimeout)
	ser.ReadHeaderTimeout = time.Duration(cfg.ReadHeaderTimeout)
	ser.WriteTimeout = time.Duration(cfg.WriteTimeout)
	ser.IdleTimeout = time.Duration(cfg.IdleTimeout)
	ser.MaxHeaderBytes = cfg.MaxHeaderBytes.Int()

	if o.IsTLS() {
		if t := o.cfgGetTLS(); t != nil {
			ser.TLSConfig = t.TlsConfig("")
		} else if o.cfgTLSMandatory() {
			return ErrorServerValidate.Error(nil)
		}
	}

	ser.BaseContext = func(listener net.Listener) context.Context {
		return ctx
	}

	o.s.Store(ser)
	return nil
}

func (o *srv) Start(ctx context.Context) error {
	if o.IsDisable() {
		o.logger().Entry(loglvl.InfoLevel, "server disabled, skipping start").FieldAdd("server", o.GetName()).Log()
		return nil
	}

	if e := o.setServer(ctx); e != nil {
		return e
	}

	return o.runStart(ctx)
}

func (o *srv) Stop(ctx context.Context) error {
	return o.runStop(ctx)
}

func (o *srv) Restart(ctx context.Context) error {
	if e := o.Stop(ctx); e != nil {
		return e
	}

	return o.Start(ctx)
}

func (o *srv) IsRunning() bool {
	return o.runIsRunning()
}

func (o *srv) Uptime() time.Duration {
	if r := o.r.Load(); r != nil {
		return r.Uptime()
	}

	return 0
}

func (o *srv) GetError() error {
	if r := o.r.Load(); r == nil {
		return nil
	} else if e := r.ErrorsLast(); e != nil {
		return ErrorServerStart.ErrorParent(e)
	}

	return nil
}

func (o *srv) IsError() bool {
	return o.GetError() != nil
}

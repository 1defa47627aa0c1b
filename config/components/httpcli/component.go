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

package httpcli

import (
	"context"
	"crypto/tls"
	"net/http"

	tlscas "github.com/nabbar/go-httpengine/certificates/ca"
	cfgtps "github.com/nabbar/go-httpengine/config/types"
	htcdns "github.com/nabbar/go-httpengine/httpcli/dns-mapper"
	liblog "github.com/nabbar/go-httpengine/logger"
	montps "github.com/nabbar/go-httpengine/monitor/types"
	libver "github.com/nabbar/go-httpengine/version"
	libvpr "github.com/nabbar/go-httpengine/viper"
)

// ComponentType is the identifier of the HTTP client component type.
const ComponentType = "httpcli"

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

func (o *componentHttpClient) Type() string {
	return ComponentType
}

func (o *componentHttpClient) Init(key string, ctx context.Context, get cfgtps.FuncCptGet, vpr libvpr.FuncViper, vrs libver.Version, log liblog.FuncLog) {
	o.x.Store(keyCptKey, key)
	o.x.Store(keyFctGetCpt, get)
	o.x.Store(keyFctViper, vpr)
	o.x.Store(keyCptVersion, vrs)
	o.x.Store(keyCptLogger, log)
}

func (o *componentHttpClient) RegisterFuncStart(before, after cfgtps.FuncCptEvent) {
	o.x.Store(keyFctStaBef, before)
	o.x.Store(keyFctStaAft, after)
}

func (o *componentHttpClient) RegisterFuncReload(before, after cfgtps.FuncCptEvent) {
	o.x.Store(keyFctRelBef, before)
	o.x.Store(keyFctRelAft, after)
}

func (o *componentHttpClient) RegisterMonitorPool(fct montps.FuncPool) {
	// the client component exposes no monitor of its own
}

func (o *componentHttpClient) IsStarted() bool {
	return o != nil && o.d.Load() != nil
}

func (o *componentHttpClient) IsRunning() bool {
	return o.IsStarted()
}

func (o *componentHttpClient) Start() error {
	return o._run()
}

func (o *componentHttpClient) Reload() error {
	return o._run()
}

func (o *componentHttpClient) Stop() {
	if d := o.d.Load(); d != nil {
		_ = d.Close()
	}
}

func (o *componentHttpClient) Dependencies() []string {
	return make([]string, 0)
}

func (o *componentHttpClient) SetDependencies(d []string) error {
	return nil
}

// DefaultConfig returns the component default configuration, which is the
// DNS mapper default block.
func (o *componentHttpClient) DefaultConfig(indent string) []byte {
	return htcdns.DefaultConfig(indent)
}

func (o *componentHttpClient) _getKey() string {
	if i, l := o.x.Load(keyCptKey); !l {
		return ""
	} else if v, k := i.(string); !k {
		return ""
	} else {
		return v
	}
}

func (o *componentHttpClient) _getViper() libvpr.Viper {
	if i, l := o.x.Load(keyFctViper); !l {
		return nil
	} else if f, k := i.(libvpr.FuncViper); !k || f == nil {
		return nil
	} else {
		return f()
	}
}

func (o *componentHttpClient) _getFctEvt(key uint8) cfgtps.FuncCptEvent {
	if i, l := o.x.Load(key); !l {
		return nil
	} else if f, k := i.(cfgtps.FuncCptEvent); !k {
		return nil
	} else {
		return f
	}
}

func (o *componentHttpClient) _getFct() (cfgtps.FuncCptEvent, cfgtps.FuncCptEvent) {
	if o.IsStarted() {
		return o._getFctEvt(keyFctRelBef), o._getFctEvt(keyFctRelAft)
	} else {
		return o._getFctEvt(keyFctStaBef), o._getFctEvt(keyFctStaAft)
	}
}

func (o *componentHttpClient) _runFct(fct cfgtps.FuncCptEvent) error {
	if fct != nil {
		return fct(o)
	}

	return nil
}

func (o *componentHttpClient) _runCli() error {
	var prt = ErrorComponentReload

	if !o.IsStarted() {
		prt = ErrorComponentStart
	}

	cfg, err := o._getConfig()
	if err != nil {
		return prt.Error(err)
	}

	old := o.d.Load()

	dns := htcdns.New(o.x, cfg, func() tlscas.Cert {
		return o.getRootCA()
	}, o.getMessage())

	o.setConfig(*cfg)
	o.setDNSMapper(dns)

	if o.s.Load() {
		o.SetDefault()
	}

	if old != nil {
		_ = old.Close()
	}

	return nil
}

func (o *componentHttpClient) _run() error {
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

// delegations completing the htcdns.DNSMapper embedding of the component
// interface.

func (o *componentHttpClient) Len() int {
	if d := o.getDNSMapper(); d != nil {
		return d.Len()
	}

	return 0
}

func (o *componentHttpClient) Walk(fct func(from, to string) bool) {
	if d := o.getDNSMapper(); d != nil {
		d.Walk(fct)
	}
}

func (o *componentHttpClient) Clean(endpoint string) (host string, port string, err error) {
	if d := o.getDNSMapper(); d != nil {
		return d.Clean(endpoint)
	}

	return "", "", ErrorComponentNotInitialized.Error(nil)
}

func (o *componentHttpClient) Search(endpoint string) (string, error) {
	if d := o.getDNSMapper(); d != nil {
		return d.Search(endpoint)
	}

	return "", ErrorComponentNotInitialized.Error(nil)
}

func (o *componentHttpClient) SearchWithCache(endpoint string) (string, error) {
	if d := o.getDNSMapper(); d != nil {
		return d.SearchWithCache(endpoint)
	}

	return "", ErrorComponentNotInitialized.Error(nil)
}

func (o *componentHttpClient) TransportWithTLS(cfg htcdns.TransportConfig, ssl *tls.Config) *http.Transport {
	if d := o.getDNSMapper(); d != nil {
		return d.TransportWithTLS(cfg, ssl)
	}

	return nil
}

func (o *componentHttpClient) GetConfig() htcdns.Config {
	return o.Config()
}

func (o *componentHttpClient) RegisterTransport(t *http.Transport) {
	if d := o.getDNSMapper(); d != nil {
		d.RegisterTransport(t)
	}
}

func (o *componentHttpClient) Close() error {
	if d := o.getDNSMapper(); d != nil {
		return d.Close()
	}

	return nil
}

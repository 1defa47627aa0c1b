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

package config

import (
	liberr "github.com/nabbar/go-httpengine/errors"
	montps "github.com/nabbar/go-httpengine/monitor/types"
	libver "github.com/nabbar/go-httpengine/version"
	libvpr "github.com/nabbar/go-httpengine/viper"
	spfvpr "github.com/spf13/viper"
)

func (o *model) RegisterVersion(vrs libver.Version) {
	o.fct.Store(fctVersion, vrs)
}

func (o *model) getVersion() libver.Version {
	if i, l := o.fct.Load(fctVersion); !l {
		return nil
	} else if v, k := i.(libver.Version); !k {
		return nil
	} else if v == nil {
		return nil
	} else {
		return v
	}
}

func (o *model) RegisterFuncViper(fct libvpr.FuncViper) {
	o.fct.Store(fctViper, fct)
}

func (o *model) getViper() libvpr.Viper {
	if i, l := o.fct.Load(fctViper); !l {
		return nil
	} else if v, k := i.(libvpr.FuncViper); !k {
		return nil
	} else if v == nil {
		return nil
	} else {
		return v()
	}
}

func (o *model) getSPFViper() *spfvpr.Viper {
	if v := o.getViper(); v == nil {
		return nil
	} else {
		return v.Viper()
	}
}

func (o *model) RegisterFuncStartBefore(fct FuncEvent) {
	o.fct.Store(fctStartBefore, fct)
}

func (o *model) runFuncStartBefore() liberr.Error {
	if i, l := o.fct.Load(fctStartBefore); !l {
		return nil
	} else if v, k := i.(FuncEvent); !k {
		return nil
	} else if v == nil {
		return nil
	} else {
		return v()
	}
}

func (o *model) RegisterFuncStartAfter(fct FuncEvent) {
	o.fct.Store(fctStartAfter, fct)
}

func (o *model) runFuncStartAfter() liberr.Error {
	if i, l := o.fct.Load(fctStartAfter); !l {
		return nil
	} else if v, k := i.(FuncEvent); !k {
		return nil
	} else if v == nil {
		return nil
	} else {
		return v()
	}
}

func (o *model) RegisterFuncReloadBefore(fct FuncEvent) {
	o.fct.Store(fctReloadBefore, fct)
}

func (o *model) runFuncReloadBefore() liberr.Error {
	if i, l := o.fct.Load(fctReloadBefore); !l {
		return nil
	} else if v, k := i.(FuncEvent); !k {
		return nil
	} else if v == nil {
		return nil
	} else {
		return v()
	}
}

func (o *model) RegisterFuncReloadAfter(fct FuncEvent) {
	o.fct.Store(fctReloadAfter, fct)
}

func (o *model) runFuncReloadAfter() liberr.Error {
	if i, l := o.fct.Load(fctReloadAfter); !l {
		return nil
	} else if v, k := i.(FuncEvent); !k {
		return nil
	} else if v == nil {
		return nil
	} else {
		return v()
	}
}

func (o *model) RegisterFuncStopBefore(fct FuncEvent) {
	o.fct.Store(fctStopBefore, fct)
}

func (o *model) runFuncStopBefore() liberr.Error {
	if i, l := o.fct.Load(fctStopBefore); !l {
		return nil
	} else if v, k := i.(FuncEvent); !k {
		return nil
	} else if v == nil {
		return nil
	} else {
		return v()
	}
}

func (o *model) RegisterFuncStopAfter(fct FuncEvent) {
	o.fct.Store(fctStopAfter, fct)
}

func (o *model) runFuncStopAfter() liberr.Error {
	if i, l := o.fct.Load(fctStopAfter); !l {
		return nil
	} else if v, k := i.(FuncEvent); !k {
		return nil
	} else if v == nil {
		return nil
	} else {
		return v()
	}
}

func (o *model) RegisterMonitorPool(p montps.FuncPool) {
	o.fct.Store(fctMonitorPool, p)
}

func (o *model) getFctMonitorPool() montps.FuncPool {
	if i, l := o.fct.Load(fctMonitorPool); !l {
		return nil
	} else if v, k := i.(montps.FuncPool); !k {
		return nil
	} else if v == nil {
		return nil
	} else {
		return v
	}
}

func (o *model) getMonitorPool() montps.Pool {
	if i, l := o.fct.Load(fctMonitorPool); !l {
		return nil
	} else if v, k := i.(montps.FuncPool); !k {
		return nil
	} else if v == nil {
		return nil
	} else {
		return v()
	}
}

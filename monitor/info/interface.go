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

// Package info carries the identity of a monitored component: a display
// name and a free-form metadata map, both resolvable lazily through
// registered functions.
package info

import (
	"fmt"
	"sync"
)

// FuncName resolves the component display name.
type FuncName func() (string, error)

// FuncInfo resolves the component metadata map.
type FuncInfo func() (map[string]interface{}, error)

// Info exposes the identity of a monitored component. Name and Info are
// resolved at call time through the registered functions, falling back to
// the values given at construction.
type Info interface {
	// Name returns the component display name.
	Name() string

	// Info returns the component metadata map, empty if unresolved.
	Info() map[string]interface{}

	// RegisterName registers the lazy name resolver.
	RegisterName(fct FuncName)

	// RegisterInfo registers the lazy metadata resolver.
	RegisterInfo(fct FuncInfo)
}

// New returns an Info seeded with the given default name. An empty name is
// rejected.
func New(name string) (Info, error) {
	if name == "" {
		return nil, fmt.Errorf("missing component name")
	}

	return &inf{
		d: name,
	}, nil
}

type inf struct {
	m sync.RWMutex
	d string
	n FuncName
	i FuncInfo
}

func (o *inf) Name() string {
	o.m.RLock()
	defer o.m.RUnlock()

	if o.n != nil {
		if n, e := o.n(); e == nil && n != "" {
			return n
		}
	}

	return o.d
}

func (o *inf) Info() map[string]interface{} {
	o.m.RLock()
	defer o.m.RUnlock()

	if o.i != nil {
		if i, e := o.i(); e == nil && i != nil {
			return i
		}
	}

	return make(map[string]interface{}, 0)
}

func (o *inf) RegisterName(fct FuncName) {
	o.m.Lock()
	defer o.m.Unlock()
	o.n = fct
}

func (o *inf) RegisterInfo(fct FuncInfo) {
	o.m.Lock()
	defer o.m.Unlock()
	o.i = fct
}

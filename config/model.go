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

package config

import (
	"context"
	"sync/atomic"

	libatm "github.com/nabbar/go-httpengine/atomic"
	cfgtps "github.com/nabbar/go-httpengine/config/types"
	libctx "github.com/nabbar/go-httpengine/context"
)

// keys of the function slots stored in the model's fct store.
const (
	fctVersion uint8 = iota
	fctViper
	fctStartBefore
	fctStartAfter
	fctReloadBefore
	fctReloadAfter
	fctStopBefore
	fctStopAfter
	fctLoggerDef
	fctMonitorPool
)

// model is the Config implementation. The shared application state lives in
// ctx, registered components in cpt, and the event/registration function
// slots in fct.
type model struct {
	ctx libctx.Config[string]
	cpt libatm.MapTyped[string, cfgtps.Component]
	fct libctx.Config[uint8]
	cnl libatm.MapTyped[uint64, context.CancelFunc]
	seq *atomic.Uint64
}

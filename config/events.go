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
	"os"

	liberr "github.com/nabbar/go-httpengine/errors"
)

func (o *model) Start() liberr.Error {
	if err := o.runFuncStartBefore(); err != nil {
		return err
	}

	if err := o.ComponentStart(); err != nil {
		return err
	}

	if err := o.runFuncStartAfter(); err != nil {
		return err
	}

	return nil
}

func (o *model) Reload() liberr.Error {
	if err := o.runFuncReloadBefore(); err != nil {
		return err
	}

	if err := o.ComponentReload(); err != nil {
		return err
	}

	if err := o.runFuncReloadAfter(); err != nil {
		return err
	}

	return nil
}

func (o *model) Stop() {
	_ = o.runFuncStopBefore()
	o.ComponentStop()
	_ = o.runFuncStopAfter()
}

func (o *model) Shutdown(code int) {
	o.cancel()
	os.Exit(code)
}

/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
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

package viper

import (
	"github.com/mitchellh/mapstructure"
	spfvpr "github.com/spf13/viper"
)

// HookRegister appends a decode hook applied during Unmarshal,
// UnmarshalKey and UnmarshalExact. hook must be one of the function
// shapes mapstructure.DecodeHookFunc accepts.
func (o *viperModel) HookRegister(hook interface{}) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.hooks = append(o.hooks, hook)
}

// HookReset clears every hook registered so far.
func (o *viperModel) HookReset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.hooks = nil
}

func (o *viperModel) decodeHookOption() spfvpr.DecoderConfigOption {
	o.mu.Lock()
	hooks := make([]mapstructure.DecodeHookFunc, len(o.hooks))
	copy(hooks, o.hooks)
	o.mu.Unlock()

	return func(c *mapstructure.DecoderConfig) {
		if len(hooks) > 0 {
			c.DecodeHook = mapstructure.ComposeDecodeHookFunc(hooks...)
		}
	}
}

func (o *viperModel) Unmarshal(dst interface{}) error {
	return o.vpr.Unmarshal(dst, o.decodeHookOption())
}

func (o *viperModel) UnmarshalKey(key string, dst interface{}) error {
	return o.vpr.UnmarshalKey(key, dst, o.decodeHookOption())
}

func (o *viperModel) UnmarshalExact(dst interface{}) error {
	return o.vpr.UnmarshalExact(dst, o.decodeHookOption())
}

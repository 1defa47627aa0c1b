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
	"context"
	"io"
	"sync"
	"time"

	"github.com/mitchellh/mapstructure"
	spfvpr "github.com/spf13/viper"

	liblog "github.com/nabbar/go-httpengine/logger"
)

type viperModel struct {
	mu  sync.Mutex
	ctx context.Context
	log liblog.FuncLog
	vpr *spfvpr.Viper

	homeBaseName string
	envPrefix    string
	defaultCfg   func() io.Reader
	isDefault    bool

	remoteProvider  string
	remoteEndpoint  string
	remotePath      string
	remoteSecureKey string
	remoteModel     interface{}
	remoteReload    func()

	hooks []mapstructure.DecodeHookFunc
}

func (o *viperModel) Viper() *spfvpr.Viper {
	return o.vpr
}

func (o *viperModel) SetHomeBaseName(name string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.homeBaseName = name
}

func (o *viperModel) SetEnvVarsPrefix(prefix string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.envPrefix = prefix
}

func (o *viperModel) SetDefaultConfig(fct func() io.Reader) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.defaultCfg = fct
}

func (o *viperModel) SetRemoteProvider(provider string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.remoteProvider = provider
}

func (o *viperModel) SetRemoteEndpoint(endpoint string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.remoteEndpoint = endpoint
}

func (o *viperModel) SetRemotePath(path string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.remotePath = path
}

func (o *viperModel) SetRemoteSecureKey(key string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.remoteSecureKey = key
}

func (o *viperModel) SetRemoteModel(model interface{}) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.remoteModel = model
}

func (o *viperModel) SetRemoteReloadFunc(fct func()) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.remoteReload = fct
}

func (o *viperModel) logEntry() liblog.Logger {
	if o.log == nil {
		return nil
	}
	return o.log()
}

// GetBool and the rest of the Get* family simply defer to the wrapped
// viper instance; the value add of this package is in SetConfigFile,
// Config, HookRegister and Unset below.
func (o *viperModel) GetBool(key string) bool          { return o.vpr.GetBool(key) }
func (o *viperModel) GetString(key string) string       { return o.vpr.GetString(key) }
func (o *viperModel) GetInt(key string) int             { return o.vpr.GetInt(key) }
func (o *viperModel) GetInt32(key string) int32         { return o.vpr.GetInt32(key) }
func (o *viperModel) GetInt64(key string) int64         { return o.vpr.GetInt64(key) }
func (o *viperModel) GetUint(key string) uint           { return o.vpr.GetUint(key) }
func (o *viperModel) GetUint16(key string) uint16       { return o.vpr.GetUint16(key) }
func (o *viperModel) GetUint32(key string) uint32       { return o.vpr.GetUint32(key) }
func (o *viperModel) GetUint64(key string) uint64       { return o.vpr.GetUint64(key) }
func (o *viperModel) GetFloat64(key string) float64     { return o.vpr.GetFloat64(key) }
func (o *viperModel) GetDuration(key string) time.Duration { return o.vpr.GetDuration(key) }
func (o *viperModel) GetTime(key string) time.Time      { return o.vpr.GetTime(key) }
func (o *viperModel) GetIntSlice(key string) []int      { return o.vpr.GetIntSlice(key) }
func (o *viperModel) GetStringSlice(key string) []string { return o.vpr.GetStringSlice(key) }
func (o *viperModel) GetStringMap(key string) map[string]interface{} {
	return o.vpr.GetStringMap(key)
}
func (o *viperModel) GetStringMapString(key string) map[string]string {
	return o.vpr.GetStringMapString(key)
}
func (o *viperModel) GetStringMapStringSlice(key string) map[string][]string {
	return o.vpr.GetStringMapStringSlice(key)
}

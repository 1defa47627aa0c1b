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

// Package viper wraps spf13/viper with the home/base-name config file
// resolution, a remote provider, decode hooks, and an Unset helper that
// the rest of this module's config components are built around.
package viper

import (
	"context"
	"io"
	"time"

	spfvpr "github.com/spf13/viper"

	liblog "github.com/nabbar/go-httpengine/logger"
	loglvl "github.com/nabbar/go-httpengine/logger/level"
)

// FuncViper returns the currently registered Viper instance. Components
// receive one of these instead of a concrete Viper so they can defer
// resolution until the config model has one ready.
type FuncViper func() Viper

// Viper is the narrow surface this module actually exercises: the
// Getters delegate straight to the wrapped *viper.Viper, while
// SetConfigFile/Config/Unset/HookRegister add the home-directory
// resolution, remote provider and decode-hook plumbing spf13/viper
// itself leaves to the caller.
type Viper interface {
	Viper() *spfvpr.Viper

	SetHomeBaseName(name string)
	SetEnvVarsPrefix(prefix string)
	SetDefaultConfig(fct func() io.Reader)

	SetRemoteProvider(provider string)
	SetRemoteEndpoint(endpoint string)
	SetRemotePath(path string)
	SetRemoteSecureKey(key string)
	SetRemoteModel(model interface{})
	SetRemoteReloadFunc(fct func())

	SetConfigFile(path string) error
	Config(levelOnSuccess, levelOnError loglvl.Level) error

	HookRegister(hook interface{})
	HookReset()

	Unmarshal(dst interface{}) error
	UnmarshalKey(key string, dst interface{}) error
	UnmarshalExact(dst interface{}) error

	Unset(keys ...string) error

	GetBool(key string) bool
	GetString(key string) string
	GetInt(key string) int
	GetInt32(key string) int32
	GetInt64(key string) int64
	GetUint(key string) uint
	GetUint16(key string) uint16
	GetUint32(key string) uint32
	GetUint64(key string) uint64
	GetFloat64(key string) float64
	GetDuration(key string) time.Duration
	GetTime(key string) time.Time
	GetIntSlice(key string) []int
	GetStringSlice(key string) []string
	GetStringMap(key string) map[string]interface{}
	GetStringMapString(key string) map[string]string
	GetStringMapStringSlice(key string) map[string][]string
}

// New returns a Viper bound to an empty configuration, ready to have
// its config file and remote provider set before Config is called.
func New(ctx context.Context, log liblog.FuncLog) Viper {
	return &viperModel{
		ctx: ctx,
		log: log,
		vpr: spfvpr.New(),
	}
}

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
	"bytes"
	"os"
	"path/filepath"
	"strings"

	loglvl "github.com/nabbar/go-httpengine/logger/level"
)

// SetConfigFile points viper at path. An empty path falls back to
// "~/.<base-name>" (or "~/.<base-name>/<base-name>" if that does not
// exist) under the user's home directory, which requires
// SetHomeBaseName to have been called first.
func (o *viperModel) SetConfigFile(path string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if path != "" {
		o.vpr.SetConfigFile(path)
		return nil
	}

	if o.homeBaseName == "" {
		return ErrorBasePathNotFound.Error(nil)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ErrorHomePathNotFound.Error(err)
	}

	o.vpr.SetConfigName(o.homeBaseName)
	o.vpr.AddConfigPath(filepath.Join(home, "."+o.homeBaseName))
	o.vpr.AddConfigPath(home)
	o.vpr.AddConfigPath(".")

	return nil
}

func (o *viperModel) registerRemote() error {
	if o.remoteProvider == "" {
		return nil
	}

	var err error
	if o.remoteSecureKey != "" {
		err = o.vpr.AddSecureRemoteProvider(o.remoteProvider, o.remoteEndpoint, o.remotePath, o.remoteSecureKey)
		if err != nil {
			return ErrorRemoteProviderSecure.Error(err)
		}
	} else {
		err = o.vpr.AddRemoteProvider(o.remoteProvider, o.remoteEndpoint, o.remotePath)
		if err != nil {
			return ErrorRemoteProvider.Error(err)
		}
	}

	return nil
}

// Config loads the configuration: it tries the remote provider (if
// one was registered), then the local config file, and falls back to
// the default config reader (if one was registered) only once both of
// those fail. levelOnSuccess/levelOnError log the outcome through the
// logger this instance was built with.
func (o *viperModel) Config(levelOnSuccess, levelOnError loglvl.Level) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.envPrefix != "" {
		o.vpr.SetEnvPrefix(o.envPrefix)
		o.vpr.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	}
	o.vpr.AutomaticEnv()

	if err := o.registerRemote(); err != nil {
		return err
	}

	if o.remoteProvider != "" {
		if err := o.vpr.ReadRemoteConfig(); err != nil {
			return ErrorRemoteProviderRead.Error(err)
		}
		if o.remoteModel != nil {
			if err := o.vpr.Unmarshal(o.remoteModel); err != nil {
				return ErrorRemoteProviderMarshall.Error(err)
			}
		}
		if o.remoteReload != nil {
			o.vpr.OnConfigChange(func(_ interface{}) { o.remoteReload() })
			o.vpr.WatchRemoteConfigOnChannel()
		}
		o.isDefault = false
		o.logResult(levelOnSuccess, "config loaded from remote provider")
		return nil
	}

	err := o.vpr.ReadInConfig()
	if err == nil {
		o.isDefault = false
		o.logResult(levelOnSuccess, "config loaded from file")
		return nil
	}

	if o.defaultCfg == nil {
		o.logResult(levelOnError, "config could not be read and no default was registered")
		return ErrorConfigRead.Error(err)
	}

	rdr := o.defaultCfg()
	buf := new(bytes.Buffer)
	if _, cErr := buf.ReadFrom(rdr); cErr != nil {
		return ErrorConfigReadDefault.Error(cErr)
	}

	if dErr := o.vpr.ReadConfig(buf); dErr != nil {
		return ErrorConfigReadDefault.Error(dErr)
	}

	o.isDefault = true
	o.logResult(levelOnError, "config not found, falling back to default config")
	return ErrorConfigIsDefault.Error(err)
}

func (o *viperModel) logResult(lvl loglvl.Level, msg string) {
	l := o.logEntry()
	if l == nil {
		return
	}
	l.Entry(lvl, msg).Log()
}

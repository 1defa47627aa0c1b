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

package types

import (
	"bytes"
	"encoding/json"

	cfgcst "github.com/nabbar/go-httpengine/config/const"
	libdur "github.com/nabbar/go-httpengine/duration"
	logcfg "github.com/nabbar/go-httpengine/logger/config"
)

// Config tunes one health monitor: how often the check runs, how long it may
// take, and how many consecutive results flip the status up or down.
type Config struct {
	// Name is the monitor identifier, unique within a pool.
	Name string `json:"name" yaml:"name" toml:"name" mapstructure:"name"`

	// CheckTimeout bounds one health check call. Zero uses the default.
	CheckTimeout libdur.Duration `json:"checkTimeout,omitempty" yaml:"checkTimeout,omitempty" toml:"checkTimeout,omitempty" mapstructure:"checkTimeout,omitempty"`

	// IntervalCheck is the delay between two checks while status is OK.
	IntervalCheck libdur.Duration `json:"intervalCheck,omitempty" yaml:"intervalCheck,omitempty" toml:"intervalCheck,omitempty" mapstructure:"intervalCheck,omitempty"`

	// IntervalFall is the delay between two checks while status is KO.
	IntervalFall libdur.Duration `json:"intervalFall,omitempty" yaml:"intervalFall,omitempty" toml:"intervalFall,omitempty" mapstructure:"intervalFall,omitempty"`

	// IntervalRise is the delay between two checks while recovering.
	IntervalRise libdur.Duration `json:"intervalRise,omitempty" yaml:"intervalRise,omitempty" toml:"intervalRise,omitempty" mapstructure:"intervalRise,omitempty"`

	// FallCountKO is the number of consecutive failures marking KO.
	FallCountKO uint8 `json:"fallCountKO,omitempty" yaml:"fallCountKO,omitempty" toml:"fallCountKO,omitempty" mapstructure:"fallCountKO,omitempty"`

	// FallCountWarn is the number of consecutive failures marking Warn.
	FallCountWarn uint8 `json:"fallCountWarn,omitempty" yaml:"fallCountWarn,omitempty" toml:"fallCountWarn,omitempty" mapstructure:"fallCountWarn,omitempty"`

	// RiseCountKO is the number of consecutive successes leaving KO.
	RiseCountKO uint8 `json:"riseCountKO,omitempty" yaml:"riseCountKO,omitempty" toml:"riseCountKO,omitempty" mapstructure:"riseCountKO,omitempty"`

	// RiseCountWarn is the number of consecutive successes leaving Warn.
	RiseCountWarn uint8 `json:"riseCountWarn,omitempty" yaml:"riseCountWarn,omitempty" toml:"riseCountWarn,omitempty" mapstructure:"riseCountWarn,omitempty"`

	// Logger configures the monitor's own log output.
	Logger logcfg.Options `json:"logger,omitempty" yaml:"logger,omitempty" toml:"logger,omitempty" mapstructure:"logger,omitempty"`
}

var _defaultConfig = []byte(`
{
   "name":"",
   "checkTimeout":"5s",
   "intervalCheck":"5s",
   "intervalFall":"5s",
   "intervalRise":"5s",
   "fallCountKO":2,
   "fallCountWarn":1,
   "riseCountKO":2,
   "riseCountWarn":1,
   "logger":` + string(logcfg.DefaultConfig(cfgcst.JSONIndent)) + `
}`)

// SetDefaultConfig overrides the default configuration returned by
// DefaultConfig.
func SetDefaultConfig(cfg []byte) {
	_defaultConfig = cfg
}

// DefaultConfig returns the default monitor configuration re-indented with
// the given prefix.
func DefaultConfig(indent string) []byte {
	var res = bytes.NewBuffer(make([]byte, 0))
	if err := json.Indent(res, _defaultConfig, indent, cfgcst.JSONIndent); err != nil {
		return _defaultConfig
	} else {
		return res.Bytes()
	}
}

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

package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	libval "github.com/go-playground/validator/v10"
	libtls "github.com/nabbar/go-httpengine/certificates"
	libctx "github.com/nabbar/go-httpengine/context"
	libdur "github.com/nabbar/go-httpengine/duration"
	srvtps "github.com/nabbar/go-httpengine/httpserver/types"
	liblog "github.com/nabbar/go-httpengine/logger"
	montps "github.com/nabbar/go-httpengine/monitor/types"
	libsiz "github.com/nabbar/go-httpengine/size"
)

// Config describes one HTTP server instance: identity, bind address,
// exposure URL, optional TLS, timeouts and monitoring.
type Config struct {
	// Name is the unique identifier of the server instance.
	Name string `json:"name" yaml:"name" toml:"name" mapstructure:"name" validate:"required"`

	// Listen is the local bind address, as host:port.
	Listen string `json:"listen" yaml:"listen" toml:"listen" mapstructure:"listen" validate:"required,hostname_port"`

	// Expose is the public URL through which the server is reached.
	Expose string `json:"expose" yaml:"expose" toml:"expose" mapstructure:"expose" validate:"required,url"`

	// HandlerKey selects the handler of the registered handler map used by
	// this server.
	HandlerKey string `json:"handler_key,omitempty" yaml:"handler_key,omitempty" toml:"handler_key,omitempty" mapstructure:"handler_key,omitempty"`

	// Disabled marks the server as configured but not runnable.
	Disabled bool `json:"disabled,omitempty" yaml:"disabled,omitempty" toml:"disabled,omitempty" mapstructure:"disabled,omitempty"`

	// TLSMandatory refuses to start the server when the TLS configuration
	// is absent or invalid.
	TLSMandatory bool `json:"tls_mandatory,omitempty" yaml:"tls_mandatory,omitempty" toml:"tls_mandatory,omitempty" mapstructure:"tls_mandatory,omitempty"`

	// TLS carries the certificates and TLS bounds of the server.
	TLS libtls.Config `json:"tls,omitempty" yaml:"tls,omitempty" toml:"tls,omitempty" mapstructure:"tls,omitempty"`

	// ReadTimeout bounds reading a whole request, body included.
	ReadTimeout libdur.Duration `json:"read_timeout,omitempty" yaml:"read_timeout,omitempty" toml:"read_timeout,omitempty" mapstructure:"read_timeout,omitempty"`

	// ReadHeaderTimeout bounds reading the request headers.
	ReadHeaderTimeout libdur.Duration `json:"read_header_timeout,omitempty" yaml:"read_header_timeout,omitempty" toml:"read_header_timeout,omitempty" mapstructure:"read_header_timeout,omitempty"`

	// WriteTimeout bounds writing a whole response.
	WriteTimeout libdur.Duration `json:"write_timeout,omitempty" yaml:"write_timeout,omitempty" toml:"write_timeout,omitempty" mapstructure:"write_timeout,omitempty"`

	// IdleTimeout bounds how long a keep-alive connection may stay idle.
	IdleTimeout libdur.Duration `json:"idle_timeout,omitempty" yaml:"idle_timeout,omitempty" toml:"idle_timeout,omitempty" mapstructure:"idle_timeout,omitempty"`

	// MaxHeaderBytes caps the request header size.
	MaxHeaderBytes libsiz.Size `json:"max_header_bytes,omitempty" yaml:"max_header_bytes,omitempty" toml:"max_header_bytes,omitempty" mapstructure:"max_header_bytes,omitempty"`

	// Monitor configures the health monitor attached to this server.
	Monitor montps.Config `json:"monitor,omitempty" yaml:"monitor,omitempty" toml:"monitor,omitempty" mapstructure:"monitor,omitempty"`

	fctHandler srvtps.FuncHandler
	fctTLSDef  libtls.FctTLSDefault
	fctContext libctx.FuncContext
}

// Validate checks the configuration fields against their constraints.
func (c *Config) Validate() error {
	var e = ErrorServerValidate.Error(nil)

	if err := libval.New().Struct(c); err != nil {
		if er, ok := err.(*libval.InvalidValidationError); ok {
			e.Add(er)
		}

		for _, er := range err.(libval.ValidationErrors) {
			//nolint #goerr113
			e.Add(fmt.Errorf("config field '%s' is not validated by constraint '%s'", er.Namespace(), er.ActualTag()))
		}
	}

	if !e.HasParent() {
		e = nil
	}

	return e
}

// Clone returns an independent copy of the configuration, registered
// functions included.
func (c *Config) Clone() Config {
	return Config{
		Name:              c.Name,
		Listen:            c.Listen,
		Expose:            c.Expose,
		HandlerKey:        c.HandlerKey,
		Disabled:          c.Disabled,
		TLSMandatory:      c.TLSMandatory,
		TLS:               c.TLS,
		ReadTimeout:       c.ReadTimeout,
		ReadHeaderTimeout: c.ReadHeaderTimeout,
		WriteTimeout:      c.WriteTimeout,
		IdleTimeout:       c.IdleTimeout,
		MaxHeaderBytes:    c.MaxHeaderBytes,
		Monitor:           c.Monitor,
		fctHandler:        c.fctHandler,
		fctTLSDef:         c.fctTLSDef,
		fctContext:        c.fctContext,
	}
}

// RegisterHandlerFunc registers the function providing the handler map
// served by this server.
func (c *Config) RegisterHandlerFunc(hdl srvtps.FuncHandler) {
	c.fctHandler = hdl
}

// SetDefaultTLS registers the fallback TLS configuration used when the
// config's own TLS block carries no certificate.
func (c *Config) SetDefaultTLS(f libtls.FctTLSDefault) {
	c.fctTLSDef = f
}

// SetContext registers the function providing the server parent context.
func (c *Config) SetContext(f libctx.FuncContext) {
	c.fctContext = f
}

// GetListen returns the bind address as a URL value, nil when unparseable.
func (c *Config) GetListen() *url.URL {
	if u, e := url.Parse("http://" + c.Listen); e == nil {
		return u
	}

	return nil
}

// GetExpose returns the exposure URL, nil when unparseable.
func (c *Config) GetExpose() *url.URL {
	if u, e := url.Parse(c.Expose); e == nil {
		return u
	}

	return nil
}

// GetHandlerKey returns the configured handler key.
func (c *Config) GetHandlerKey() string {
	return c.HandlerKey
}

// GetTLS returns the TLS configuration of the server, falling back to the
// registered default when the config's own block has no certificate. The
// result is never nil; use CheckTLS to assert usability.
func (c *Config) GetTLS() libtls.TLSConfig {
	s := c.TLS.New()

	if s.LenCertificatePair() < 1 && c.fctTLSDef != nil {
		if d := c.fctTLSDef(); d != nil {
			return d
		}
	}

	return s
}

// CheckTLS returns the TLS configuration when it carries at least one
// usable certificate pair, or an error.
func (c *Config) CheckTLS() (libtls.TLSConfig, error) {
	if s := c.GetTLS(); s == nil || s.LenCertificatePair() < 1 {
		return nil, ErrorServerValidate.Error(fmt.Errorf("missing TLS certificates"))
	} else {
		return s, nil
	}
}

// IsTLS reports whether this configuration leads to a TLS listener.
func (c *Config) IsTLS() bool {
	if c.TLSMandatory {
		return true
	} else if s := c.GetTLS(); s != nil && s.LenCertificatePair() > 0 {
		return true
	}

	return false
}

// Server builds a Server from this configuration, a shortcut for New.
func (c Config) Server(defLog liblog.FuncLog) (Server, error) {
	return New(c, defLog)
}

func (c *Config) getParentContext() context.Context {
	if c.fctContext != nil {
		if x := c.fctContext(); x != nil {
			return x
		}
	}

	return context.Background()
}

func (c *Config) getHandlerFunc() map[string]http.Handler {
	if c.fctHandler != nil {
		return c.fctHandler()
	}

	return nil
}

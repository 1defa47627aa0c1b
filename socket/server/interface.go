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

// Package server binds a configured endpoint and hands each inbound
// connection or datagram flow to a handler, for stream and packet
// networks alike.
package server

import (
	"crypto/tls"
	"errors"
	"sync/atomic"

	libtls "github.com/nabbar/go-httpengine/certificates"
	libptc "github.com/nabbar/go-httpengine/network/protocol"
	libsck "github.com/nabbar/go-httpengine/socket"
	sckcfg "github.com/nabbar/go-httpengine/socket/config"
)

var (
	// ErrInvalidNetwork is returned when the configured network kind is
	// empty or unknown.
	ErrInvalidNetwork = errors.New("invalid network protocol")

	// ErrInvalidAddress is returned when no bind address is configured.
	ErrInvalidAddress = errors.New("invalid bind address")

	// ErrInvalidHandler is returned when no handler is given.
	ErrInvalidHandler = errors.New("invalid handler")
)

// New returns a Server bound to the given configuration. Each accepted
// connection is handed to h on its own goroutine. When the configuration
// enables TLS without certificates, the default TLS config from def is
// used if provided.
func New(def libtls.FctTLSDefault, h libsck.Handler, cfg sckcfg.Server) (libsck.Server, error) {
	if cfg.Network == libptc.NetworkEmpty || cfg.Network.Code() == "" {
		return nil, ErrInvalidNetwork
	} else if cfg.Address == "" {
		return nil, ErrInvalidAddress
	} else if h == nil {
		return nil, ErrInvalidHandler
	}

	var t *tls.Config

	if cfg.TLS.Enable {
		s := cfg.TLS.Config.New()

		if s.LenCertificatePair() < 1 && def != nil {
			if d := def(); d != nil {
				s = d
			}
		}

		t = s.TlsConfig("")
	}

	return &srv{
		c: cfg,
		h: h,
		t: t,
		r: new(atomic.Bool),
	}, nil
}

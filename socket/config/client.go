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

// Package config holds the socket client configuration structs, usable
// directly inside application config files.
package config

import (
	libtls "github.com/nabbar/go-httpengine/certificates"
	libptc "github.com/nabbar/go-httpengine/network/protocol"
)

// TLSClient enables and configures TLS on a client connection.
type TLSClient struct {
	// Enable activates TLS on the connection.
	Enable bool `json:"enable,omitempty" yaml:"enable,omitempty" toml:"enable,omitempty" mapstructure:"enable,omitempty"`

	// ServerName overrides the name verified against the server
	// certificate; empty uses the dialed host.
	ServerName string `json:"serverName,omitempty" yaml:"serverName,omitempty" toml:"serverName,omitempty" mapstructure:"serverName,omitempty"`

	// Config carries certificates, roots and version bounds.
	Config libtls.Config `json:"config,omitempty" yaml:"config,omitempty" toml:"config,omitempty" mapstructure:"config,omitempty"`
}

// Client configures one client endpoint.
type Client struct {
	// Network is the network kind used to reach the endpoint.
	Network libptc.NetworkProtocol `json:"network,omitempty" yaml:"network,omitempty" toml:"network,omitempty" mapstructure:"network,omitempty"`

	// Address is the endpoint address: host:port for IP networks, a
	// filesystem path for unix networks.
	Address string `json:"address,omitempty" yaml:"address,omitempty" toml:"address,omitempty" mapstructure:"address,omitempty"`

	// TLS configures transport security for stream networks.
	TLS TLSClient `json:"tls,omitempty" yaml:"tls,omitempty" toml:"tls,omitempty" mapstructure:"tls,omitempty"`
}

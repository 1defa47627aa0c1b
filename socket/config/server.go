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
	"os"

	libtls "github.com/nabbar/go-httpengine/certificates"
	libptc "github.com/nabbar/go-httpengine/network/protocol"
)

// TLSServer enables and configures TLS on a server listener.
type TLSServer struct {
	// Enable activates TLS on the listener.
	Enable bool `json:"enable,omitempty" yaml:"enable,omitempty" toml:"enable,omitempty" mapstructure:"enable,omitempty"`

	// Config carries certificates, roots and version bounds.
	Config libtls.Config `json:"config,omitempty" yaml:"config,omitempty" toml:"config,omitempty" mapstructure:"config,omitempty"`
}

// Server configures one listening endpoint.
type Server struct {
	// Network is the network kind bound by the listener.
	Network libptc.NetworkProtocol `json:"network,omitempty" yaml:"network,omitempty" toml:"network,omitempty" mapstructure:"network,omitempty"`

	// Address is the bind address: host:port for IP networks, a filesystem
	// path for unix networks.
	Address string `json:"address,omitempty" yaml:"address,omitempty" toml:"address,omitempty" mapstructure:"address,omitempty"`

	// PermFile is the file mode applied to a unix socket file after bind.
	PermFile os.FileMode `json:"permFile,omitempty" yaml:"permFile,omitempty" toml:"permFile,omitempty" mapstructure:"permFile,omitempty"`

	// GroupPerm is the gid applied to a unix socket file after bind, any
	// negative value leaves the group unchanged.
	GroupPerm int `json:"groupPerm,omitempty" yaml:"groupPerm,omitempty" toml:"groupPerm,omitempty" mapstructure:"groupPerm,omitempty"`

	// TLS configures transport security for stream networks.
	TLS TLSServer `json:"tls,omitempty" yaml:"tls,omitempty" toml:"tls,omitempty" mapstructure:"tls,omitempty"`
}

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

// Package protocol enumerates the network kinds usable with the net package
// dialers and listeners, with string parsing and codec support for configs.
package protocol

import "strings"

// NetworkProtocol identifies a network kind as understood by net.Dial.
type NetworkProtocol uint8

const (
	// NetworkEmpty is the zero value, no network selected.
	NetworkEmpty NetworkProtocol = iota
	// NetworkTCP is any TCP network (v4 or v6).
	NetworkTCP
	// NetworkTCP4 is TCP over IPv4 only.
	NetworkTCP4
	// NetworkTCP6 is TCP over IPv6 only.
	NetworkTCP6
	// NetworkUDP is any UDP network (v4 or v6).
	NetworkUDP
	// NetworkUDP4 is UDP over IPv4 only.
	NetworkUDP4
	// NetworkUDP6 is UDP over IPv6 only.
	NetworkUDP6
	// NetworkUnix is a stream-oriented unix domain socket.
	NetworkUnix
	// NetworkUnixGram is a datagram-oriented unix domain socket.
	NetworkUnixGram
)

// Code returns the network string expected by the net package ("tcp",
// "udp4", "unixgram", ...). The empty protocol returns an empty string.
func (p NetworkProtocol) Code() string {
	switch p {
	case NetworkTCP:
		return "tcp"
	case NetworkTCP4:
		return "tcp4"
	case NetworkTCP6:
		return "tcp6"
	case NetworkUDP:
		return "udp"
	case NetworkUDP4:
		return "udp4"
	case NetworkUDP6:
		return "udp6"
	case NetworkUnix:
		return "unix"
	case NetworkUnixGram:
		return "unixgram"
	default:
		return ""
	}
}

// String returns the same value as Code.
func (p NetworkProtocol) String() string {
	return p.Code()
}

// Parse converts a network string into a NetworkProtocol. Unknown or empty
// strings map to NetworkEmpty.
func Parse(s string) NetworkProtocol {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tcp":
		return NetworkTCP
	case "tcp4":
		return NetworkTCP4
	case "tcp6":
		return NetworkTCP6
	case "udp":
		return NetworkUDP
	case "udp4":
		return NetworkUDP4
	case "udp6":
		return NetworkUDP6
	case "unix":
		return NetworkUnix
	case "unixgram":
		return NetworkUnixGram
	default:
		return NetworkEmpty
	}
}

// ParseBytes is a bytes convenience over Parse.
func ParseBytes(b []byte) NetworkProtocol {
	return Parse(string(b))
}

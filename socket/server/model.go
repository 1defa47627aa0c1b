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

package server

import (
	"context"
	"crypto/tls"
	"net"
	"os"
	"sync"
	"sync/atomic"

	libptc "github.com/nabbar/go-httpengine/network/protocol"
	libsck "github.com/nabbar/go-httpengine/socket"
	sckcfg "github.com/nabbar/go-httpengine/socket/config"
)

type srv struct {
	m sync.Mutex
	c sckcfg.Server
	h libsck.Handler
	t *tls.Config
	r *atomic.Bool
	l net.Listener
	p net.PacketConn
}

func (o *srv) isPacket() bool {
	switch o.c.Network {
	case libptc.NetworkUDP, libptc.NetworkUDP4, libptc.NetworkUDP6, libptc.NetworkUnixGram:
		return true
	default:
		return false
	}
}

func (o *srv) isUnix() bool {
	switch o.c.Network {
	case libptc.NetworkUnix, libptc.NetworkUnixGram:
		return true
	default:
		return false
	}
}

// applyUnixPerm adjusts the socket file mode and group once bound.
func (o *srv) applyUnixPerm() {
	if !o.isUnix() {
		return
	}

	if o.c.PermFile > 0 {
		_ = os.Chmod(o.c.Address, o.c.PermFile)
	}

	if o.c.GroupPerm >= 0 {
		_ = os.Chown(o.c.Address, -1, o.c.GroupPerm)
	}
}

func (o *srv) Listen(ctx context.Context) error {
	if o.isPacket() {
		return o.listenPacket(ctx)
	}

	return o.listenStream(ctx)
}

func (o *srv) listenStream(ctx context.Context) error {
	var (
		e error
		l net.Listener
		c = net.ListenConfig{}
	)

	if l, e = c.Listen(ctx, o.c.Network.Code(), o.c.Address); e != nil {
		return e
	}

	if o.t != nil {
		l = tls.NewListener(l, o.t)
	}

	o.m.Lock()
	o.l = l
	o.m.Unlock()

	o.applyUnixPerm()
	o.r.Store(true)

	defer func() {
		o.r.Store(false)
		_ = l.Close()
	}()

	go func() {
		<-ctx.Done()
		_ = l.Close()
	}()

	for {
		cn, er := l.Accept()
		if er != nil {
			return er
		}

		go o.h(cn)
	}
}

func (o *srv) listenPacket(ctx context.Context) error {
	var (
		e error
		p net.PacketConn
		c = net.ListenConfig{}
	)

	if p, e = c.ListenPacket(ctx, o.c.Network.Code(), o.c.Address); e != nil {
		return e
	}

	o.m.Lock()
	o.p = p
	o.m.Unlock()

	o.applyUnixPerm()
	o.r.Store(true)

	defer func() {
		o.r.Store(false)
		_ = p.Close()
	}()

	go func() {
		<-ctx.Done()
		_ = p.Close()
	}()

	// a packet endpoint has no per-peer connection; the whole flow is
	// handed to the handler as a single context.
	o.h(&pktCtx{p: p})
	return net.ErrClosed
}

func (o *srv) IsRunning() bool {
	return o.r.Load()
}

func (o *srv) Close() error {
	o.m.Lock()
	defer o.m.Unlock()

	var e error

	if o.l != nil {
		e = o.l.Close()
		o.l = nil
	}

	if o.p != nil {
		if er := o.p.Close(); er != nil && e == nil {
			e = er
		}
		o.p = nil
	}

	if o.isUnix() {
		_ = os.Remove(o.c.Address)
	}

	return e
}

// pktCtx adapts a packet endpoint to the connection-style handler context.
type pktCtx struct {
	p net.PacketConn
	a net.Addr
}

func (o *pktCtx) Read(b []byte) (int, error) {
	n, a, e := o.p.ReadFrom(b)
	if a != nil {
		o.a = a
	}

	return n, e
}

func (o *pktCtx) Write(b []byte) (int, error) {
	if o.a == nil {
		return 0, net.ErrClosed
	}

	return o.p.WriteTo(b, o.a)
}

func (o *pktCtx) Close() error {
	return o.p.Close()
}

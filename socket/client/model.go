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

package client

import (
	"context"
	"crypto/tls"
	"net"
	"sync"

	libptc "github.com/nabbar/go-httpengine/network/protocol"
)

type cli struct {
	m sync.Mutex
	n libptc.NetworkProtocol
	a string
	t *tls.Config
	c net.Conn
}

func (o *cli) Connect(ctx context.Context) error {
	o.m.Lock()
	defer o.m.Unlock()

	if o.c != nil {
		_ = o.c.Close()
		o.c = nil
	}

	var d = net.Dialer{}

	c, e := d.DialContext(ctx, o.n.Code(), o.a)
	if e != nil {
		return e
	}

	if o.t != nil {
		switch o.n {
		case libptc.NetworkTCP, libptc.NetworkTCP4, libptc.NetworkTCP6:
			c = tls.Client(c, o.t)
		}
	}

	o.c = c
	return nil
}

func (o *cli) IsConnected() bool {
	o.m.Lock()
	defer o.m.Unlock()
	return o.c != nil
}

func (o *cli) Write(p []byte) (n int, err error) {
	o.m.Lock()
	defer o.m.Unlock()

	if o.c == nil {
		return 0, ErrNotConnected
	}

	return o.c.Write(p)
}

func (o *cli) Close() error {
	o.m.Lock()
	defer o.m.Unlock()

	if o.c == nil {
		return nil
	}

	e := o.c.Close()
	o.c = nil
	return e
}

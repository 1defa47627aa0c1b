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

package transport

import (
	"bufio"
	"context"
	"net"
	"time"
)

// streamConn adapts a single net.Conn (TCP or UNIX stream) to the Conn
// contract. Reads and writes run synchronously on the calling
// goroutine but honour ctx cancellation via the connection's deadline,
// keeping the async-callback shape of the contract without requiring
// a reactor of our own.
type streamConn struct {
	conn   net.Conn
	reader *bufio.Reader
}

// NewTCPConn wraps an already-accepted or already-dialed TCP
// connection. Listening and dialing themselves are out of scope here.
func NewTCPConn(c *net.TCPConn) Conn {
	return &streamConn{conn: c, reader: bufio.NewReader(c)}
}

func (s *streamConn) applyDeadline(ctx context.Context) {
	if dl, ok := ctx.Deadline(); ok {
		_ = s.conn.SetDeadline(dl)
	} else {
		_ = s.conn.SetDeadline(time.Time{})
	}
}

func (s *streamConn) AsyncReadUntil(ctx context.Context, delim byte, cb ReadCallback) {
	s.applyDeadline(ctx)
	data, err := s.reader.ReadBytes(delim)
	cb(data, err)
}

func (s *streamConn) AsyncReadAtLeast(ctx context.Context, n int, cb ReadCallback) {
	s.applyDeadline(ctx)

	buf := make([]byte, n)
	read := 0
	for read < n {
		k, err := s.reader.Read(buf[read:])
		read += k
		if err != nil {
			cb(buf[:read], err)
			return
		}
	}
	cb(buf[:read], nil)
}

func (s *streamConn) AsyncWrite(ctx context.Context, data []byte, cb WriteCallback) {
	s.applyDeadline(ctx)
	n, err := s.conn.Write(data)
	cb(n, err)
}

func (s *streamConn) ShutdownBoth() error {
	type halfCloser interface {
		CloseRead() error
		CloseWrite() error
	}
	if hc, ok := s.conn.(halfCloser); ok {
		errR := hc.CloseRead()
		errW := hc.CloseWrite()
		if errR != nil {
			return errR
		}
		return errW
	}
	return nil
}

func (s *streamConn) Close() error {
	return s.conn.Close()
}

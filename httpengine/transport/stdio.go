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
	"io"
)

// stdioConn adapts a separate reader and writer (typically os.Stdin
// and os.Stdout) to the Conn contract, for the case where the input
// and output connections of a session are not the same descriptor.
type stdioConn struct {
	reader *bufio.Reader
	writer io.Writer
	closer io.Closer
}

// NewStdioConn wraps a reader/writer pair. closer, if non-nil, is
// invoked by Close; it may be nil for streams that should not be
// closed (e.g. the process's own stdin/stdout).
func NewStdioConn(r io.Reader, w io.Writer, closer io.Closer) Conn {
	return &stdioConn{reader: bufio.NewReader(r), writer: w, closer: closer}
}

func (s *stdioConn) AsyncReadUntil(_ context.Context, delim byte, cb ReadCallback) {
	data, err := s.reader.ReadBytes(delim)
	cb(data, err)
}

func (s *stdioConn) AsyncReadAtLeast(_ context.Context, n int, cb ReadCallback) {
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

func (s *stdioConn) AsyncWrite(_ context.Context, data []byte, cb WriteCallback) {
	n, err := s.writer.Write(data)
	cb(n, err)
}

func (s *stdioConn) ShutdownBoth() error {
	return nil
}

func (s *stdioConn) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

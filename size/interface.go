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

// Package size exposes a byte-count type with binary-unit constants and
// human readable formatting, usable directly in config structs.
package size

import (
	"fmt"
	"math"
)

// Size is a number of bytes.
type Size uint64

const (
	// SizeNul is an empty size.
	SizeNul Size = 0

	// KiB is one kibibyte (1024 bytes).
	KiB Size = 1 << (10 * (iota))
	// MiB is one mebibyte.
	MiB
	// GiB is one gibibyte.
	GiB
	// TiB is one tebibyte.
	TiB
	// PiB is one pebibyte.
	PiB
	// EiB is one exbibyte.
	EiB
)

// Aliases kept for readability at call sites dealing with rates.
const (
	SizeKiB = KiB
	SizeMiB = MiB
	SizeGiB = GiB
	SizeTiB = TiB
)

// Uint64 returns the size as a raw byte count.
func (s Size) Uint64() uint64 {
	return uint64(s)
}

// Int64 returns the size as a signed byte count, capped to MaxInt64.
func (s Size) Int64() int64 {
	if uint64(s) > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(s)
}

// Int returns the size as an int, capped to MaxInt.
func (s Size) Int() int {
	if uint64(s) > uint64(math.MaxInt) {
		return math.MaxInt
	}
	return int(s)
}

// Float64 returns the size as a float byte count.
func (s Size) Float64() float64 {
	return float64(s)
}

// String formats the size with the largest unit keeping a value >= 1.
func (s Size) String() string {
	var (
		u = "B"
		v = float64(s)
	)

	for _, p := range []struct {
		lim Size
		unt string
	}{
		{EiB, "EiB"},
		{PiB, "PiB"},
		{TiB, "TiB"},
		{GiB, "GiB"},
		{MiB, "MiB"},
		{KiB, "KiB"},
	} {
		if s >= p.lim {
			u = p.unt
			v = float64(s) / float64(p.lim)
			break
		}
	}

	if u == "B" {
		return fmt.Sprintf("%d B", uint64(s))
	}

	return fmt.Sprintf("%.2f %s", v, u)
}

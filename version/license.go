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

package version

// License identifies the license an application is distributed under.
type License uint8

//nolint:revive
const (
	License_MIT License = iota
	License_Apache2
	License_BSD3
	License_GPL3
	License_LGPL3
	License_MPL2
	License_Unlicense
	License_Proprietary
)

// Name returns the human readable license name.
func (l License) Name() string {
	switch l {
	case License_MIT:
		return "MIT License"
	case License_Apache2:
		return "Apache License 2.0"
	case License_BSD3:
		return "BSD 3-Clause License"
	case License_GPL3:
		return "GNU General Public License v3.0"
	case License_LGPL3:
		return "GNU Lesser General Public License v3.0"
	case License_MPL2:
		return "Mozilla Public License 2.0"
	case License_Unlicense:
		return "The Unlicense"
	default:
		return "Proprietary License"
	}
}

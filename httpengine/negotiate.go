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

package httpengine

// Negotiate implements HTTP content negotiation over two Accept-style
// header values: theirs (what the remote end accepts) and mine (what
// the local end can produce). It returns the best-matching value from
// mine, or "" if nothing acceptable could be found.
//
// An empty theirs means "anything is acceptable": the highest-ranked
// non-wildcard entry of mine is returned. An empty mine means nothing
// can be produced, so the result is always "". Otherwise every pair
// that refers to the same value is intersected, with a combined
// quality of (a.Quality * b.Quality) / 1000, and the highest-ranked
// intersection wins.
func Negotiate(theirs, mine string) string {
	theirValues := parseQValueList(theirs)
	mineValues := parseQValueList(mine)

	if len(mineValues) == 0 {
		return ""
	}

	if len(theirValues) == 0 {
		best, ok := highestConcrete(mineValues)
		if !ok {
			return ""
		}
		return best.String()
	}

	var candidates []QValue

	for _, a := range theirValues {
		for _, b := range mineValues {
			if !a.Equal(b) {
				continue
			}

			combined := a
			combined.Quality = a.Quality * b.Quality / 1000

			// the concrete side wins; on equal footing, prefer b
			if !(b.Wildcard() && !a.Wildcard()) {
				combined.Value = b.Value
				combined.Mime = b.Mime
				combined.hasMime = b.hasMime
			}

			candidates = append(candidates, combined)
		}
	}

	if len(candidates) == 0 {
		return ""
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if best.Less(c) {
			best = c
		}
	}

	return best.String()
}

func parseQValueList(list string) []QValue {
	var out []QValue
	for _, v := range SplitHeaderList(list) {
		out = append(out, ParseQValue(v))
	}
	return out
}

func highestConcrete(values []QValue) (QValue, bool) {
	var (
		best  QValue
		found bool
	)

	for _, v := range values {
		if v.Wildcard() {
			continue
		}
		if !found || best.Less(v) {
			best = v
			found = true
		}
	}

	return best, found
}

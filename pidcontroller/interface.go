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

// Package pidcontroller implements a proportional-integral-derivative step
// generator, used to produce non-linear progressions between two bounds.
package pidcontroller

import "context"

// PIDController generates value progressions driven by the classic PID terms.
type PIDController interface {
	// RangeCtx generates an increasing series from the smallest to the
	// largest of from/to. Each step is the previous value corrected by the
	// proportional, integral and derivative terms applied to the remaining
	// error. The series always terminates with the upper bound. Generation
	// stops early when the context is done, returning the values produced
	// so far.
	RangeCtx(ctx context.Context, from, to float64) []float64
}

// New returns a PIDController with the given term rates. Non-positive
// proportional rates fall back to a minimal progression step.
func New(rateProportional, rateIntegral, rateDerivative float64) PIDController {
	return &pid{
		kp: rateProportional,
		ki: rateIntegral,
		kd: rateDerivative,
	}
}

type pid struct {
	kp float64
	ki float64
	kd float64
}

func (o *pid) RangeCtx(ctx context.Context, from, to float64) []float64 {
	var (
		res = make([]float64, 0)

		cur = from
		end = to

		itg float64
		prv float64
	)

	if cur > end {
		cur, end = end, cur
	}

	if cur == end {
		return append(res, cur)
	}

	kp := o.kp
	if kp <= 0 {
		kp = 0.01
	}

	res = append(res, cur)

	for cur < end {
		select {
		case <-ctx.Done():
			return res
		default:
		}

		err := end - cur
		itg += err
		stp := kp*err + o.ki*itg + o.kd*(err-prv)
		prv = err

		// keep the generator strictly progressing
		if stp <= 0 {
			stp = (end - from) / 100
		}
		if stp <= 0 {
			stp = 1
		}

		cur += stp

		if cur >= end {
			cur = end
		}

		res = append(res, cur)
	}

	return res
}

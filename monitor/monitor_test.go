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

package monitor_test

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	libdur "github.com/nabbar/go-httpengine/duration"
	libmon "github.com/nabbar/go-httpengine/monitor"
	moninf "github.com/nabbar/go-httpengine/monitor/info"
	monpol "github.com/nabbar/go-httpengine/monitor/pool"
	montps "github.com/nabbar/go-httpengine/monitor/types"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func newTestMonitor(name string, check montps.HealthCheck) montps.Monitor {
	inf, err := moninf.New(name)
	Expect(err).ToNot(HaveOccurred())

	mon, err := libmon.New(context.Background(), inf)
	Expect(err).ToNot(HaveOccurred())

	mon.SetHealthCheck(check)
	Expect(mon.SetConfig(context.Background(), montps.Config{
		Name:          name,
		CheckTimeout:  libdur.Duration(250 * time.Millisecond),
		IntervalCheck: libdur.Duration(10 * time.Millisecond),
		IntervalFall:  libdur.Duration(10 * time.Millisecond),
		IntervalRise:  libdur.Duration(10 * time.Millisecond),
		FallCountKO:   1,
		RiseCountKO:   1,
	})).To(Succeed())

	return mon
}

var _ = Describe("Monitor", func() {
	It("requires component info", func() {
		_, err := libmon.New(context.Background(), nil)
		Expect(err).To(HaveOccurred())
	})

	It("refuses to start before configuration", func() {
		inf, err := moninf.New("bare")
		Expect(err).ToNot(HaveOccurred())

		mon, err := libmon.New(context.Background(), inf)
		Expect(err).ToNot(HaveOccurred())

		Expect(mon.Start(context.Background())).To(HaveOccurred())
	})

	It("tracks the health of its check", func() {
		var healthy atomic.Bool
		healthy.Store(true)

		mon := newTestMonitor("svc", func(ctx context.Context) error {
			if healthy.Load() {
				return nil
			}
			return fmt.Errorf("down")
		})

		Expect(mon.Start(context.Background())).To(Succeed())
		defer func() {
			x, n := context.WithTimeout(context.Background(), time.Second)
			defer n()
			_ = mon.Stop(x)
		}()

		Eventually(mon.IsHealthy, time.Second).Should(BeTrue())

		healthy.Store(false)
		Eventually(mon.IsHealthy, time.Second).Should(BeFalse())
		Expect(mon.ErrorsLast()).To(HaveOccurred())

		healthy.Store(true)
		Eventually(mon.IsHealthy, time.Second).Should(BeTrue())
		Expect(mon.ErrorsLast()).ToNot(HaveOccurred())
	})

	It("resolves its name from info when the config omits one", func() {
		inf, err := moninf.New("from-info")
		Expect(err).ToNot(HaveOccurred())

		mon, err := libmon.New(context.Background(), inf)
		Expect(err).ToNot(HaveOccurred())
		Expect(mon.SetConfig(context.Background(), montps.Config{})).To(Succeed())
		Expect(mon.Name()).To(Equal("from-info"))
	})
})

var _ = Describe("Pool", func() {
	It("stores and drives monitors by name", func() {
		p := monpol.New(context.Background())

		mon := newTestMonitor("pooled", func(ctx context.Context) error {
			return nil
		})

		Expect(p.MonitorSet(mon)).To(Succeed())
		Expect(p.MonitorList()).To(ConsistOf("pooled"))
		Expect(p.MonitorGet("pooled")).ToNot(BeNil())

		Expect(p.Start(context.Background())).To(Succeed())
		Eventually(p.IsRunning, time.Second).Should(BeTrue())

		x, n := context.WithTimeout(context.Background(), time.Second)
		defer n()
		Expect(p.Stop(x)).To(Succeed())
		Eventually(p.IsRunning, time.Second).Should(BeFalse())
	})

	It("rejects a monitor without a name", func() {
		p := monpol.New(context.Background())
		Expect(p.MonitorSet(nil)).To(HaveOccurred())
	})
})

package countdown_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/countdown/internal/countdown"
)

// runTicks drives the live tick chain the way the UI loop does.
func runTicks(t *countdown.Timer, n int) int {
	applied := 0
	for i := 0; i < n; i++ {
		before := t.Remaining()
		t.Tick(t.Epoch())
		if t.Remaining() < before {
			applied++
		}
	}
	return applied
}

var _ = Describe("Timer", func() {
	var timer countdown.Timer

	BeforeEach(func() {
		var err error
		timer, err = countdown.New(countdown.DefaultSeconds, false)
		Expect(err).NotTo(HaveOccurred())
	})

	It("starts stopped at the initial value", func() {
		Expect(timer.Remaining()).To(Equal(60))
		Expect(timer.Running()).To(BeFalse())
		Expect(timer.Phase()).To(Equal(countdown.PhaseStopped))
	})

	It("never decrements while stopped", func() {
		Expect(runTicks(&timer, 10)).To(BeZero())
		Expect(timer.Remaining()).To(Equal(60))
	})

	It("shows 55 after five ticks while running", func() {
		Expect(timer.Toggle()).To(BeTrue())
		runTicks(&timer, 5)
		Expect(timer.Remaining()).To(Equal(55))
	})

	It("resumes from the current value after stop and start", func() {
		timer.Toggle()
		runTicks(&timer, 5)
		Expect(timer.Toggle()).To(BeFalse())
		Expect(timer.Remaining()).To(Equal(55))
		Expect(timer.Toggle()).To(BeTrue())
		Expect(timer.Remaining()).To(Equal(55))
		runTicks(&timer, 1)
		Expect(timer.Remaining()).To(Equal(54))
	})

	It("leaves the value unchanged when toggled twice before any tick", func() {
		timer.Toggle()
		timer.Toggle()
		Expect(timer.Remaining()).To(Equal(60))
		Expect(timer.Running()).To(BeFalse())
	})

	It("reaches zero after exactly sixty ticks and stops", func() {
		timer.Toggle()
		Expect(runTicks(&timer, 60)).To(Equal(60))
		Expect(timer.Remaining()).To(BeZero())
		Expect(timer.Running()).To(BeFalse())
		Expect(timer.Phase()).To(Equal(countdown.PhaseFinished))

		Expect(runTicks(&timer, 5)).To(BeZero())
		Expect(timer.Remaining()).To(BeZero())
	})

	It("rearms from the initial value when toggled after finishing", func() {
		timer.Toggle()
		runTicks(&timer, 60)
		Expect(timer.Toggle()).To(BeTrue())
		Expect(timer.Remaining()).To(Equal(60))
		Expect(timer.Phase()).To(Equal(countdown.PhaseRunning))
	})

	Context("with stale tick chains", func() {
		It("drops ticks armed before a stop", func() {
			timer.Toggle()
			stale := timer.Epoch()
			timer.Toggle()
			Expect(timer.Tick(stale)).To(BeFalse())
			Expect(timer.Remaining()).To(Equal(60))
		})

		It("keeps only the newest chain after repeated toggling", func() {
			timer.Toggle()
			first := timer.Epoch()
			timer.Toggle()
			timer.Toggle()
			live := timer.Epoch()

			Expect(timer.Tick(first)).To(BeFalse())
			Expect(timer.Tick(live)).To(BeTrue())
			Expect(timer.Remaining()).To(Equal(59))
		})
	})

	Context("with reset on stop", func() {
		BeforeEach(func() {
			var err error
			timer, err = countdown.New(10, true)
			Expect(err).NotTo(HaveOccurred())
		})

		It("restores the initial value when stopped", func() {
			timer.Toggle()
			runTicks(&timer, 4)
			Expect(timer.Remaining()).To(Equal(6))
			timer.Toggle()
			Expect(timer.Remaining()).To(Equal(10))
			Expect(timer.Ticks()).To(BeZero())
		})
	})
})

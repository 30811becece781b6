package foodweb_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ecodyn/metaflux/internal/foodweb"
	"github.com/ecodyn/metaflux/internal/ode"
)

var _ = Describe("Simulate", func() {
	var (
		web  *foodweb.Ecosystem
		ctx  *foodweb.Context
		x0   ode.State
		opts ode.Options
	)

	flat := foodweb.TPC{B0: 1.0, E: 0.0, Tr: 293.0}

	BeforeEach(func() {
		web = foodweb.NewEcosystem(
			foodweb.NewAutotroph(0.5, 1.0, 0.01, 0.001, flat, flat),
			foodweb.NewCarbonPool(false),
			foodweb.NewNutrientPool(1.0),
		)
		var err error
		ctx, err = foodweb.NewContext(web, 293, 2, 1)
		Expect(err).NotTo(HaveOccurred())
		x0 = ode.State{1.0, 0.0, 5.0}
		opts = ode.DefaultOptions()
	})

	It("samples exactly the requested time grid", func() {
		traj, err := foodweb.Simulate(ctx, x0, 0, 10, 1, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(traj.Len()).To(Equal(11))
		for i := 0; i <= 10; i++ {
			tm, state := traj.At(i)
			Expect(tm).To(BeNumerically("~", float64(i), 1e-9))
			Expect(state).To(HaveLen(3))
		}
	})

	It("returns the initial state as the first sample", func() {
		traj, err := foodweb.Simulate(ctx, x0, 0, 2, 0.5, opts)
		Expect(err).NotTo(HaveOccurred())
		_, first := traj.At(0)
		Expect(first).To(Equal(x0))
	})

	It("conserves the unlinked carbon pool", func() {
		traj, err := foodweb.Simulate(ctx, x0, 0, 10, 1, opts)
		Expect(err).NotTo(HaveOccurred())
		for i := 0; i < traj.Len(); i++ {
			_, state := traj.At(i)
			Expect(state[1]).To(BeNumerically("~", 0.0, 1e-9))
		}
	})

	It("rejects a state vector of the wrong length", func() {
		_, err := foodweb.Simulate(ctx, ode.State{1.0, 0.0}, 0, 10, 1, opts)
		Expect(err).To(MatchError(foodweb.ErrStateLength))
	})

	It("rejects stop <= start", func() {
		_, err := foodweb.Simulate(ctx, x0, 5, 5, 1, opts)
		Expect(err).To(MatchError(foodweb.ErrTimeSpan))
		_, err = foodweb.Simulate(ctx, x0, 5, 2, 1, opts)
		Expect(err).To(MatchError(foodweb.ErrTimeSpan))
	})

	It("rejects an ecosystem without exactly one of each pool", func() {
		bad := foodweb.NewEcosystem(
			foodweb.NewAutotroph(0.5, 1.0, 0.01, 0.001, flat, flat),
			foodweb.NewNutrientPool(1.0),
			foodweb.NewNutrientPool(2.0),
		)
		badCtx, err := foodweb.NewContext(bad, 293, 1, 2)
		Expect(err).NotTo(HaveOccurred())
		_, err = foodweb.Simulate(badCtx, ode.State{1, 1, 1}, 0, 10, 1, opts)
		Expect(err).To(MatchError(foodweb.ErrPoolCount))
	})

	It("surfaces the solver's iteration budget verbatim", func() {
		opts.MaxIter = 1
		_, err := foodweb.Simulate(ctx, x0, 0, 10, 1, opts)
		Expect(err).To(MatchError(ode.ErrIterBudget))
	})

	It("keeps a single autotroph bounded under default parameters", func() {
		traj, err := foodweb.Simulate(ctx, x0, 0, 50, 1, opts)
		Expect(err).NotTo(HaveOccurred())
		final := traj.Final()
		Expect(final.IsValid()).To(BeTrue())
		// Self-limitation caps the biomass well below blowup.
		Expect(final[0]).To(BeNumerically("<", 1e3))
	})
})

var _ = Describe("TimeGrid", func() {
	It("builds an inclusive grid", func() {
		times, err := foodweb.TimeGrid(0, 10, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(times).To(HaveLen(11))
		Expect(times[0]).To(Equal(0.0))
		Expect(times[10]).To(Equal(10.0))
	})

	It("handles fractional steps", func() {
		times, err := foodweb.TimeGrid(0, 1, 0.1)
		Expect(err).NotTo(HaveOccurred())
		Expect(times).To(HaveLen(11))
	})

	It("rejects a non-positive step", func() {
		_, err := foodweb.TimeGrid(0, 10, 0)
		Expect(err).To(MatchError(foodweb.ErrSampleStep))
	})
})

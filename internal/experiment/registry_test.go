package experiment_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/vlab/internal/experiment"
	"github.com/san-kum/vlab/internal/lab"
)

var _ = Describe("Registry", func() {
	reg := experiment.NewRegistry()

	It("registers every experiment", func() {
		Expect(reg.IDs()).To(Equal([]string{
			"simple-pendulum", "energy-gap", "free-fall", "projectile", "diode", "circuit", "titration",
		}))
	})

	It("builds independent instances", func() {
		a, err := reg.New("circuit")
		Expect(err).NotTo(HaveOccurred())
		b, _ := reg.New("circuit")
		_, _ = a.Set("voltage", 5)
		Expect(b.Params().Get("voltage")).To(Equal(12.0))
	})

	It("rejects unknown ids", func() {
		_, err := reg.New("centrifuge")
		Expect(err).To(MatchError(lab.ErrUnknownExperiment))
		_, err = reg.Info("centrifuge")
		Expect(err).To(MatchError(lab.ErrUnknownExperiment))
	})
})

var _ = Describe("Filter", func() {
	infos := experiment.NewRegistry().List()
	titles := func(in []lab.Info) []string {
		out := make([]string, len(in))
		for i, info := range in {
			out[i] = info.Title
		}
		return out
	}

	It("sorts by popularity by default", func() {
		got := experiment.Filter(infos, experiment.Query{})
		Expect(got).To(HaveLen(7))
		Expect(got[0].ID).To(Equal("simple-pendulum"))
		for i := 1; i < len(got); i++ {
			Expect(got[i-1].Popularity).To(BeNumerically(">=", got[i].Popularity))
		}
	})

	It("sorts alphabetically", func() {
		got := experiment.Filter(infos, experiment.Query{Sort: experiment.SortAZ})
		Expect(titles(got)[0]).To(Equal("Circuit Analysis"))
		Expect(titles(got)[6]).To(Equal("Titration"))
	})

	DescribeTable("filters",
		func(q experiment.Query, want int) {
			Expect(experiment.Filter(infos, q)).To(HaveLen(want))
		},
		Entry("all", experiment.Query{Category: experiment.All, Difficulty: experiment.All}, 7),
		Entry("physics", experiment.Query{Category: "Physics"}, 4),
		Entry("chemistry", experiment.Query{Category: "Chemistry"}, 1),
		Entry("beginner", experiment.Query{Difficulty: "beginner"}, 3),
		Entry("ee intermediate", experiment.Query{Category: "Electrical Engineering", Difficulty: "intermediate"}, 1),
		Entry("no match", experiment.Query{Category: "Biology"}, 0),
	)

	It("lists categories", func() {
		Expect(experiment.Categories(infos)).To(Equal([]string{"Physics", "Electrical Engineering", "Chemistry"}))
	})
})

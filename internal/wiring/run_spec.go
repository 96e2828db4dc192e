package wiring

import (
	"os"
	"path/filepath"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Run", func() {
	writeAll := func(base string, files ...string) {
		for _, f := range files {
			path := filepath.Join(base, f)
			gomega.Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(gomega.Succeed())
			gomega.Expect(os.WriteFile(path, nil, 0o644)).To(gomega.Succeed())
		}
	}

	workflowFor := func(inputDir string) string {
		dir := ginkgo.GinkgoT().TempDir()
		path := filepath.Join(dir, "workflow.yaml")
		data := []byte("delphes:\n  input_dir_prefix: " + inputDir + "\n")
		gomega.Expect(os.WriteFile(path, data, 0o644)).To(gomega.Succeed())
		return path
	}

	ginkgo.It("validates a mixed tree and partitions outcomes by category", func() {
		base := ginkgo.GinkgoT().TempDir()
		writeAll(base,
			"02_mg_processes/signal_sm/Events/run_01/unweighted_events.lhe",
			"02_mg_processes/signal_supp_A/morphing_basis_vector_1/Events/run_01/unweighted_events.lhe",
			"02_mg_processes_2/background_ttbar/Events/run_01/unweighted_events.lhe",
			"02_mg_processes_2/background_wjets/Events/run_01/placeholder.txt",
		)

		delphes := ginkgo.GinkgoT().TempDir()
		gomega.Expect(os.MkdirAll(filepath.Join(delphes, "signal_sm"), 0o755)).To(gomega.Succeed())

		sum, err := Run(Options{BaseDir: base, WorkflowPath: workflowFor(delphes), Parallel: 2})
		gomega.Expect(err).To(gomega.Succeed())

		gomega.Expect(sum.Signal).To(gomega.HaveLen(2))
		gomega.Expect(sum.Background).To(gomega.HaveLen(2))
		gomega.Expect(sum.TotalChecked).To(gomega.Equal(4))
		gomega.Expect(sum.TotalFailed).To(gomega.Equal(1))

		var failing []string
		for _, o := range sum.Background {
			if !o.Passed() {
				failing = append(failing, o.Process)
				gomega.Expect(o.Missing).To(gomega.ConsistOf("run_01/unweighted_events.lhe"))
			}
		}
		gomega.Expect(failing).To(gomega.ConsistOf("background_wjets"))

		gomega.Expect(sum.Downstream.OK).To(gomega.BeTrue())
		gomega.Expect(sum.Pass).To(gomega.BeFalse())
	})

	ginkgo.It("aborts with a structural error when the signal root is absent", func() {
		base := ginkgo.GinkgoT().TempDir()
		wf := workflowFor(ginkgo.GinkgoT().TempDir())

		_, err := Run(Options{BaseDir: base, WorkflowPath: wf})
		gomega.Expect(err).To(gomega.HaveOccurred())
		gomega.Expect(err.Error()).To(gomega.ContainSubstring("02_mg_processes"))
	})
})

package cmd_test

import (
	"os"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/spf13/afero"

	"github.com/CircleCI-Public/repo-browser/version"
)

var _ = Describe("configuration", func() {
	var (
		h       *harness
		restore func()
	)

	BeforeEach(func() {
		restore = clearEnv()
		h = newHarness()
		h.cfg.Fs = afero.NewMemMapFs()
		Expect(afero.WriteFile(h.cfg.Fs, "/etc/repo-browser.yml", []byte("org: from-file\npage_size: 25\n"), 0600)).To(Succeed())
	})

	AfterEach(func() {
		h.server.Close()
		restore()
	})

	It("reads the config file", func() {
		h.server.AppendHandlers(
			orgHandler("from-file", 1),
			reposHandler("from-file", "page=1&per_page=25", nil),
		)

		Expect(h.run("--config", "/etc/repo-browser.yml", "list")).To(Succeed())
	})

	It("lets the environment override the file", func() {
		os.Setenv("REPO_BROWSER_ORG", "from-env")
		os.Setenv("REPO_BROWSER_PAGE_SIZE", "50")
		h.server.AppendHandlers(
			orgHandler("from-env", 1),
			reposHandler("from-env", "page=1&per_page=50", nil),
		)

		Expect(h.run("--config", "/etc/repo-browser.yml", "list")).To(Succeed())
	})

	It("lets flags override the environment", func() {
		os.Setenv("REPO_BROWSER_ORG", "from-env")
		h.server.AppendHandlers(
			orgHandler("from-flag", 1),
			reposHandler("from-flag", "page=1&per_page=100", nil),
		)

		Expect(h.run("--config", "/etc/repo-browser.yml", "--org", "from-flag", "list", "--page-size", "100")).To(Succeed())
	})

	It("rejects an invalid configuration", func() {
		os.Setenv("REPO_BROWSER_PAGE_SIZE", "12")

		Expect(h.run("list")).To(MatchError("invalid configuration: page size must be one of [10 25 50 100], got 12"))
		Expect(h.server.ReceivedRequests()).To(BeEmpty())
	})

	It("fails on a missing config file", func() {
		err := h.run("--config", "/nowhere.yml", "list")
		Expect(err).To(MatchError(ContainSubstring("could not load configuration: reading config file")))
	})
})

var _ = Describe("version", func() {
	It("prints the version without any configuration", func() {
		restore := clearEnv()
		defer restore()
		os.Setenv("REPO_BROWSER_PAGE_SIZE", "not-a-number")

		h := newHarness()
		defer h.server.Close()

		Expect(h.run("version")).To(Succeed())
		Expect(h.out.String()).To(Equal(version.String() + "\n"))
		Expect(h.server.ReceivedRequests()).To(BeEmpty())
	})
})

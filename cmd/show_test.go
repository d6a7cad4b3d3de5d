package cmd_test

import (
	"net/http"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
)

var _ = Describe("show", func() {
	var (
		h       *harness
		restore func()
	)

	BeforeEach(func() {
		restore = clearEnv()
		h = newHarness()
	})

	AfterEach(func() {
		h.server.Close()
		restore()
	})

	repoHandler := func(name string) http.HandlerFunc {
		return ghttp.CombineHandlers(
			ghttp.VerifyRequest("GET", "/repos/acme/"+name),
			ghttp.VerifyHeaderKV("Repo-Browser-Command", "show"),
			ghttp.RespondWithJSONEncoded(http.StatusOK, repoJSON(name, 4321, "2024-03-07T10:00:00Z")),
		)
	}

	It("prints the repository", func() {
		h.server.AppendHandlers(repoHandler("test-repo"))

		Expect(h.run("--org", "acme", "show", "test-repo")).To(Succeed())

		Expect(h.out.String()).To(Equal(`test-repo
No description

View on GitHub: https://github.com/acme/test-repo
Language:       Go
Watchers:       4,321
Forks:          3
Open Issues:    1
Last Updated:   3/7/2024
Status:         Active
`))
		Expect(h.opened).To(BeEmpty())
		Expect(h.ui.Asked).To(BeEmpty())
	})

	It("opens the repository with --web", func() {
		h.server.AppendHandlers(repoHandler("test-repo"))

		Expect(h.run("--org", "acme", "show", "test-repo", "--web")).To(Succeed())
		Expect(h.opened).To(Equal([]string{"https://github.com/acme/test-repo"}))
	})

	It("asks for a name when none is given", func() {
		h.ui.Input = "test-repo"
		h.ui.Confirm = true
		h.server.AppendHandlers(repoHandler("test-repo"))

		Expect(h.run("--org", "acme", "show")).To(Succeed())
		Expect(h.ui.Asked).To(Equal([]string{"Repository name", "Open on GitHub?"}))
		Expect(h.opened).To(Equal([]string{"https://github.com/acme/test-repo"}))
	})

	It("fails without a name", func() {
		Expect(h.run("--org", "acme", "show")).To(MatchError("no repository name given: a value is required"))
		Expect(h.server.ReceivedRequests()).To(BeEmpty())
	})

	It("reports a missing repository", func() {
		h.server.AppendHandlers(
			ghttp.CombineHandlers(
				ghttp.VerifyRequest("GET", "/repos/acme/ghost"),
				ghttp.RespondWith(http.StatusOK, "null", http.Header{"Content-Type": []string{"application/json"}}),
			),
		)

		Expect(h.run("--org", "acme", "show", "ghost")).To(MatchError("Repository not found."))
	})

	It("reports a failed read", func() {
		h.server.AppendHandlers(
			ghttp.CombineHandlers(
				ghttp.VerifyRequest("GET", "/repos/acme/private"),
				ghttp.RespondWithJSONEncoded(http.StatusForbidden, map[string]string{"message": "Forbidden"}),
			),
		)

		Expect(h.run("--org", "acme", "show", "private")).To(MatchError("Repo details fetch failed: 403"))
	})
})

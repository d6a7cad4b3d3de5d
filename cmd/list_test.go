package cmd_test

import (
	"net/http"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"
)

var _ = Describe("list", func() {
	var (
		h       *harness
		restore func()
		page    []map[string]interface{}
	)

	BeforeEach(func() {
		restore = clearEnv()
		h = newHarness()
		page = []map[string]interface{}{
			repoJSON("mid", 50, "2024-02-01T00:00:00Z"),
			repoJSON("small", 1, "2023-05-05T00:00:00Z"),
			repoJSON("big", 1200, "not-a-date"),
		}
	})

	AfterEach(func() {
		h.server.Close()
		restore()
	})

	It("prints the requested page sorted by watchers", func() {
		h.server.AppendHandlers(
			ghttp.CombineHandlers(
				ghttp.VerifyHeaderKV("Repo-Browser-Command", "list"),
				orgHandler("acme", 23),
			),
			reposHandler("acme", "page=2&per_page=10", page),
		)

		Expect(h.run("--org", "acme", "list", "--page", "2")).To(Succeed())

		out := h.out.String()
		Expect(out).To(ContainSubstring("WATCHERS ↓"))
		Expect(out).To(ContainSubstring("1,200"))
		Expect(out).To(ContainSubstring("Invalid Date"))
		Expect(out).To(ContainSubstring("2/1/2024"))
		Expect(out).To(ContainSubstring("Active"))
		Expect(out).To(HaveSuffix("Page 2 of 3\n"))
		Expect(strings.Index(out, "big")).To(BeNumerically("<", strings.Index(out, "mid")))
		Expect(strings.Index(out, "mid")).To(BeNumerically("<", strings.Index(out, "small")))
		Expect(h.server.ReceivedRequests()).To(HaveLen(2))
	})

	It("sorts by the requested key and direction", func() {
		h.server.AppendHandlers(
			orgHandler("acme", 3),
			reposHandler("acme", "page=1&per_page=25", page),
		)

		Expect(h.run("--org", "acme", "list", "--page-size", "25", "--sort", "name", "--asc")).To(Succeed())

		out := h.out.String()
		Expect(out).To(ContainSubstring("NAME ↑"))
		Expect(strings.Index(out, "big")).To(BeNumerically("<", strings.Index(out, "mid")))
		Expect(strings.Index(out, "mid")).To(BeNumerically("<", strings.Index(out, "small")))
		Expect(out).To(HaveSuffix("Page 1 of 1\n"))
	})

	It("moves to the last page when asked for one past the end", func() {
		h.server.AppendHandlers(
			orgHandler("acme", 23),
			reposHandler("acme", "page=5&per_page=10", nil),
			orgHandler("acme", 23),
			reposHandler("acme", "page=3&per_page=10", page),
		)

		Expect(h.run("--org", "acme", "list", "--page", "5")).To(Succeed())
		Expect(h.out.String()).To(HaveSuffix("Page 3 of 3\n"))
		Expect(h.server.ReceivedRequests()).To(HaveLen(4))
	})

	It("says so when the page is empty", func() {
		h.server.AppendHandlers(
			orgHandler("acme", 0),
			reposHandler("acme", "page=1&per_page=10", []map[string]interface{}{}),
		)

		Expect(h.run("--org", "acme", "list")).To(Succeed())
		Expect(h.out.String()).To(Equal("No repositories found.\nPage 1 of 1\n"))
	})

	It("reports a failed organization read", func() {
		h.server.AppendHandlers(
			ghttp.CombineHandlers(
				ghttp.VerifyRequest("GET", "/orgs/nope"),
				ghttp.RespondWithJSONEncoded(http.StatusNotFound, map[string]string{"message": "Not Found"}),
			),
		)

		err := h.run("--org", "nope", "list")
		Expect(err).To(MatchError("Org fetch failed: 404"))
		Expect(h.errOut.String()).To(ContainSubstring("Error: Org fetch failed: 404"))
		Expect(h.out.String()).To(BeEmpty())
		Expect(h.server.ReceivedRequests()).To(HaveLen(1))
	})

	It("reports a failed repository read", func() {
		h.server.AppendHandlers(
			orgHandler("acme", 23),
			ghttp.CombineHandlers(
				ghttp.VerifyRequest("GET", "/orgs/acme/repos"),
				ghttp.RespondWith(http.StatusInternalServerError, "oops"),
			),
		)

		Expect(h.run("--org", "acme", "list")).To(MatchError("Repos fetch failed: 500"))
	})

	It("rejects bad flags before calling the API", func() {
		Expect(h.run("--org", "acme", "list", "--sort", "stars")).To(MatchError(ContainSubstring(`unknown sort key "stars"`)))
		Expect(h.run("--org", "acme", "list", "--page-size", "7")).To(MatchError("page size must be one of [10 25 50 100], got 7"))
		Expect(h.run("--org", "acme", "list", "--page", "0")).To(MatchError("page must be at least 1, got 0"))
		Expect(h.server.ReceivedRequests()).To(BeEmpty())
	})
})

package cmd

import (
	"bytes"
	"os"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/CircleCI-Public/repo-browser/settings"
)

var _ = Describe("browse", func() {
	notATerminal := optionFunc(func(o *commandOpts) {
		o.isTerminal = func(*os.File) bool { return false }
	})

	for _, args := range [][]string{{}, {"browse"}} {
		args := args
		It("needs a terminal", func() {
			cfg := settings.New()
			root := MakeCommands(WithConfig(cfg), notATerminal)
			root.SetArgs(append([]string{"--host", "http://127.0.0.1:1", "--org", "acme"}, args...))
			var out bytes.Buffer
			root.SetOut(&out)
			root.SetErr(&out)

			Expect(root.Execute()).To(MatchError("the browser needs an interactive terminal, use `repo-browser list` instead"))
		})
	}

	It("rejects arguments", func() {
		root := MakeCommands(WithConfig(settings.New()), notATerminal)
		root.SetArgs([]string{"--org", "acme", "browse", "extra"})
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(&out)

		Expect(root.Execute()).To(MatchError(ContainSubstring("unknown command")))
	})
})

package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/pkg/browser"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/CircleCI-Public/repo-browser/api/repository"
	"github.com/CircleCI-Public/repo-browser/logger"
	"github.com/CircleCI-Public/repo-browser/prompt"
	"github.com/CircleCI-Public/repo-browser/settings"
)

// commandOpts is shared by every subcommand. cfg and client are ready once
// the root's PersistentPreRunE has run.
type commandOpts struct {
	cfg        *settings.Config
	configPath string
	client     repository.RepositoryClient
	log        *logger.Logger
	ui         prompt.UserInterface
	openURL    func(url string) error
	isTerminal func(f *os.File) bool
}

// CommandOption configures the command tree built by MakeCommands.
type CommandOption interface {
	apply(*commandOpts)
}

type optionFunc func(*commandOpts)

func (f optionFunc) apply(o *commandOpts) { f(o) }

// WithConfig starts from cfg instead of settings.New().
func WithConfig(cfg *settings.Config) CommandOption {
	return optionFunc(func(o *commandOpts) { o.cfg = cfg })
}

// CustomUI replaces the terminal prompts.
func CustomUI(ui prompt.UserInterface) CommandOption {
	return optionFunc(func(o *commandOpts) { o.ui = ui })
}

// CustomOpenURL replaces the function that opens repository pages.
func CustomOpenURL(open func(url string) error) CommandOption {
	return optionFunc(func(o *commandOpts) { o.openURL = open })
}

// Execute builds the command tree and runs it until it finishes or the
// process is interrupted. It is called by main.main().
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return MakeCommands().ExecuteContext(ctx)
}

func MakeCommands(opts ...CommandOption) *cobra.Command {
	o := &commandOpts{
		cfg:     settings.New(),
		ui:      prompt.InteractiveUI{},
		openURL: browser.OpenURL,
		isTerminal: func(f *os.File) bool {
			return term.IsTerminal(int(f.Fd()))
		},
	}
	for _, opt := range opts {
		opt.apply(o)
	}

	rootCmd := &cobra.Command{
		Use:   "repo-browser",
		Short: "Browse an organization's repositories from the terminal.",
		Long: `Browse an organization's repositories from the terminal.

Without a subcommand the full-screen browser is started. The list and show
subcommands print the same data for scripts and pipes.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, o)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "path to a YAML config file")
	flags.String("host", settings.DefaultHost, "base URL of the GitHub REST API")
	flags.String("org", settings.DefaultOrg, "organization whose repositories are browsed")
	flags.Bool("debug", false, "enable debug logging (the browser writes it to debug.log)")
	flags.Duration("timeout", 0, "timeout for each API request, 0 for none")

	rootCmd.AddCommand(newBrowseCommand(o))
	rootCmd.AddCommand(newListCommand(o))
	rootCmd.AddCommand(newShowCommand(o))
	rootCmd.AddCommand(newVersionCommand(o))

	return rootCmd
}

// setup resolves the configuration (defaults, then the config file, then
// the environment, then flags) and builds the API client.
func (o *commandOpts) setup(cmd *cobra.Command) error {
	if err := o.cfg.Load(o.configPath); err != nil {
		return errors.Wrap(err, "could not load configuration")
	}

	applyFlags(cmd.Flags(), o.cfg)

	o.log = logger.NewLoggerWithWriters(cmd.OutOrStdout(), cmd.ErrOrStderr(), o.cfg.Debug)
	if o.cfg.FileUsed != "" {
		o.log.Debug("using config file %s", o.cfg.FileUsed)
	}

	if err := o.cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	client, err := repository.NewRepositoryRestClient(*o.cfg, cmd.Name())
	if err != nil {
		return errors.Wrap(err, "could not create API client")
	}
	o.client = client
	o.log.Debug("browsing %s on %s", o.cfg.Org, o.cfg.Host)
	return nil
}

// applyFlags copies the global flags the user actually set over cfg.
func applyFlags(flags *pflag.FlagSet, cfg *settings.Config) {
	if flags.Changed("host") {
		cfg.Host, _ = flags.GetString("host")
	}
	if flags.Changed("org") {
		cfg.Org, _ = flags.GetString("org")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("timeout") {
		cfg.Timeout, _ = flags.GetDuration("timeout")
	}
}

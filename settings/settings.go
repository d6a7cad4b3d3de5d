package settings

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/a8m/envsubst"
	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v3"
)

// These are fixed at build time, e.g.
// -ldflags "-X github.com/CircleCI-Public/repo-browser/settings.DefaultOrg=acme"
var (
	DefaultHost = "https://api.github.com"
	DefaultOrg  = "godaddy"
)

const (
	DefaultPageSize = 10
	EnvPrefix       = "repo_browser"
)

// PageSizes are the only page sizes the listing accepts.
var PageSizes = []int{10, 25, 50, 100}

// Config is used to represent the current state of a CLI instance.
type Config struct {
	Host       string        `yaml:"host"`
	Endpoint   string        `yaml:"endpoint"`
	Org        string        `yaml:"org"`
	PageSize   int           `yaml:"page_size"`
	Timeout    time.Duration `yaml:"timeout"`
	Debug      bool          `yaml:"-"`
	FileUsed   string        `yaml:"-"`
	HTTPClient *http.Client  `yaml:"-"`
	Fs         afero.Fs      `yaml:"-"`
}

// New returns a Config holding the build-time defaults.
func New() *Config {
	return &Config{
		Host:       DefaultHost,
		Org:        DefaultOrg,
		PageSize:   DefaultPageSize,
		HTTPClient: http.DefaultClient,
		Fs:         afero.NewOsFs(),
	}
}

// Load reads the config file at path, when one is given, and then applies
// environment overrides. The file is optional and never created.
func (cfg *Config) Load(path string) error {
	if path != "" {
		if err := cfg.LoadFromDisk(path); err != nil {
			return err
		}
	}

	return cfg.LoadFromEnv(EnvPrefix)
}

// LoadFromDisk reads the YAML file at path into cfg. ${VAR} references in
// the file are expanded from the environment first.
func (cfg *Config) LoadFromDisk(path string) error {
	fs := cfg.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	expanded, err := envsubst.Bytes(content)
	if err != nil {
		return fmt.Errorf("expanding config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(expanded, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	cfg.FileUsed = path
	return nil
}

// LoadFromEnv will read from environment variables of the given prefix for
// host, org and page size.
func (cfg *Config) LoadFromEnv(prefix string) error {
	if host := ReadFromEnv(prefix, "host"); host != "" {
		cfg.Host = host
	}

	if org := ReadFromEnv(prefix, "org"); org != "" {
		cfg.Org = org
	}

	if size := ReadFromEnv(prefix, "page_size"); size != "" {
		n, err := strconv.Atoi(size)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", strings.ToUpper(prefix+"_page_size"), err)
		}
		cfg.PageSize = n
	}

	return nil
}

// Validate checks the fields every command depends on.
func (cfg *Config) Validate() error {
	if cfg.Host == "" {
		return fmt.Errorf("host is required")
	}
	if cfg.Org == "" {
		return fmt.Errorf("org is required")
	}
	if !ValidPageSize(cfg.PageSize) {
		return fmt.Errorf("page size must be one of %v, got %d", PageSizes, cfg.PageSize)
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}

func ValidPageSize(n int) bool {
	for _, s := range PageSizes {
		if s == n {
			return true
		}
	}
	return false
}

// ReadFromEnv takes a prefix and field to search the environment for after capitalizing and joining them with an underscore.
func ReadFromEnv(prefix, field string) string {
	name := strings.Join([]string{prefix, field}, "_")
	return os.Getenv(strings.ToUpper(name))
}

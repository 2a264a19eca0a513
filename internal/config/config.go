package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Shell    ShellConfig
	Database DatabaseConfig
	Log      LogConfig
}

// ShellConfig holds the route table, nav bar and presentation settings.
type ShellConfig struct {
	Title       string
	DefaultPage string `mapstructure:"default_page"`
	Container   string
	SettleMS    int    `mapstructure:"settle_ms"`
	Accent      string
	PagesDir    string `mapstructure:"pages_dir"`
	Pages       []string
	Routes      []RouteSpec
	Aliases     map[string]string
	Nav         []NavSpec
}

// RouteSpec is one structured route entry from configuration.
type RouteSpec struct {
	Path string
	Page string
}

// NavSpec is one persistent nav bar item.
type NavSpec struct {
	Label  string
	Target string
}

// DatabaseConfig holds sqlite and data feed settings.
type DatabaseConfig struct {
	Path       string
	ImportFile string `mapstructure:"import_file"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
	Path  string
}

// Load reads configuration from file and env. Env var overrides use prefix
// WORKBENCH_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("shell.title", "Workbench")
	v.SetDefault("shell.default_page", "home")
	v.SetDefault("shell.container", "content")
	v.SetDefault("shell.settle_ms", 120)
	v.SetDefault("shell.accent", "")
	v.SetDefault("shell.pages_dir", "")
	v.SetDefault("shell.pages", []string{"home", "chat", "dashboard", "import"})
	v.SetDefault("shell.aliases", map[string]string{"/kpis": "/dashboard"})
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "workbench", "workbench.db"))
	v.SetDefault("database.import_file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("WORKBENCH_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "workbench"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("WORKBENCH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if len(c.Shell.Nav) == 0 {
		c.Shell.Nav = defaultNav(c.Shell.Pages)
	}
	return c, nil
}

// defaultNav derives one nav item per simple page entry.
func defaultNav(pages []string) []NavSpec {
	out := make([]NavSpec, 0, len(pages))
	for _, p := range pages {
		if p == "" {
			continue
		}
		label := strings.ToUpper(p[:1]) + p[1:]
		out = append(out, NavSpec{Label: label, Target: "#" + p})
	}
	return out
}

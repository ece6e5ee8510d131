package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the status-reporter daemon configuration.
type Config struct {
	Listen         string        `mapstructure:"listen"`
	ProcRoot       string        `mapstructure:"proc_root"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	Remote         Remote        `mapstructure:"remote"`
}

// Remote describes the paired device queried over SSH. An empty Host
// disables remote collection; the page then marks those metrics
// unreachable.
type Remote struct {
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	User     string        `mapstructure:"user"`
	KeyFile  string        `mapstructure:"key_file"`
	Password string        `mapstructure:"password"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Load reads configuration from file and environment.
func Load(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("procboard")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
		viper.AddConfigPath("/etc/procboard")
	}

	viper.SetDefault("listen", "127.0.0.1:8000")
	viper.SetDefault("proc_root", "/proc")
	viper.SetDefault("request_timeout", "30s")
	// Empty defaults keep every key visible to AutomaticEnv and Unmarshal.
	viper.SetDefault("remote.host", "")
	viper.SetDefault("remote.port", 22)
	viper.SetDefault("remote.user", "root")
	viper.SetDefault("remote.key_file", "")
	viper.SetDefault("remote.password", "")
	viper.SetDefault("remote.timeout", "10s")

	viper.SetEnvPrefix("PROCBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

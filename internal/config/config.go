package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultTopic is the topic used when none is given or the given key is unknown.
const DefaultTopic = "szamelm"

// BankScheme prefixes topic sources stored in the SQLite question bank.
const BankScheme = "bank://"

var ErrNoTopics = errors.New("no topics configured")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env          string           `mapstructure:"env"`           // local, production
	DefaultTopic string           `mapstructure:"default_topic"` // key into Topics
	QuestionsDir string           `mapstructure:"questions_dir"` // base for relative file sources
	BankPath     string           `mapstructure:"bank_path"`     // SQLite bank; empty means the XDG default
	LoadTimeout  time.Duration    `mapstructure:"load_timeout"`  // bound on loading one question bank
	Shuffle      Shuffle          `mapstructure:"shuffle"`
	Log          Log              `mapstructure:"log"`
	Topics       map[string]Topic `mapstructure:"topics"`
}

// Shuffle configures deck shuffling.
type Shuffle struct {
	Seed uint64 `mapstructure:"seed"` // 0 seeds from the clock
}

// Log configures the file logger.
type Log struct {
	File  string `mapstructure:"file"`  // empty disables logging
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// Topic maps a topic key to where its questions live and how it is labelled.
type Topic struct {
	Source string `mapstructure:"source"`
	Label  string `mapstructure:"label"`
}

// IsBank reports whether the topic is served from the SQLite question bank.
func (t Topic) IsBank() bool {
	return strings.HasPrefix(t.Source, BankScheme)
}

// IsRemote reports whether the topic is fetched over HTTP.
func (t Topic) IsRemote() bool {
	return strings.HasPrefix(t.Source, "http://") || strings.HasPrefix(t.Source, "https://")
}

// BankTopic returns the bank topic name of a bank:// source.
func (t Topic) BankTopic() string {
	return strings.TrimPrefix(t.Source, BankScheme)
}

// Options tweak where Load looks.
type Options struct {
	// ConfigFile is an explicit config path. When empty, quizdeck.yaml is
	// searched in the working directory and the XDG config directory.
	ConfigFile string

	// EnvFile is loaded before the environment is read. Missing files are ignored.
	EnvFile string
}

// Load reads configuration from .env, config files and environment variables.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	// A missing .env is normal.
	_ = godotenv.Load(envFile)

	v := viper.New()
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		v.SetConfigName("quizdeck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := configHome(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "quizdeck"))
		}
	}

	v.SetDefault("env", "local")
	v.SetDefault("default_topic", DefaultTopic)
	v.SetDefault("questions_dir", ".")
	v.SetDefault("bank_path", "")
	v.SetDefault("load_timeout", "15s")
	v.SetDefault("shuffle.seed", 0)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("topics.szamelm.source", "questions.json")
	v.SetDefault("topics.szamelm.label", "Számelm")
	v.SetDefault("topics.telekom.source", "questions-telekom.json")
	v.SetDefault("topics.telekom.label", "Telekom")

	v.SetEnvPrefix("QUIZDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if len(cfg.Topics) == 0 {
		return nil, ErrNoTopics
	}
	if _, ok := cfg.Topics[cfg.DefaultTopic]; !ok {
		return nil, fmt.Errorf("default_topic %q is not a configured topic", cfg.DefaultTopic)
	}
	return &cfg, nil
}

// Topic returns the topic for key. Unknown or empty keys fall back to the
// default topic; the returned key says which one was chosen.
func (c *Config) Topic(key string) (string, Topic) {
	if t, ok := c.Topics[key]; ok {
		return key, t
	}
	return c.DefaultTopic, c.Topics[c.DefaultTopic]
}

// TopicKeys returns the configured topic keys with the default first and the
// rest sorted.
func (c *Config) TopicKeys() []string {
	keys := make([]string, 0, len(c.Topics))
	for k := range c.Topics {
		if k != c.DefaultTopic {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, ok := c.Topics[c.DefaultTopic]; ok {
		keys = append([]string{c.DefaultTopic}, keys...)
	}
	return keys
}

// SourcePath resolves a file source against QuestionsDir.
func (c *Config) SourcePath(t Topic) string {
	if t.IsBank() || t.IsRemote() || filepath.IsAbs(t.Source) {
		return t.Source
	}
	return filepath.Join(c.QuestionsDir, t.Source)
}

// Label returns the topic label, or the key when no label is set.
func Label(key string, t Topic) string {
	if t.Label != "" {
		return t.Label
	}
	return key
}

func configHome() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config"), nil
}

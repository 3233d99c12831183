package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"marcenaria_site/pkg/ratelimit"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

const reloadDebounce = 300 * time.Millisecond

// Loader owns the viper instance so the site content can be re-read on change.
type Loader struct {
	v        *viper.Viper
	baseFile string
}

// Load reads configs/config.yaml, merges config.<APP_ENVIRONMENT>.yaml when present and
// applies environment overrides (CONTACT_ENDPOINT, REDIS_ADDR, ...).
func Load(paths ...string) (*Config, *Loader, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"./configs", "../../configs", "."}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	baseFile := v.ConfigFileUsed()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = v.GetString("app.environment")
	}
	v.SetConfigName("config." + env)
	if err := v.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, nil, fmt.Errorf("error reading %s config: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.App.Environment = env

	if err := validateConfig(&cfg); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, &Loader{v: v, baseFile: baseFile}, nil
}

// WatchSite re-reads the site block when the base config file changes. Editors write a
// file several times per save, so events are debounced. It does nothing when no config
// file was found.
func (l *Loader) WatchSite(onChange func(SiteConfig), onError func(error)) {
	if l.baseFile == "" {
		return
	}
	debouncer := ratelimit.NewDebouncer(reloadDebounce)
	l.v.OnConfigChange(func(fsnotify.Event) {
		debouncer.Trigger(func() {
			site, err := readSite(l.baseFile)
			if err != nil {
				if onError != nil {
					onError(err)
				}
				return
			}
			onChange(site)
		})
	})
	l.v.SetConfigFile(l.baseFile)
	l.v.WatchConfig()
}

// readSite parses the site block from path on its own viper instance; the watched one is
// re-read by the watcher goroutine and is not safe to read here.
func readSite(path string) (SiteConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return SiteConfig{}, fmt.Errorf("error reading %s: %w", path, err)
	}
	var site SiteConfig
	if err := v.UnmarshalKey("site", &site); err != nil {
		return SiteConfig{}, fmt.Errorf("failed to unmarshal site: %w", err)
	}
	return site, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.environment", "development")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.static_dir", "./static")
	v.SetDefault("server.secure_cookies", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("storage.driver", "memory")
	v.SetDefault("storage.dynamodb.region", "us-east-1")
	v.SetDefault("storage.dynamodb.endpoint", "")
	v.SetDefault("storage.dynamodb.access_key_id", "local")
	v.SetDefault("storage.dynamodb.secret_access_key", "local")
	v.SetDefault("storage.dynamodb.estimates_table", "estimates")
	v.SetDefault("storage.dynamodb.contacts_table", "contact_requests")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.lock_ttl", 30*time.Second)

	v.SetDefault("contact.endpoint", "")
	v.SetDefault("contact.timeout", 15*time.Second)
	v.SetDefault("contact.mock", false)

	v.SetDefault("notify.ses.region", "us-east-1")
	v.SetDefault("notify.ses.sender", "")
	v.SetDefault("notify.ses.recipient", "")
	v.SetDefault("notify.telegram.bot_token", "")
	v.SetDefault("notify.telegram.chat_id", 0)

	v.SetDefault("analytics.collector_url", "")
	v.SetDefault("analytics.measurement_id", "")
	v.SetDefault("analytics.api_secret", "")
	v.SetDefault("analytics.throttle_window", time.Second)

	v.SetDefault("ui.notification_dismiss", 5*time.Second)
	v.SetDefault("ui.header_offset", 80)

	v.SetDefault("site.name", "Marcenaria")
}

func validateConfig(cfg *Config) error {
	switch cfg.Storage.Driver {
	case "memory", "dynamodb":
	default:
		return fmt.Errorf("storage.driver must be memory or dynamodb, got %q", cfg.Storage.Driver)
	}
	if cfg.Contact.Endpoint == "" && !cfg.Contact.Mock {
		return errors.New("contact.endpoint is required unless contact.mock is enabled")
	}
	if cfg.Server.Port <= 0 {
		return fmt.Errorf("server.port must be positive, got %d", cfg.Server.Port)
	}
	return nil
}

// SiteStore hands the current site content to request handlers.
type SiteStore struct {
	p atomic.Pointer[SiteConfig]
}

func NewSiteStore(site SiteConfig) *SiteStore {
	s := &SiteStore{}
	s.Set(site)
	return s
}

func (s *SiteStore) Get() SiteConfig {
	return *s.p.Load()
}

func (s *SiteStore) Set(site SiteConfig) {
	s.p.Store(&site)
}

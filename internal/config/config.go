package config

import "time"

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Contact   ContactConfig   `mapstructure:"contact"`
	Notify    NotifyConfig    `mapstructure:"notify"`
	Analytics AnalyticsConfig `mapstructure:"analytics"`
	UI        UIConfig        `mapstructure:"ui"`
	Site      SiteConfig      `mapstructure:"site"`
}

type AppConfig struct {
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	StaticDir       string        `mapstructure:"static_dir"`
	SecureCookies   bool          `mapstructure:"secure_cookies"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StorageConfig selects where estimates and leads live: "memory" or "dynamodb".
type StorageConfig struct {
	Driver   string         `mapstructure:"driver"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
}

type DynamoDBConfig struct {
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	EstimatesTable  string `mapstructure:"estimates_table"`
	ContactsTable   string `mapstructure:"contacts_table"`
}

// RedisConfig enables the shared submission guard when Addr is set.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	LockTTL  time.Duration `mapstructure:"lock_ttl"`
}

type ContactConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
	Mock     bool          `mapstructure:"mock"`
}

type NotifyConfig struct {
	SES      SESConfig      `mapstructure:"ses"`
	Telegram TelegramConfig `mapstructure:"telegram"`
}

type SESConfig struct {
	Region    string `mapstructure:"region"`
	Sender    string `mapstructure:"sender"`
	Recipient string `mapstructure:"recipient"`
}

func (c SESConfig) Enabled() bool {
	return c.Sender != "" && c.Recipient != ""
}

type TelegramConfig struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

func (c TelegramConfig) Enabled() bool {
	return c.BotToken != "" && c.ChatID != 0
}

type AnalyticsConfig struct {
	CollectorURL   string        `mapstructure:"collector_url"`
	MeasurementID  string        `mapstructure:"measurement_id"`
	APISecret      string        `mapstructure:"api_secret"`
	ThrottleWindow time.Duration `mapstructure:"throttle_window"`
}

type UIConfig struct {
	NotificationDismiss time.Duration `mapstructure:"notification_dismiss"`
	HeaderOffset        int           `mapstructure:"header_offset"`
}

// SiteConfig is the editable content of the brochure pages.
type SiteConfig struct {
	Name      string         `mapstructure:"name"`
	Tagline   string         `mapstructure:"tagline"`
	Phone     string         `mapstructure:"phone"`
	WhatsApp  string         `mapstructure:"whatsapp"`
	Email     string         `mapstructure:"email"`
	Instagram string         `mapstructure:"instagram"`
	Address   string         `mapstructure:"address"`
	Services  []SiteService  `mapstructure:"services"`
	Gallery   []GalleryImage `mapstructure:"gallery"`
}

type SiteService struct {
	Title       string `mapstructure:"title"`
	Description string `mapstructure:"description"`
}

type GalleryImage struct {
	Src     string `mapstructure:"src"`
	Alt     string `mapstructure:"alt"`
	Caption string `mapstructure:"caption"`
}

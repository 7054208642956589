package config

import (
	"fmt"
	"strings"
	"time"

	"inspection-billing/internal/core/domain"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Log       LogConfig       `mapstructure:"log"`
	Pricing   PricingConfig   `mapstructure:"pricing"`
	Gateway   GatewayConfig   `mapstructure:"gateway"`
	Webhook   WebhookConfig   `mapstructure:"webhook"`
	Reconcile ReconcileConfig `mapstructure:"reconcile"`

	v *viper.Viper
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres, memory
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// PricingConfig holds decimal strings so operators can write "10.00".
type PricingConfig struct {
	ReportFee    string `mapstructure:"report_fee"`
	PricePerUnit string `mapstructure:"price_per_unit"`
}

// Amounts parses both prices into minor units.
func (p PricingConfig) Amounts() (reportFee, pricePerUnit domain.Money, err error) {
	reportFee, err = domain.ParseMoney(p.ReportFee)
	if err != nil {
		return 0, 0, fmt.Errorf("pricing.report_fee: %w", err)
	}
	pricePerUnit, err = domain.ParseMoney(p.PricePerUnit)
	if err != nil {
		return 0, 0, fmt.Errorf("pricing.price_per_unit: %w", err)
	}
	if reportFee < 0 || pricePerUnit < 0 {
		return 0, 0, fmt.Errorf("pricing: amounts must not be negative")
	}
	return reportFee, pricePerUnit, nil
}

type GatewayConfig struct {
	DefaultProvider string            `mapstructure:"default_provider"`
	Timeout         time.Duration     `mapstructure:"timeout"`
	MercadoPago     MercadoPagoConfig `mapstructure:"mercadopago"`
	Stripe          StripeConfig      `mapstructure:"stripe"`
}

type MercadoPagoConfig struct {
	BaseURL         string `mapstructure:"base_url"`
	AccessToken     string `mapstructure:"access_token"`
	NotificationURL string `mapstructure:"notification_url"`
	SuccessURL      string `mapstructure:"success_url"`
	FailureURL      string `mapstructure:"failure_url"`
}

type StripeConfig struct {
	SecretKey  string `mapstructure:"secret_key"`
	Currency   string `mapstructure:"currency"`
	SuccessURL string `mapstructure:"success_url"`
	CancelURL  string `mapstructure:"cancel_url"`
	// APIBase overrides https://api.stripe.com, e.g. for stripe-mock.
	APIBase string `mapstructure:"api_base"`
}

type WebhookConfig struct {
	MercadoPagoSecret string                  `mapstructure:"mercadopago_secret"`
	StripeSecret      string                  `mapstructure:"stripe_secret"`
	DedupTTL          time.Duration           `mapstructure:"dedup_ttl"`
	RateLimit         int                     `mapstructure:"rate_limit"`
	RateWindow        time.Duration           `mapstructure:"rate_window"`
	Parsers           map[string]ParserConfig `mapstructure:"parsers"`
}

// ParserConfig lists dotted JSON paths used to pull identifiers out of a
// provider's notification body. ChargeIDQuery names a query key that must
// carry the charge reference instead.
type ParserConfig struct {
	EventIDPath   string `mapstructure:"event_id_path"`
	ChargeIDPath  string `mapstructure:"charge_id_path"`
	StatusPath    string `mapstructure:"status_path"`
	ChargeIDQuery string `mapstructure:"charge_id_query"`
}

type ReconcileConfig struct {
	MinAge    time.Duration `mapstructure:"min_age"`
	BatchSize int           `mapstructure:"batch_size"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: BILL_.
// Nested keys use underscore: BILL_DATABASE_HOST, BILL_PRICING_REPORT_FEE, etc.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("BILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if _, _, err := cfg.Pricing.Amounts(); err != nil {
		return nil, err
	}
	cfg.v = v

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "inspection_billing")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "inspection-service")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("pricing.report_fee", "10.00")
	v.SetDefault("pricing.price_per_unit", "20.00")
	v.SetDefault("gateway.default_provider", string(domain.ProviderMercadoPago))
	v.SetDefault("gateway.timeout", "10s")
	v.SetDefault("gateway.mercadopago.base_url", "https://api.mercadopago.com")
	v.SetDefault("gateway.stripe.currency", "brl")
	v.SetDefault("webhook.dedup_ttl", "24h")
	v.SetDefault("webhook.rate_limit", 120)
	v.SetDefault("webhook.rate_window", "1m")
	v.SetDefault("webhook.parsers.mercadopago.event_id_path", "id")
	v.SetDefault("webhook.parsers.mercadopago.charge_id_path", "data.id")
	v.SetDefault("webhook.parsers.mercadopago.status_path", "status")
	v.SetDefault("webhook.parsers.mercadopago.charge_id_query", "data.id")
	v.SetDefault("webhook.parsers.stripe.event_id_path", "id")
	v.SetDefault("webhook.parsers.stripe.charge_id_path", "data.object.id")
	v.SetDefault("webhook.parsers.stripe.status_path", "type")
	v.SetDefault("reconcile.min_age", "15m")
	v.SetDefault("reconcile.batch_size", 50)
}

// WatchPricing re-reads the pricing section whenever the config file changes
// and hands the new values to onChange. Invalid prices are reported to onError
// and the previous table stays in effect.
func (c *Config) WatchPricing(onChange func(PricingConfig), onError func(error)) {
	if c.v == nil || c.v.ConfigFileUsed() == "" {
		return
	}
	c.v.OnConfigChange(func(fsnotify.Event) {
		next := PricingConfig{
			ReportFee:    c.v.GetString("pricing.report_fee"),
			PricePerUnit: c.v.GetString("pricing.price_per_unit"),
		}
		if _, _, err := next.Amounts(); err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		onChange(next)
	})
	c.v.WatchConfig()
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "SKYBURST"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App      AppConfig
	Redis    RedisConfig
	Helcim   HelcimConfig
	CartAPI  CartAPIConfig
	Orders   OrdersAPIConfig
	Checkout CheckoutConfig
	CORS     CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SKYBURST_APP_ENV" required:"true"`
	Port         string `envconfig:"SKYBURST_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"SKYBURST_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SKYBURST_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"SKYBURST_REDIS_URL" required:"true"`
	Address      string        `envconfig:"SKYBURST_REDIS_ADDR"`
	Password     string        `envconfig:"SKYBURST_REDIS_PASSWORD"`
	DB           int           `envconfig:"SKYBURST_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SKYBURST_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SKYBURST_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SKYBURST_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SKYBURST_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SKYBURST_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type HelcimConfig struct {
	APIToken string        `envconfig:"SKYBURST_HELCIM_API_TOKEN" required:"true"`
	Env      string        `envconfig:"SKYBURST_HELCIM_ENV" default:"test"`
	BaseURL  string        `envconfig:"SKYBURST_HELCIM_BASE_URL"`
	Timeout  time.Duration `envconfig:"SKYBURST_HELCIM_TIMEOUT" default:"15s"`
}

// Environment returns the normalized Helcim environment (test/live).
func (h HelcimConfig) Environment() string {
	env := strings.TrimSpace(strings.ToLower(h.Env))
	if env == "" {
		return "test"
	}
	return env
}

type CartAPIConfig struct {
	BaseURL string        `envconfig:"SKYBURST_CART_API_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"SKYBURST_CART_API_TIMEOUT" default:"10s"`
}

type OrdersAPIConfig struct {
	BaseURL string        `envconfig:"SKYBURST_ORDERS_API_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"SKYBURST_ORDERS_API_TIMEOUT" default:"15s"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"SKYBURST_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type CheckoutConfig struct {
	PaymentTimeout     time.Duration `envconfig:"SKYBURST_CHECKOUT_PAYMENT_TIMEOUT" default:"5m"`
	WidgetPollInterval time.Duration `envconfig:"SKYBURST_CHECKOUT_WIDGET_POLL_INTERVAL" default:"500ms"`
	ResumeGrace        time.Duration `envconfig:"SKYBURST_CHECKOUT_RESUME_GRACE" default:"1s"`
	WidgetPresenceTTL  time.Duration `envconfig:"SKYBURST_CHECKOUT_WIDGET_PRESENCE_TTL" default:"3s"`
	SettleWindow       time.Duration `envconfig:"SKYBURST_CART_SETTLE_WINDOW" default:"1s"`
}

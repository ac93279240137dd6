package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Redis    RedisConfig
	JWT      JWTConfig
	CORS     CORSConfig
	Checkout CheckoutConfig
	Cart     CartConfig
	Payment  PaymentConfig
	Orders   OrdersAPIConfig
	Profile  ProfileAPIConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BLOOMCART_APP_ENV" required:"true"`
	Port         string `envconfig:"BLOOMCART_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"BLOOMCART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BLOOMCART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type RedisConfig struct {
	URL          string        `envconfig:"BLOOMCART_REDIS_URL" required:"true"`
	Address      string        `envconfig:"BLOOMCART_REDIS_ADDR"`
	Password     string        `envconfig:"BLOOMCART_REDIS_PASSWORD"`
	DB           int           `envconfig:"BLOOMCART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BLOOMCART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BLOOMCART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BLOOMCART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BLOOMCART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BLOOMCART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"BLOOMCART_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"BLOOMCART_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"BLOOMCART_JWT_EXPIRATION_MINUTES" default:"60"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"BLOOMCART_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type CheckoutConfig struct {
	SessionTTL       time.Duration `envconfig:"BLOOMCART_CHECKOUT_SESSION_TTL" default:"30m"`
	DeliveryLeadDays int           `envconfig:"BLOOMCART_CHECKOUT_DELIVERY_LEAD_DAYS" default:"7"`
}

// CartConfig keeps monetary knobs as strings; internal/cart parses them into
// decimals once at startup.
type CartConfig struct {
	TaxRate               string        `envconfig:"BLOOMCART_CART_TAX_RATE" default:"0.08"`
	FreeShippingThreshold string        `envconfig:"BLOOMCART_CART_FREE_SHIPPING_THRESHOLD" default:"100"`
	StandardRate          string        `envconfig:"BLOOMCART_CART_SHIPPING_STANDARD_RATE" default:"5.99"`
	ExpressRate           string        `envconfig:"BLOOMCART_CART_SHIPPING_EXPRESS_RATE" default:"12.99"`
	OvernightRate         string        `envconfig:"BLOOMCART_CART_SHIPPING_OVERNIGHT_RATE" default:"24.99"`
	TTL                   time.Duration `envconfig:"BLOOMCART_CART_TTL" default:"720h"`
}

type PaymentConfig struct {
	Latency     time.Duration `envconfig:"BLOOMCART_PAYMENT_SIM_LATENCY" default:"750ms"`
	DeclineCard string        `envconfig:"BLOOMCART_PAYMENT_SIM_DECLINE_CARD" default:"4000000000000002"`
	Currency    string        `envconfig:"BLOOMCART_PAYMENT_CURRENCY" default:"USD"`
}

type OrdersAPIConfig struct {
	BaseURL string        `envconfig:"BLOOMCART_ORDERS_API_BASE_URL" required:"true"`
	Timeout time.Duration `envconfig:"BLOOMCART_ORDERS_API_TIMEOUT" default:"10s"`
}

type ProfileAPIConfig struct {
	BaseURL string        `envconfig:"BLOOMCART_PROFILE_API_BASE_URL"`
	Timeout time.Duration `envconfig:"BLOOMCART_PROFILE_API_TIMEOUT" default:"5s"`
}

// AccessTokenTTL returns the configured access token lifetime.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

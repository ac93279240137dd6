package config

const (
	EnvPrefix = "BLOOMCART"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv        = "BLOOMCART_APP_ENV"
	EnvPort          = "BLOOMCART_APP_PORT"
	EnvRedisURL      = "BLOOMCART_REDIS_URL"
	EnvJWTSecret     = "BLOOMCART_JWT_SECRET"
	EnvJWTIssuer     = "BLOOMCART_JWT_ISSUER"
	EnvOrdersBaseURL = "BLOOMCART_ORDERS_API_BASE_URL"
)

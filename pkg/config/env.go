package config

// EnvPrefix scopes every environment variable the service reads.
const EnvPrefix = "LEDGERLINE"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv     = "LEDGERLINE_APP_ENV"
	EnvPort       = "LEDGERLINE_APP_PORT"
	EnvLogLevel   = "LEDGERLINE_LOG_LEVEL"
	EnvJWTSecret  = "LEDGERLINE_JWT_SECRET"
	EnvJWTIssuer  = "LEDGERLINE_JWT_ISSUER"
	EnvJWTExpMins = "LEDGERLINE_JWT_EXPIRATION_MINUTES"
)

package config

const (
	defaultServerPort   = 8080
	defaultDatabasePort = 5432

	defaultPoolMaxConns = 10
	defaultPoolMinConns = 2

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":  "info",
		"log.format": "json",

		"database.host":                   "localhost",
		"database.port":                   defaultDatabasePort,
		"database.user":                   "postgres",
		"database.password":               "",
		"database.name":                   "todos",
		"database.ssl_mode":               "disable",
		"database.max_conns":              defaultPoolMaxConns,
		"database.min_conns":              defaultPoolMinConns,
		"database.connect_timeout":        "5s",
		"database.connect_retry_interval": "5s",

		"metadata.base_url":                        "http://169.254.169.254",
		"metadata.timeout":                         "2s",
		"metadata.retry.max_attempts":              defaultRetryMaxAttempts,
		"metadata.retry.initial_interval":          "100ms",
		"metadata.retry.max_interval":              "1s",
		"metadata.retry.multiplier":                defaultRetryMultiplier,
		"metadata.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"metadata.circuit_breaker.timeout":         "30s",
		"metadata.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"metadata.rate_limit.requests_per_second":  0,
		"metadata.rate_limit.burst_size":           0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-api",
	}
}

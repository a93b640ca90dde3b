// Package config provides application configuration through environment variables.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// ServerHost is the host address the server will bind to.
	ServerHost string
	// ServerPort is the port number the server will listen on.
	ServerPort int
	// ServerShutdownTimeout bounds the graceful shutdown of the servers.
	ServerShutdownTimeout time.Duration

	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// UpstreamBaseURL is the base URL of the vehicle valuation API.
	UpstreamBaseURL string
	// UpstreamTimeout bounds every call to the upstream API.
	UpstreamTimeout time.Duration
	// UpstreamUserAgent is sent as User-Agent on every upstream call.
	UpstreamUserAgent string

	// IdentityAuthorityURL is the identity provider host, without tenant.
	IdentityAuthorityURL string
	// IdentityTenantID is the identity provider tenant.
	IdentityTenantID string
	// IdentityClientID is the OAuth2 client id used for the client-credentials grant.
	IdentityClientID string
	// IdentityClientSecret is the OAuth2 client secret. Ciphertext when SecretsKeeperURI is set.
	IdentityClientSecret string
	// IdentityScope is the scope requested for upstream access tokens.
	IdentityScope string
	// IdentityTimeout bounds every call to the token endpoint.
	IdentityTimeout time.Duration
	// TokenSafetyMargin is subtracted from expires_in before caching a token.
	TokenSafetyMargin time.Duration

	// SecretsKeeperURI is an optional gocloud.dev secrets keeper used to decrypt IdentityClientSecret.
	SecretsKeeperURI string

	// JWTSecretKey is the symmetric key used to sign gateway tokens.
	JWTSecretKey string
	// JWTIssuer is the iss claim of gateway tokens.
	JWTIssuer string
	// JWTAudience is the aud claim of gateway tokens.
	JWTAudience string
	// JWTExpiration is the lifetime of gateway tokens.
	JWTExpiration time.Duration

	// LoginUsername restricts login to a single configured user when set.
	LoginUsername string
	// LoginPasswordHash is the argon2id hash of the configured user's password.
	LoginPasswordHash string

	// ImageAllowedHosts is a comma-separated allowlist for the image proxy ("cdn.example.com",
	// "*.example.com"). Empty allows any public host.
	ImageAllowedHosts string
	// ImageAllowPrivateNetworks lets the image proxy reach loopback, private and link-local addresses.
	ImageAllowPrivateNetworks bool

	// FallbackDataEnabled substitutes fixture payloads when an upstream call fails.
	FallbackDataEnabled bool

	// RateLimitEnabled indicates whether rate limiting for API endpoints is enabled.
	RateLimitEnabled bool
	// RateLimitRequestsPerSec is the number of requests allowed per second per caller.
	RateLimitRequestsPerSec float64
	// RateLimitBurst is the burst size for API rate limiting.
	RateLimitBurst int

	// RateLimitLoginEnabled indicates whether rate limiting for the login endpoint is enabled.
	RateLimitLoginEnabled bool
	// RateLimitLoginRequestsPerSec is the number of login requests allowed per second per IP.
	RateLimitLoginRequestsPerSec float64
	// RateLimitLoginBurst is the burst size for login rate limiting.
	RateLimitLoginBurst int

	// CORSEnabled indicates whether CORS is enabled.
	CORSEnabled bool
	// CORSAllowOrigins is a comma-separated list of allowed origins for CORS.
	CORSAllowOrigins string

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsPort is the port number for the metrics server.
	MetricsPort int
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Server configuration
		ServerHost:            env.GetString("SERVER_HOST", "0.0.0.0"),
		ServerPort:            env.GetInt("SERVER_PORT", 8080),
		ServerShutdownTimeout: env.GetDuration("SERVER_SHUTDOWN_TIMEOUT_SECONDS", 30, time.Second),

		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Upstream API
		UpstreamBaseURL:   env.GetString("UPSTREAM_BASE_URL", "https://www.webuyanycarusa.com/api"),
		UpstreamTimeout:   env.GetDuration("UPSTREAM_TIMEOUT_SECONDS", 30, time.Second),
		UpstreamUserAgent: env.GetString("UPSTREAM_USER_AGENT", "vehiclebff/1.0"),

		// Identity provider (client-credentials)
		IdentityAuthorityURL: env.GetString("IDENTITY_AUTHORITY_URL", "https://login.microsoftonline.com"),
		IdentityTenantID:     env.GetString("IDENTITY_TENANT_ID", ""),
		IdentityClientID:     env.GetString("IDENTITY_CLIENT_ID", ""),
		IdentityClientSecret: env.GetString("IDENTITY_CLIENT_SECRET", ""),
		IdentityScope:        env.GetString("IDENTITY_SCOPE", ""),
		IdentityTimeout:      env.GetDuration("IDENTITY_TIMEOUT_SECONDS", 30, time.Second),
		TokenSafetyMargin:    env.GetDuration("TOKEN_SAFETY_MARGIN_SECONDS", 300, time.Second),

		SecretsKeeperURI: env.GetString("SECRETS_KEEPER_URI", ""),

		// Gateway JWT
		JWTSecretKey:  env.GetString("JWT_SECRET_KEY", ""),
		JWTIssuer:     env.GetString("JWT_ISSUER", "vehiclebff"),
		JWTAudience:   env.GetString("JWT_AUDIENCE", "vehiclebff-users"),
		JWTExpiration: env.GetDuration("JWT_EXPIRATION_MINUTES", 60, time.Minute),

		LoginUsername:     env.GetString("LOGIN_USERNAME", ""),
		LoginPasswordHash: env.GetString("LOGIN_PASSWORD_HASH", ""),

		ImageAllowedHosts:         env.GetString("IMAGE_ALLOWED_HOSTS", ""),
		ImageAllowPrivateNetworks: env.GetBool("IMAGE_ALLOW_PRIVATE_NETWORKS", false),

		FallbackDataEnabled: env.GetBool("FALLBACK_DATA_ENABLED", false),

		// Rate Limiting (API endpoints)
		RateLimitEnabled:        env.GetBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequestsPerSec: env.GetFloat64("RATE_LIMIT_REQUESTS_PER_SEC", 10.0),
		RateLimitBurst:          env.GetInt("RATE_LIMIT_BURST", 20),

		// Rate Limiting for the login endpoint (IP-based, unauthenticated)
		RateLimitLoginEnabled:        env.GetBool("RATE_LIMIT_LOGIN_ENABLED", true),
		RateLimitLoginRequestsPerSec: env.GetFloat64("RATE_LIMIT_LOGIN_REQUESTS_PER_SEC", 1.0),
		RateLimitLoginBurst:          env.GetInt("RATE_LIMIT_LOGIN_BURST", 5),

		// CORS
		CORSEnabled:      env.GetBool("CORS_ENABLED", true),
		CORSAllowOrigins: env.GetString("CORS_ALLOW_ORIGINS", "http://localhost:3000,https://localhost:3000"),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", true),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "vehiclebff"),
		MetricsPort:      env.GetInt("METRICS_PORT", 8081),
	}
}

// ImageAllowedHostList splits ImageAllowedHosts, dropping blanks.
func (c *Config) ImageAllowedHostList() []string {
	var hosts []string
	for part := range strings.SplitSeq(c.ImageAllowedHosts, ",") {
		if host := strings.TrimSpace(part); host != "" {
			hosts = append(hosts, host)
		}
	}
	return hosts
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	var errs []error

	if c.JWTSecretKey == "" {
		errs = append(errs, errors.New("JWT_SECRET_KEY is required"))
	}
	if c.UpstreamBaseURL == "" {
		errs = append(errs, errors.New("UPSTREAM_BASE_URL is required"))
	}
	if err := c.ValidateIdentity(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// ValidateIdentity checks the identity provider settings needed for the token exchange.
func (c *Config) ValidateIdentity() error {
	var missing []string
	if c.IdentityTenantID == "" {
		missing = append(missing, "IDENTITY_TENANT_ID")
	}
	if c.IdentityClientID == "" {
		missing = append(missing, "IDENTITY_CLIENT_ID")
	}
	if c.IdentityClientSecret == "" {
		missing = append(missing, "IDENTITY_CLIENT_SECRET")
	}
	if c.IdentityScope == "" {
		missing = append(missing, "IDENTITY_SCOPE")
	}
	if len(missing) > 0 {
		return errors.New("missing identity configuration: " + strings.Join(missing, ", "))
	}
	return nil
}

// GetGinMode returns the appropriate Gin mode based on log level.
func (c *Config) GetGinMode() string {
	switch c.LogLevel {
	case "debug":
		return "debug"
	default:
		return "release"
	}
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}

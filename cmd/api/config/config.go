package config

import "time"

// Config holds application configuration.
type Config struct {
	DatabaseURL    string `env:"DATABASE_URL,required"`
	MigrateOnStart bool   `env:"MIGRATE_ON_START" envDefault:"false"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`

	HTTP       HTTP
	RabbitMQ   RabbitMQ
	Redis      Redis
	Auth       Auth
	Matching   Matching
	Screenshot Screenshot
}

// HTTP holds HTTP server configuration.
type HTTP struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// RabbitMQ holds RabbitMQ configuration. Url matching commands are disabled when URL is empty.
type RabbitMQ struct {
	URL               string `env:"RABBITMQ_URL"`
	Exchange          string `env:"RABBITMQ_EXCHANGE" envDefault:"shelf-analytics-ex"`
	CommandRoutingKey string `env:"RABBITMQ_COMMAND_ROUTING_KEY" envDefault:"url-matching.commands"`
	ResultsQueue      string `env:"RABBITMQ_RESULTS_QUEUE" envDefault:"url-matching.results"`
}

// Redis holds cache configuration. In-memory cache is used when URL is empty.
type Redis struct {
	URL    string `env:"REDIS_URL"`
	Prefix string `env:"REDIS_PREFIX" envDefault:"shelf-analytics:"`
}

// Auth holds authentication configuration.
type Auth struct {
	Issuer           string `env:"AUTH_ISSUER,required"`
	Audience         string `env:"AUTH_AUDIENCE,required"`
	APIKeySecretSalt string `env:"API_KEY_SECRET_SALT,required"`
}

// Matching holds matching configuration.
type Matching struct {
	MinCandidates int `env:"MATCHING_MIN_CANDIDATES" envDefault:"2"`
}

// Screenshot holds screenshot storage configuration.
type Screenshot struct {
	BaseURL     string        `env:"SCREENSHOT_BASE_URL"`
	Concurrency int           `env:"SCREENSHOT_CONCURRENCY" envDefault:"100"`
	Timeout     time.Duration `env:"SCREENSHOT_TIMEOUT" envDefault:"5s"`
}

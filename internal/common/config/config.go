// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig               `mapstructure:"app"`
	Camunda       CamundaConfig           `mapstructure:"camunda"`
	Database      DatabaseConfig          `mapstructure:"database"`
	Synthesis     SynthesisConfig         `mapstructure:"synthesis"`
	Workers       map[string]WorkerConfig `mapstructure:"workers"`
	Notifications NotificationConfig      `mapstructure:"notifications"`
	Logging       LoggingConfig           `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type CamundaConfig struct {
	BrokerAddress  string `mapstructure:"broker_address"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Redis         RedisConfig         `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type ElasticsearchConfig struct {
	Addresses  []string `mapstructure:"addresses"`
	Username   string   `mapstructure:"username"`
	Password   string   `mapstructure:"password"`
	SSLEnabled bool     `mapstructure:"ssl_enabled"`
	AgentIndex string   `mapstructure:"agent_index"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// WorkerConfig holds the core settings applicable to every worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"`     // milliseconds
	MaxRetries    int  `mapstructure:"max_retries"` // For error handling
}

// --- Synthesis Configuration ---

// SynthesisConfig holds the tunables the configuration factory bakes into
// generated drafts. Values here change defaults, never per-call behavior.
type SynthesisConfig struct {
	Voice         VoiceBoundsConfig   `mapstructure:"voice"`
	Escalation    EscalationConfig    `mapstructure:"escalation"`
	BusinessHours BusinessHoursConfig `mapstructure:"business_hours"`
	Webhook       WebhookRetryConfig  `mapstructure:"webhook"`
}

// VoiceBoundsConfig bounds speed/pitch for voice tuning. Adjustments outside
// the range are clamped, never rejected.
type VoiceBoundsConfig struct {
	MinSpeed float64 `mapstructure:"min_speed"`
	MaxSpeed float64 `mapstructure:"max_speed"`
	MinPitch float64 `mapstructure:"min_pitch"`
	MaxPitch float64 `mapstructure:"max_pitch"`
}

type EscalationConfig struct {
	NegativeSentimentBound float64 `mapstructure:"negative_sentiment_bound"`
	CallDurationCeiling    int     `mapstructure:"call_duration_ceiling"` // seconds
}

type BusinessHoursConfig struct {
	Timezone  string `mapstructure:"timezone"`
	OpenTime  string `mapstructure:"open_time"`
	CloseTime string `mapstructure:"close_time"`
}

type WebhookRetryConfig struct {
	MaxAttempts     int    `mapstructure:"max_attempts"`
	BackoffStrategy string `mapstructure:"backoff_strategy"`
	InitialDelay    int    `mapstructure:"initial_delay"` // milliseconds
	MaxDelay        int    `mapstructure:"max_delay"`     // milliseconds
}

// --- Notification Configuration ---

// NotificationConfig holds settings for the agent-notify worker.
type NotificationConfig struct {
	Email struct {
		Enabled   bool   `mapstructure:"enabled"`
		FromEmail string `mapstructure:"from_email"`
	} `mapstructure:"email"`
	SMS struct {
		Enabled            bool   `mapstructure:"enabled"`
		DefaultSMSSenderID string `mapstructure:"default_sms_sender_id"`
	} `mapstructure:"sms"`
	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

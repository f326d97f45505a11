// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	// Base config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like DATABASE_POSTGRES_PASSWORD
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment overlay, e.g. config.production.yaml
	envConfigFile := fmt.Sprintf("config.%s", env)
	viper.SetConfigName(envConfigFile)
	_ = viper.MergeInConfig() // ignore error if not found

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func loadEnvFile() {
	// Try multiple paths (for running from different directories)
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		val := v.Get(key)

		if strVal, ok := val.(string); ok {
			if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
				expanded := os.ExpandEnv(strVal)
				if expanded != strVal && expanded != "" {
					v.Set(key, expanded)
				}
			}
		}
	}
}

// ApplyDefaults fills zero values with usable defaults so a bare config file
// still produces complete drafts.
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "voiceagent-workers"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.Camunda.BrokerAddress == "" {
		cfg.Camunda.BrokerAddress = "localhost:26500"
	}
	if cfg.Camunda.MaxJobsActive == 0 {
		cfg.Camunda.MaxJobsActive = 10
	}
	if cfg.Database.Elasticsearch.AgentIndex == "" {
		cfg.Database.Elasticsearch.AgentIndex = "agent-drafts"
	}

	applySynthesisDefaults(&cfg.Synthesis)

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

func applySynthesisDefaults(s *SynthesisConfig) {
	if s.Voice.MinSpeed == 0 {
		s.Voice.MinSpeed = 0.5
	}
	if s.Voice.MaxSpeed == 0 {
		s.Voice.MaxSpeed = 2.0
	}
	if s.Voice.MinPitch == 0 {
		s.Voice.MinPitch = 0.5
	}
	if s.Voice.MaxPitch == 0 {
		s.Voice.MaxPitch = 2.0
	}
	if s.Escalation.NegativeSentimentBound == 0 {
		s.Escalation.NegativeSentimentBound = -0.7
	}
	if s.Escalation.CallDurationCeiling == 0 {
		s.Escalation.CallDurationCeiling = 600
	}
	if s.BusinessHours.Timezone == "" {
		s.BusinessHours.Timezone = "America/New_York"
	}
	if s.BusinessHours.OpenTime == "" {
		s.BusinessHours.OpenTime = "09:00"
	}
	if s.BusinessHours.CloseTime == "" {
		s.BusinessHours.CloseTime = "17:00"
	}
	if s.Webhook.MaxAttempts == 0 {
		s.Webhook.MaxAttempts = 3
	}
	if s.Webhook.BackoffStrategy == "" {
		s.Webhook.BackoffStrategy = "exponential"
	}
	if s.Webhook.InitialDelay == 0 {
		s.Webhook.InitialDelay = 1000
	}
	if s.Webhook.MaxDelay == 0 {
		s.Webhook.MaxDelay = 30000
	}
}

// DefaultSynthesis returns the synthesis tunables with all defaults applied,
// for callers (tests, tools) that skip the file-based loader.
func DefaultSynthesis() SynthesisConfig {
	var s SynthesisConfig
	applySynthesisDefaults(&s)
	return s
}

func validateConfig(cfg *Config) error {
	if cfg.Camunda.BrokerAddress == "" {
		return fmt.Errorf("camunda.broker_address is required")
	}
	if cfg.Synthesis.Voice.MinSpeed >= cfg.Synthesis.Voice.MaxSpeed {
		return fmt.Errorf("synthesis.voice speed bounds are inverted")
	}
	if cfg.Synthesis.Voice.MinPitch >= cfg.Synthesis.Voice.MaxPitch {
		return fmt.Errorf("synthesis.voice pitch bounds are inverted")
	}
	if cfg.Synthesis.Escalation.NegativeSentimentBound > 0 {
		return fmt.Errorf("synthesis.escalation.negative_sentiment_bound must be negative")
	}
	return nil
}

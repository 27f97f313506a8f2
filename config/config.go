package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultLinePushAPIURL is the production LINE push endpoint. Overridable via
// LINE_PUSH_API_URL for tests and staging.
const DefaultLinePushAPIURL = "https://api.line.me/v2/bot/message/push"

type LineConfig struct {
	ChannelSecret      string
	ChannelAccessToken string
	PushAPIURL         string
	NotifyUserIDs      []string
	NotifyGroupIDs     []string
}

// IsConfigured returns true if all required LINE configuration is present
func (c LineConfig) IsConfigured() bool {
	return c.ChannelSecret != "" &&
		c.ChannelAccessToken != ""
	// Note: NotifyUserIDs and NotifyGroupIDs are optional
}

// NotifyRecipients returns the union of configured user and group recipient
// ids, users first. Order carries no delivery guarantee.
func (c LineConfig) NotifyRecipients() []string {
	recipients := make([]string, 0, len(c.NotifyUserIDs)+len(c.NotifyGroupIDs))
	recipients = append(recipients, c.NotifyUserIDs...)
	recipients = append(recipients, c.NotifyGroupIDs...)
	return recipients
}

type AppConfig struct {
	// Core configuration (always required)
	DatabaseURL        string
	DatabaseSchema     string
	Port               string // Optional with default "8080"
	CORSAllowedOrigins string // Optional with default "*"
	Environment        string
	InternalAPIKey     string // Guards the app-facing notification endpoint
	OpsAlertWebhookURL string
	UseStrictConfig    bool // If true, error when the LINE integration is not fully configured

	LineConfig LineConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	// Core required configuration
	databaseURL, err := getEnvRequired("DB_URL")
	if err != nil {
		return nil, err
	}

	databaseSchema, err := getEnvRequired("DB_SCHEMA")
	if err != nil {
		return nil, err
	}

	internalAPIKey, err := getEnvRequired("INTERNAL_API_KEY")
	if err != nil {
		return nil, err
	}

	config := &AppConfig{
		// Core configuration
		DatabaseURL:        databaseURL,
		DatabaseSchema:     databaseSchema,
		Port:               getEnvWithDefault("PORT", "8080"),
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),
		Environment:        getEnvWithDefault("ENVIRONMENT", "dev"),
		InternalAPIKey:     internalAPIKey,
		OpsAlertWebhookURL: getEnvWithDefault("OPS_ALERT_WEBHOOK_URL", ""),
		UseStrictConfig:    getEnvWithDefault("USE_STRICT_CONFIG", "true") == "true",

		// LINE configuration (optional unless strict)
		LineConfig: LineConfig{
			ChannelSecret:      os.Getenv("LINE_CHANNEL_SECRET"),
			ChannelAccessToken: os.Getenv("LINE_CHANNEL_ACCESS_TOKEN"),
			PushAPIURL:         getEnvWithDefault("LINE_PUSH_API_URL", DefaultLinePushAPIURL),
			NotifyUserIDs:      splitIDList(os.Getenv("LINE_NOTIFY_USER_IDS")),
			NotifyGroupIDs:     splitIDList(os.Getenv("LINE_NOTIFY_GROUP_IDS")),
		},
	}

	if config.LineConfig.IsConfigured() {
		log.Printf("✅ LINE integration configured (%d user recipients, %d group recipients)",
			len(config.LineConfig.NotifyUserIDs), len(config.LineConfig.NotifyGroupIDs))
	} else {
		log.Printf("⚠️ LINE integration not configured - webhook and broadcasts will be disabled")
		if config.UseStrictConfig {
			return nil, fmt.Errorf("LINE integration is not fully configured (USE_STRICT_CONFIG=true)")
		}
	}

	return config, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitIDList parses a comma-separated id list, dropping empty entries so a
// trailing comma in the env var does not produce a phantom recipient.
func splitIDList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	var ids []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}

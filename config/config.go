// Package config handles loading and validation of application configuration
// from environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/enecpp/financial-news-analyzer/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Known placeholder values shipped in example secrets files. Credentials
// matching any of these are treated as unconfigured, never sent anywhere.
var placeholderValues = map[string]bool{
	"":                       true,
	"your-token-here":        true,
	"your-actual-project-id": true,
	"your-private-key":       true,
	"your-service-account":   true,
	"your-spreadsheet-id":    true,
	"changeme":               true,
}

// IsPlaceholder reports whether a credential value is absent or a known
// example placeholder.
func IsPlaceholder(v string) bool {
	return placeholderValues[strings.TrimSpace(v)]
}

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT"`
	Port           string      `mapstructure:"PORT"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS"`
	Version        string      `mapstructure:"VERSION"`
}

// GitHubConfig holds the issue-tracker backend settings. The backend is
// attempted only when all three fields carry real values.
type GitHubConfig struct {
	Token          string `mapstructure:"TOKEN"`
	RepoOwner      string `mapstructure:"REPO_OWNER"`
	RepoName       string `mapstructure:"REPO_NAME"`
	APIBaseURL     string `mapstructure:"API_BASE_URL"`
	TimeoutSeconds int    `mapstructure:"TIMEOUT_SECONDS"`
}

// IsConfigured reports whether the issue-tracker backend should be attempted.
func (c *GitHubConfig) IsConfigured() bool {
	return !IsPlaceholder(c.Token) && !IsPlaceholder(c.RepoOwner) && !IsPlaceholder(c.RepoName)
}

// SheetsConfig holds the spreadsheet backend settings. The service-account
// key is assembled from the individual fields rather than read from a key
// file, matching how the deployment platform exposes secrets.
type SheetsConfig struct {
	SpreadsheetID  string `mapstructure:"SPREADSHEET_ID"`
	WorksheetName  string `mapstructure:"WORKSHEET_NAME"`
	TimeoutSeconds int    `mapstructure:"TIMEOUT_SECONDS"`

	Type         string `mapstructure:"SA_TYPE"`
	ProjectID    string `mapstructure:"SA_PROJECT_ID"`
	PrivateKeyID string `mapstructure:"SA_PRIVATE_KEY_ID"`
	PrivateKey   string `mapstructure:"SA_PRIVATE_KEY"`
	ClientEmail  string `mapstructure:"SA_CLIENT_EMAIL"`
	ClientID     string `mapstructure:"SA_CLIENT_ID"`
	AuthURI      string `mapstructure:"SA_AUTH_URI"`
	TokenURI     string `mapstructure:"SA_TOKEN_URI"`
}

// IsConfigured reports whether the spreadsheet backend should be attempted.
// Every required service-account field must be present and none may be a
// placeholder.
func (c *SheetsConfig) IsConfigured() bool {
	required := []string{
		c.SpreadsheetID,
		c.ProjectID,
		c.PrivateKeyID,
		c.PrivateKey,
		c.ClientEmail,
	}
	for _, v := range required {
		if IsPlaceholder(v) {
			return false
		}
	}
	return true
}

// EmailConfig holds the optional email backend settings (Resend API).
type EmailConfig struct {
	Enabled        bool   `mapstructure:"ENABLED"`
	ResendAPIKey   string `mapstructure:"RESEND_API_KEY"`
	FromAddress    string `mapstructure:"FROM_ADDRESS"`
	FromName       string `mapstructure:"FROM_NAME"`
	ToAddress      string `mapstructure:"TO_ADDRESS"`
	TimeoutSeconds int    `mapstructure:"TIMEOUT_SECONDS"`
}

// IsConfigured reports whether the email backend should be attempted.
func (c *EmailConfig) IsConfigured() bool {
	return c.Enabled && !IsPlaceholder(c.ResendAPIKey) && !IsPlaceholder(c.ToAddress)
}

// CSVConfig holds the local file backend settings. This backend needs no
// credentials and is always available.
type CSVConfig struct {
	BaseDir  string `mapstructure:"BASE_DIR"`
	Filename string `mapstructure:"FILENAME"`
}

// FeedbackConfig aggregates all feedback backend settings.
type FeedbackConfig struct {
	GitHub GitHubConfig `mapstructure:"GITHUB"`
	Sheets SheetsConfig `mapstructure:"SHEETS"`
	Email  EmailConfig  `mapstructure:"EMAIL"`
	CSV    CSVConfig    `mapstructure:"CSV"`
}

// DemoDataConfig controls the procedural news/market generators.
type DemoDataConfig struct {
	NewsLimit int `mapstructure:"NEWS_LIMIT"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server   ServerConfig   `mapstructure:"SERVER"`
	Feedback FeedbackConfig `mapstructure:"FEEDBACK"`
	DemoData DemoDataConfig `mapstructure:"DEMO_DATA"`
}

// IsDevelopment returns true when running in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true when running in the production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig loads configuration from environment variables using Viper,
// sets defaults, unmarshals the configuration, and validates it.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.VERSION", "dev")
	v.SetDefault("FEEDBACK.GITHUB.API_BASE_URL", "https://api.github.com")
	v.SetDefault("FEEDBACK.GITHUB.TIMEOUT_SECONDS", 10)
	v.SetDefault("FEEDBACK.SHEETS.WORKSHEET_NAME", "Feedback")
	v.SetDefault("FEEDBACK.SHEETS.TIMEOUT_SECONDS", 30)
	v.SetDefault("FEEDBACK.SHEETS.SA_TYPE", "service_account")
	v.SetDefault("FEEDBACK.SHEETS.SA_AUTH_URI", "https://accounts.google.com/o/oauth2/auth")
	v.SetDefault("FEEDBACK.SHEETS.SA_TOKEN_URI", "https://oauth2.googleapis.com/token")
	v.SetDefault("FEEDBACK.EMAIL.ENABLED", false)
	v.SetDefault("FEEDBACK.EMAIL.TIMEOUT_SECONDS", 10)
	v.SetDefault("FEEDBACK.CSV.BASE_DIR", "data")
	v.SetDefault("FEEDBACK.CSV.FILENAME", "feedback.csv")
	v.SetDefault("DEMO_DATA.NEWS_LIMIT", 20)
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][2]string{
		{"SERVER.ENVIRONMENT", "SERVER_ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.VERSION", "VERSION"},
		{"FEEDBACK.GITHUB.TOKEN", "GITHUB_TOKEN"},
		{"FEEDBACK.GITHUB.REPO_OWNER", "GITHUB_REPO_OWNER"},
		{"FEEDBACK.GITHUB.REPO_NAME", "GITHUB_REPO_NAME"},
		{"FEEDBACK.GITHUB.API_BASE_URL", "GITHUB_API_BASE_URL"},
		{"FEEDBACK.SHEETS.SPREADSHEET_ID", "SPREADSHEET_ID"},
		{"FEEDBACK.SHEETS.WORKSHEET_NAME", "WORKSHEET_NAME"},
		{"FEEDBACK.SHEETS.SA_PROJECT_ID", "SHEETS_SA_PROJECT_ID"},
		{"FEEDBACK.SHEETS.SA_PRIVATE_KEY_ID", "SHEETS_SA_PRIVATE_KEY_ID"},
		{"FEEDBACK.SHEETS.SA_PRIVATE_KEY", "SHEETS_SA_PRIVATE_KEY"},
		{"FEEDBACK.SHEETS.SA_CLIENT_EMAIL", "SHEETS_SA_CLIENT_EMAIL"},
		{"FEEDBACK.SHEETS.SA_CLIENT_ID", "SHEETS_SA_CLIENT_ID"},
		{"FEEDBACK.SHEETS.TIMEOUT_SECONDS", "SHEETS_TIMEOUT_SECONDS"},
		{"FEEDBACK.EMAIL.ENABLED", "FEEDBACK_EMAIL_ENABLED"},
		{"FEEDBACK.EMAIL.RESEND_API_KEY", "RESEND_API_KEY"},
		{"FEEDBACK.EMAIL.FROM_ADDRESS", "FEEDBACK_EMAIL_FROM"},
		{"FEEDBACK.EMAIL.FROM_NAME", "FEEDBACK_EMAIL_FROM_NAME"},
		{"FEEDBACK.EMAIL.TO_ADDRESS", "FEEDBACK_EMAIL_TO"},
		{"FEEDBACK.EMAIL.TIMEOUT_SECONDS", "FEEDBACK_EMAIL_TIMEOUT_SECONDS"},
		{"FEEDBACK.CSV.BASE_DIR", "FEEDBACK_DATA_DIR"},
		{"FEEDBACK.CSV.FILENAME", "FEEDBACK_FILENAME"},
		{"DEMO_DATA.NEWS_LIMIT", "DEMO_NEWS_LIMIT"},
	}
	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	log.Infow("Configuration loaded",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
		"github_configured", cfg.Feedback.GitHub.IsConfigured(),
		"sheets_configured", cfg.Feedback.Sheets.IsConfigured(),
		"email_configured", cfg.Feedback.Email.IsConfigured(),
		"github_token", logger.MaskSensitiveString(cfg.Feedback.GitHub.Token, 4, 2),
	)

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port must not be empty")
	}
	if c.Feedback.CSV.BaseDir == "" {
		return fmt.Errorf("feedback CSV base directory must not be empty")
	}
	if c.Feedback.CSV.Filename == "" {
		return fmt.Errorf("feedback CSV filename must not be empty")
	}
	return nil
}

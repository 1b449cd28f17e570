package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Company  CompanyConfig  `mapstructure:"company"`
	Bank     BankConfig     `mapstructure:"bank"`
	Invoice  InvoiceConfig  `mapstructure:"invoice"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Path            string        `mapstructure:"path"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// CompanyConfig holds the sender details pre-filled into new drafts.
type CompanyConfig struct {
	Name    string `mapstructure:"name"`
	Address string `mapstructure:"address"`
	Email   string `mapstructure:"email"`
	Phone   string `mapstructure:"phone"`
	Website string `mapstructure:"website"`
	LogoURL string `mapstructure:"logo_url"`
}

// BankConfig holds the payment destination printed on invoices.
type BankConfig struct {
	Name          string `mapstructure:"name"`
	AccountNumber string `mapstructure:"account_number"`
}

// InvoiceConfig holds invoice defaults.
type InvoiceConfig struct {
	DefaultLateFee float64 `mapstructure:"default_late_fee"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// Load loads configuration from file and environment variables
func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	bindEnvVars()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)

	// Database defaults
	viper.SetDefault("database.path", "data/invoices.db")
	viper.SetDefault("database.max_open_conns", 25)
	viper.SetDefault("database.max_idle_conns", 5)
	viper.SetDefault("database.conn_max_lifetime", 5*time.Minute)

	// Invoice defaults
	viper.SetDefault("invoice.default_late_fee", 1.0)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.output_path", "stdout")
	viper.SetDefault("logger.format", "json")
}

// bindEnvVars binds environment variables to configuration
func bindEnvVars() {
	viper.BindEnv("database.path", "INVOICER_DB_PATH")
	viper.BindEnv("company.name", "COMPANY_NAME")
	viper.BindEnv("company.email", "COMPANY_EMAIL")
	viper.BindEnv("bank.name", "BANK_NAME")
	viper.BindEnv("bank.account_number", "BANK_ACCOUNT_NUMBER")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Company.Name == "" {
		return fmt.Errorf("company.name is required")
	}
	if c.Company.Email == "" {
		return fmt.Errorf("company.email is required")
	}
	if c.Bank.Name == "" {
		return fmt.Errorf("bank.name is required")
	}
	if c.Bank.AccountNumber == "" {
		return fmt.Errorf("bank.account_number is required")
	}
	return nil
}

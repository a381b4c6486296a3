package config

import (
	"fmt"
	"os"
	"strings"

	httpapi "github.com/jekabolt/resto-manager/internal/api/http"
	"github.com/jekabolt/resto-manager/internal/auth"
	"github.com/jekabolt/resto-manager/internal/mail"
	"github.com/jekabolt/resto-manager/internal/reportsched"
	"github.com/jekabolt/resto-manager/internal/store"
	"github.com/jekabolt/resto-manager/log"
	"github.com/spf13/viper"
)

// RecurringConfig holds how many periods past the next due date a recurring entry runs.
type RecurringConfig struct {
	RecurringHorizon int `mapstructure:"recurring_horizon"`
}

// Config represents the global configuration for the service.
type Config struct {
	DB             store.Config       `mapstructure:"mysql"`
	Logger         log.Config         `mapstructure:"logger"`
	HTTP           httpapi.Config     `mapstructure:"http"`
	Auth           auth.Config        `mapstructure:"auth"`
	Mailer         mail.Config        `mapstructure:"mailer"`
	ReportSchedule reportsched.Config `mapstructure:"report_schedule"`
	Stock          RecurringConfig    `mapstructure:"stock"`
	Expense        RecurringConfig    `mapstructure:"expense"`
}

// Recurring returns the horizons used when computing recurring entries.
func (c *Config) Recurring() httpapi.RecurringConfig {
	return httpapi.RecurringConfig{
		ExpenseHorizon: c.Expense.RecurringHorizon,
		StockHorizon:   c.Stock.RecurringHorizon,
	}
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Nested keys use double underscore, e.g. MYSQL__DSN for mysql.dsn,
// common keys are also bound to flat names such as MYSQL_DSN.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")
	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))
	if err := bindEnvVars(v); err != nil {
		return nil, fmt.Errorf("failed to bind env vars: %w", err)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/resto-manager")
		v.AddConfigPath("/etc/resto-manager")
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %w", err)
	}
	if config.Expense.RecurringHorizon < 1 || config.Stock.RecurringHorizon < 1 {
		return nil, fmt.Errorf("recurring horizons must be at least 1")
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mysql.automigrate", true)
	v.SetDefault("mysql.max_open_connections", 10)
	v.SetDefault("mysql.max_idle_connections", 5)

	v.SetDefault("logger.level", 0)

	v.SetDefault("http.address", "0.0.0.0")
	v.SetDefault("http.port", "8080")
	v.SetDefault("http.login_rate_limit", 10)

	v.SetDefault("auth.jwt_ttl", "24h")

	d := reportsched.DefaultConfig()
	v.SetDefault("report_schedule.enabled", d.Enabled)
	v.SetDefault("report_schedule.timezone", d.Timezone)
	v.SetDefault("report_schedule.hour", d.Hour)
	v.SetDefault("report_schedule.monthly_day", d.MonthlyDay)
	v.SetDefault("report_schedule.yearly_month", d.YearlyMonth)
	v.SetDefault("report_schedule.yearly_day", d.YearlyDay)

	v.SetDefault("stock.recurring_horizon", 11)
	v.SetDefault("expense.recurring_horizon", 1)
}

// bindEnvVars binds flat environment variable names to config keys.
func bindEnvVars(v *viper.Viper) error {
	binds := map[string]string{
		"mysql.dsn":                  "MYSQL_DSN",
		"mysql.automigrate":          "MYSQL_AUTOMIGRATE",
		"mysql.max_open_connections": "MYSQL_MAX_OPEN_CONNECTIONS",
		"mysql.max_idle_connections": "MYSQL_MAX_IDLE_CONNECTIONS",
		"mysql.tls_ca_path":          "MYSQL_TLS_CA_PATH",

		"logger.level":      "LOG_LEVEL",
		"logger.add_source": "LOG_ADD_SOURCE",

		"http.port":             "HTTP_PORT",
		"http.address":          "HTTP_ADDRESS",
		"http.allowed_origins":  "HTTP_ALLOWED_ORIGINS",
		"http.login_rate_limit": "HTTP_LOGIN_RATE_LIMIT",

		"auth.jwt_secret":      "AUTH_JWT_SECRET",
		"auth.master_password": "AUTH_MASTER_PASSWORD",
		"auth.jwt_ttl":         "AUTH_JWT_TTL",
		"auth.bcrypt_cost":     "AUTH_BCRYPT_COST",

		"mailer.sendgrid_api_key": "MAILER_SENDGRID_API_KEY",
		"mailer.from_email":       "MAILER_FROM_EMAIL",
		"mailer.from_email_name":  "MAILER_FROM_EMAIL_NAME",
		"mailer.reply_to":         "MAILER_REPLY_TO",

		"report_schedule.enabled":      "REPORT_SCHEDULE_ENABLED",
		"report_schedule.timezone":     "REPORT_SCHEDULE_TIMEZONE",
		"report_schedule.hour":         "REPORT_SCHEDULE_HOUR",
		"report_schedule.monthly_day":  "REPORT_SCHEDULE_MONTHLY_DAY",
		"report_schedule.yearly_month": "REPORT_SCHEDULE_YEARLY_MONTH",
		"report_schedule.yearly_day":   "REPORT_SCHEDULE_YEARLY_DAY",

		"stock.recurring_horizon":   "STOCK_RECURRING_HORIZON",
		"expense.recurring_horizon": "EXPENSE_RECURRING_HORIZON",
	}
	for key, env := range binds {
		if err := v.BindEnv(key, env); err != nil {
			return err
		}
	}
	return nil
}

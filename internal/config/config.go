package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config carries every tunable of the service. All values come from
// environment variables (or a local .env file); a missing credential
// degrades the corresponding feature to mock/disabled, it never stops
// the process.
type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Advisor         Advisor         `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Gemini          Gemini          `mapstructure:",squash"`
	Setu            Setu            `mapstructure:",squash"`
	ICICIPru        ICICIPru        `mapstructure:",squash"`
	BSEStar         BSEStar         `mapstructure:",squash"`
	LoanPartner     LoanPartner     `mapstructure:",squash"`
	WhatsApp        WhatsApp        `mapstructure:",squash"`
	Twilio          Twilio          `mapstructure:",squash"`
	SendGrid        SendGrid        `mapstructure:",squash"`
	ComplianceSweep ComplianceSweep `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
	Enabled  bool   `mapstructure:"database_enabled"`
}

// Advisor holds the fallback tenancy identity used when a request carries
// no bearer token.
type Advisor struct {
	DefaultAdvisorID string `mapstructure:"default_advisor_id"`
	DefaultTenantID  string `mapstructure:"default_tenant_id"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Gemini configures the hosted text-generation model.
type Gemini struct {
	BaseURL string `mapstructure:"gemini_base_url"`
	APIKey  string `mapstructure:"gemini_api_key"`
	Model   string `mapstructure:"gemini_model"`
}

// Setu is the first-priority insurance policy provider.
type Setu struct {
	BaseURL   string `mapstructure:"setu_base_url"`
	APIKey    string `mapstructure:"setu_api_key"`
	APISecret string `mapstructure:"setu_api_secret"`
}

// ICICIPru is the second-priority insurance policy provider.
type ICICIPru struct {
	BaseURL   string `mapstructure:"icici_pru_base_url"`
	APIKey    string `mapstructure:"icici_pru_api_key"`
	APISecret string `mapstructure:"icici_pru_api_secret"`
}

// BSEStar is the mutual fund transaction partner.
type BSEStar struct {
	BaseURL string `mapstructure:"bse_star_base_url"`
	APIKey  string `mapstructure:"bse_star_api_key"`
}

// LoanPartner is the loan transaction partner.
type LoanPartner struct {
	BaseURL string `mapstructure:"loan_partner_base_url"`
	APIKey  string `mapstructure:"loan_partner_api_key"`
}

type WhatsApp struct {
	BaseURL string `mapstructure:"whatsapp_base_url"`
	APIKey  string `mapstructure:"whatsapp_business_api_key"`
	PhoneID string `mapstructure:"whatsapp_business_phone_id"`
}

type Twilio struct {
	BaseURL     string `mapstructure:"twilio_base_url"`
	AccountSID  string `mapstructure:"twilio_account_sid"`
	AuthToken   string `mapstructure:"twilio_auth_token"`
	PhoneNumber string `mapstructure:"twilio_phone_number"`
}

type SendGrid struct {
	BaseURL   string `mapstructure:"sendgrid_base_url"`
	APIKey    string `mapstructure:"sendgrid_api_key"`
	FromEmail string `mapstructure:"sendgrid_from_email"`
}

// ComplianceSweep schedules the daily open-flag summary job.
type ComplianceSweep struct {
	CronSchedule string `mapstructure:"compliance_sweep_cron"`
	Enabled      bool   `mapstructure:"compliance_sweep_enabled"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/finxpert")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_ENABLED", true)

	viper.SetDefault("DEFAULT_ADVISOR_ID", "ADV-001")
	viper.SetDefault("DEFAULT_TENANT_ID", "TENANT-001")
	viper.SetDefault("AUTH_SECRET", "")

	viper.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")

	viper.SetDefault("SETU_BASE_URL", "https://api-setu.in")
	viper.SetDefault("SETU_API_KEY", "")
	viper.SetDefault("SETU_API_SECRET", "")

	viper.SetDefault("ICICI_PRU_BASE_URL", "https://api.iciciprudential.com")
	viper.SetDefault("ICICI_PRU_API_KEY", "")
	viper.SetDefault("ICICI_PRU_API_SECRET", "")

	viper.SetDefault("BSE_STAR_BASE_URL", "https://api.bseindia.com/BseStarAPI")
	viper.SetDefault("BSE_STAR_API_KEY", "")

	viper.SetDefault("LOAN_PARTNER_BASE_URL", "https://api.loanpartner.com/v1")
	viper.SetDefault("LOAN_PARTNER_API_KEY", "")

	viper.SetDefault("WHATSAPP_BASE_URL", "https://graph.facebook.com/v18.0")
	viper.SetDefault("WHATSAPP_BUSINESS_API_KEY", "")
	viper.SetDefault("WHATSAPP_BUSINESS_PHONE_ID", "")

	viper.SetDefault("TWILIO_BASE_URL", "https://api.twilio.com/2010-04-01")
	viper.SetDefault("TWILIO_ACCOUNT_SID", "")
	viper.SetDefault("TWILIO_AUTH_TOKEN", "")
	viper.SetDefault("TWILIO_PHONE_NUMBER", "")

	viper.SetDefault("SENDGRID_BASE_URL", "https://api.sendgrid.com/v3")
	viper.SetDefault("SENDGRID_API_KEY", "")
	viper.SetDefault("SENDGRID_FROM_EMAIL", "noreply@finxpert.com")

	viper.SetDefault("COMPLIANCE_SWEEP_CRON", "0 7 * * *")
	viper.SetDefault("COMPLIANCE_SWEEP_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("no .env readable by viper, relying on environment: ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info(".env loaded from: ", location)
			return
		}
	}

	logrus.Debug("no .env file found, using process environment only")
}

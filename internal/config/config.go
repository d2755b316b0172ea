// internal/config/config.go
package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
	JWT struct {
		SecretKey      string `mapstructure:"secret_key"`
		ExpiresInHours int    `mapstructure:"expires_in_hours"`
	} `mapstructure:"jwt"`
	Auth struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"auth"`
	App struct {
		VerificationBaseURL string `mapstructure:"verification_base_url"`
		// 기간제 수강권 만료 임박 안내 기준 일수
		TicketExpiryNoticeDays int `mapstructure:"ticket_expiry_notice_days"`
		// 잔여 횟수/만료 안내 메일 발송 여부
		NotifyLowBalance bool `mapstructure:"notify_low_balance"`
	} `mapstructure:"app"`
	Mailer struct {
		Provider string `mapstructure:"provider"` // log | smtp | ses
	} `mapstructure:"mailer"`
	SMTP struct {
		Host string `mapstructure:"host"`
		Port int    `mapstructure:"port"`
		From string `mapstructure:"from"`
	} `mapstructure:"smtp"`
	SES struct {
		Region          string `mapstructure:"region"`
		AuthType        string `mapstructure:"auth_type"` // static_credentials | iam_role
		AccessKeyID     string `mapstructure:"access_key_id"`
		SecretAccessKey string `mapstructure:"secret_access_key"`
		From            string `mapstructure:"from"`
	} `mapstructure:"ses"`
	Anthropic struct {
		APIKey    string `mapstructure:"api_key"`
		Model     string `mapstructure:"model"`
		MaxTokens int    `mapstructure:"max_tokens"`
	} `mapstructure:"anthropic"`
	Scheduler struct {
		Enabled bool `mapstructure:"enabled"`
		// 수강권 점검 잡의 cron 표현식 (예: "0 9 * * *")
		TicketSweepSpec string `mapstructure:"ticket_sweep_spec"`
	} `mapstructure:"scheduler"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	// 환경 변수 바인딩 (예: APP_JWT_SECRET_KEY)
	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")
	viper.BindEnv("auth.enabled", "AUTH_ENABLED")
	viper.BindEnv("anthropic.api_key", "ANTHROPIC_API_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	// --- 기본값 ---
	if Cfg.Server.Port == "" {
		Cfg.Server.Port = DefaultServerPort
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = DefaultLogLevel
	}
	if Cfg.JWT.ExpiresInHours <= 0 {
		Cfg.JWT.ExpiresInHours = DefaultJWTExpiresInHours
	}
	if Cfg.App.TicketExpiryNoticeDays <= 0 {
		Cfg.App.TicketExpiryNoticeDays = DefaultTicketExpiryNoticeDays
	}
	if Cfg.Mailer.Provider == "" {
		Cfg.Mailer.Provider = "log"
	}
	if Cfg.Anthropic.Model == "" {
		Cfg.Anthropic.Model = DefaultAnthropicModel
	}
	if Cfg.Anthropic.MaxTokens <= 0 {
		Cfg.Anthropic.MaxTokens = DefaultAnthropicMaxTokens
	}
	if Cfg.Scheduler.TicketSweepSpec == "" {
		Cfg.Scheduler.TicketSweepSpec = DefaultTicketSweepSpec
	}
	if !viper.IsSet("auth.enabled") {
		Cfg.Auth.Enabled = true
	}
	if Cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}

	log.Println("Config loaded successfully")
	return nil
}

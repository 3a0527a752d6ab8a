// internal/config/config.go
package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type DatabaseConfig struct {
	URL string `mapstructure:"url"` // postgres://... または sqlite://path
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type AppConfig struct {
	Name                 string `mapstructure:"name"`
	FrontendURL          string `mapstructure:"frontend_url"`
	ReviewErrorThreshold int    `mapstructure:"review_error_threshold"` // 復習リストに載せる誤答回数の閾値 (この値を超えたら対象)
	AttemptHistoryLimit  int    `mapstructure:"attempt_history_limit"`
	DefaultTestMaxScore  int    `mapstructure:"default_test_max_score"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type AuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type JWTConfig struct {
	SecretKey      string        `mapstructure:"secret_key"`
	AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type MailerConfig struct {
	Type string `mapstructure:"type"` // log | smtp | ses
}

type SMTPConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	From string `mapstructure:"from"`
}

type SESConfig struct {
	Region          string `mapstructure:"region"`
	From            string `mapstructure:"from"`
	AuthType        string `mapstructure:"auth_type"` // static_credentials | iam_role
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"` // 空ならキャッシュ無効
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type EventsConfig struct {
	Type     string `mapstructure:"type"` // log | amqp
	AMQPURL  string `mapstructure:"amqp_url"`
	Exchange string `mapstructure:"exchange"`
}

type SchedulerConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type Config struct {
	Database  DatabaseConfig  `mapstructure:"database"`
	Server    ServerConfig    `mapstructure:"server"`
	App       AppConfig       `mapstructure:"app"`
	Log       LogConfig       `mapstructure:"log"`
	Auth      AuthConfig      `mapstructure:"auth"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Mailer    MailerConfig    `mapstructure:"mailer"`
	SMTP      SMTPConfig      `mapstructure:"smtp"`
	SES       SESConfig       `mapstructure:"ses"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Events    EventsConfig    `mapstructure:"events"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
}

var Cfg Config

func LoadConfig(path string) error {
	// .env があれば環境変数として先に読み込む (無くてもエラーにしない)
	if err := godotenv.Load(); err == nil {
		log.Println(".env file loaded")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(path)
	v.AddConfigPath(".")

	// 例: APP_DATABASE_URL -> database.url
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()
	v.BindEnv("auth.enabled", "AUTH_ENABLED")
	v.BindEnv("database.url", "DATABASE_URL")
	v.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}
	applyFallbacks(&cfg)
	Cfg = cfg

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Review Error Threshold: %d", Cfg.App.ReviewErrorThreshold)
	log.Printf("Auth Enabled: %t", Cfg.Auth.Enabled)
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("app.name", AppName)
	v.SetDefault("app.review_error_threshold", DefaultReviewErrorThreshold)
	v.SetDefault("app.attempt_history_limit", DefaultAttemptHistoryLimit)
	v.SetDefault("app.default_test_max_score", DefaultTestMaxScore)
	// 未設定なら認証は有効
	v.SetDefault("auth.enabled", true)
	v.SetDefault("jwt.access_token_ttl", DefaultAccessTokenTTL)
	v.SetDefault("mailer.type", "log")
	v.SetDefault("events.type", "log")
	v.SetDefault("events.exchange", DefaultEventsExchange)
	v.SetDefault("redis.ttl", DefaultCacheTTL)
	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowed_headers", []string{"Authorization", "Content-Type", "X-User-ID", "X-User-Role"})
}

// applyFallbacks は明示的に不正な値が設定された場合にデフォルトへ戻す
func applyFallbacks(cfg *Config) {
	if cfg.Server.Port == "" {
		log.Printf("Server port not set, using default '%s'", DefaultServerPort)
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.App.ReviewErrorThreshold < 0 {
		log.Println("Review error threshold is negative, using default")
		cfg.App.ReviewErrorThreshold = DefaultReviewErrorThreshold
	}
	if cfg.App.AttemptHistoryLimit <= 0 {
		cfg.App.AttemptHistoryLimit = DefaultAttemptHistoryLimit
	}
	if cfg.App.DefaultTestMaxScore <= 0 {
		cfg.App.DefaultTestMaxScore = DefaultTestMaxScore
	}
	if cfg.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
	if cfg.Auth.Enabled && cfg.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is empty while auth is enabled.")
	}
}
